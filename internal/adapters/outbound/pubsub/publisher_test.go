package pubsub

import (
	"context"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestNotificationPublisher_Publish(t *testing.T) {
	notificationID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"hotel_id":7,"name":"Grand Saigon"}`)

	notification := domain.Notification{
		ID:         notificationID,
		Type:       domain.NotificationType_HOTEL_CREATED,
		EntityType: "hotel",
		EntityID:   7,
		Recipient:  "ops@booking.test",
		Payload:    payload,
		CreatedAt:  fixedTime,
	}

	tests := map[string]struct {
		topic           string
		createTopic     bool
		expectErr       bool
		validateMessage func(*testing.T, *pubsubV2.Client, string)
	}{
		"success-publish-notification": {
			topic:       "booking-notifications",
			createTopic: true,
			validateMessage: func(t *testing.T, client *pubsubV2.Client, subName string) {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()

				messages := make([]*pubsubV2.Message, 0)

				err := client.Subscriber(subName).Receive(ctx, func(ctx context.Context, msg *pubsubV2.Message) {
					messages = append(messages, msg)
					msg.Ack() //nolint:errcheck
				})
				if err != nil && err != context.DeadlineExceeded {
					t.Fatalf("failed to receive: %v", err)
				}

				require.Len(t, messages, 1)
				msg := messages[0]
				assert.Equal(t, payload, msg.Data)
				assert.Equal(t, map[string]string{
					"notification_id":   notificationID.String(),
					"notification_type": "HOTEL.CREATED",
					"entity_type":       "hotel",
					"entity_id":         "7",
					"recipient":         "ops@booking.test",
					"created_at":        "2024-01-01T12:00:00Z",
				}, msg.Attributes)
			},
		},
		"error-topic-not-found": {
			topic:     "non-existent-topic",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := pstest.NewServer()
			defer server.Close() //nolint:errcheck

			projectID := "test-project"
			subID := tt.topic + "-sub"

			conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			assert.NoError(t, err)
			defer conn.Close() //nolint:errcheck

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			client, err := pubsubV2.NewClient(
				ctx,
				projectID,
				option.WithGRPCConn(conn),
			)
			assert.NoError(t, err)
			defer client.Close() //nolint:errcheck

			if tt.createTopic {
				topicName := "projects/" + projectID + "/topics/" + tt.topic
				topic, err := client.TopicAdminClient.CreateTopic(
					ctx,
					&pubsubpb.Topic{Name: topicName},
				)
				assert.NoError(t, err)

				subName := "projects/" + projectID + "/subscriptions/" + subID
				_, err = client.SubscriptionAdminClient.CreateSubscription(
					ctx,
					&pubsubpb.Subscription{
						Name:  subName,
						Topic: topic.GetName(),
					},
				)
				assert.NoError(t, err)
			}

			publisher := NewNotificationPublisher(client, tt.topic)

			publishCtx, publishCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer publishCancel()

			err = publisher.Publish(publishCtx, notification)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				tt.validateMessage(t, client, subID)
			}
		})
	}
}

func TestInitPublisher_Initialize(t *testing.T) {
	init := &InitPublisher{
		Client: &pubsubV2.Client{},
		Topic:  "booking-notifications",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	res, err := depend.Resolve[domain.NotificationPublisher]()
	assert.NoError(t, err)
	assert.Equal(t, "booking-notifications", res.(NotificationPublisher).topic)
}
