package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xbensieve/room-booking-api/internal/domain"
	domain_mocks "github.com/xbensieve/room-booking-api/internal/domain/mocks"
	"github.com/xbensieve/room-booking-api/internal/persistence"
)

func TestCreateHotelImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		hotel         domain.Hotel
		imageURLs     []string
		existing      []string
		expectedErr   func(t *testing.T, err error)
		expectedWork  []string
		expectedCount int
	}{
		"success-with-images": {
			hotel:         newTestHotel("Lotus Inn", "Hanoi", 4.5),
			imageURLs:     []string{"https://cdn.example.com/lobby.jpg", "https://cdn.example.com/room.jpg"},
			expectedWork:  []string{"verify-hotel-images", "notify-hotel-created"},
			expectedCount: 1,
		},
		"success-without-images": {
			hotel:         newTestHotel("Lotus Inn", "Hanoi", 4.5),
			expectedWork:  []string{"notify-hotel-created"},
			expectedCount: 1,
		},
		"same-name-in-other-city": {
			hotel:         newTestHotel("Lotus Inn", "Hanoi", 4.5),
			existing:      []string{"Da Nang"},
			expectedWork:  []string{"notify-hotel-created"},
			expectedCount: 2,
		},
		"duplicate-hotel": {
			hotel:    newTestHotel("Lotus Inn", "Hanoi", 4.5),
			existing: []string{"Hanoi"},
			expectedErr: func(t *testing.T, err error) {
				var conflict *domain.ConflictErr
				assert.ErrorAs(t, err, &conflict)
				assert.EqualError(t, err, `hotel "Lotus Inn" already exists in Hanoi`)
			},
			expectedCount: 1,
		},
		"invalid-hotel": {
			hotel: domain.Hotel{Name: "No address", City: "Hanoi"},
			expectedErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.NewValidationErr("address is required"), err)
			},
		},
		"invalid-image-url": {
			hotel:     newTestHotel("Lotus Inn", "Hanoi", 4.5),
			imageURLs: []string{"https://cdn.example.com/lobby.jpg", "lobby.jpg"},
			expectedErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.NewValidationErr("image_url must be a valid URL"), err)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTestFactory(t)
			for _, city := range tt.existing {
				seedHotel(t, f, tt.hotel.Name, city, 3)
			}

			queue := domain_mocks.NewMockTaskQueue(t)
			work := captureWork(queue)

			uc := NewCreateHotelImpl(f, queue, nil, nil, newFixedTimeProvider(t), testLogger)
			hotel, images, err := uc.Execute(context.Background(), tt.hotel, tt.imageURLs)

			if tt.expectedErr != nil {
				tt.expectedErr(t, err)
				assert.Empty(t, *work)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, hotel.ID)
				assert.Equal(t, fixedTime, hotel.CreatedAt)
				assert.Len(t, images, len(tt.imageURLs))
				for i, image := range images {
					assert.NotZero(t, image.ID)
					assert.Equal(t, hotel.ID, image.HotelID)
					assert.Equal(t, i == 0, image.IsMain)
				}

				stored := load[domain.Hotel](t, f, hotel.ID)
				assert.Equal(t, tt.hotel.Name, stored.Name)
				assert.Equal(t, tt.expectedWork, workNames(*work))
			}

			uow := f.Begin()
			defer uow.Close() //nolint:errcheck
			count, err := persistence.GetRepository[domain.Hotel](uow).Query().Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(tt.expectedCount), count)
		})
	}
}

func TestCreateHotelImpl_BackgroundWork(t *testing.T) {
	f := newTestFactory(t)
	timeProvider := newFixedTimeProvider(t)

	size := int64(1024)
	inspector := domain_mocks.NewMockImageInspector(t)
	inspector.EXPECT().
		Inspect(mock.Anything, "https://cdn.example.com/lobby.jpg").
		Return(domain.ImageMetadata{ContentType: "image/jpeg", SizeBytes: &size}, nil).
		Once()

	publisher := domain_mocks.NewMockNotificationPublisher(t)
	var published domain.Notification
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, n domain.Notification) error {
			published = n
			return nil
		}).
		Once()

	queue := domain_mocks.NewMockTaskQueue(t)
	work := captureWork(queue)

	uc := NewCreateHotelImpl(
		f,
		queue,
		NewVerifyHotelImagesImpl(f, inspector, timeProvider, testLogger, 2),
		NewPublishNotificationImpl(publisher),
		timeProvider,
		testLogger,
	)
	hotel, images, err := uc.Execute(context.Background(), newTestHotel("Lotus Inn", "Hanoi", 4.5), []string{"https://cdn.example.com/lobby.jpg"})
	require.NoError(t, err)
	require.Len(t, *work, 2)

	// the work items run later, detached from the request
	for _, item := range *work {
		require.NoError(t, item.Run(context.Background()))
	}

	image := load[domain.HotelImage](t, f, images[0].ID)
	require.NotNil(t, image.ContentType)
	assert.Equal(t, "image/jpeg", *image.ContentType)
	require.NotNil(t, image.SizeBytes)
	assert.Equal(t, int64(1024), *image.SizeBytes)
	require.NotNil(t, image.VerifiedAt)
	assert.True(t, fixedTime.Equal(*image.VerifiedAt))

	assert.Equal(t, domain.NotificationType_HOTEL_CREATED, published.Type)
	assert.Equal(t, hotel.ID, published.EntityID)
	var payload hotelNotificationPayload
	require.NoError(t, json.Unmarshal(published.Payload, &payload))
	assert.Equal(t, hotelNotificationPayload{HotelID: hotel.ID, Name: "Lotus Inn", City: "Hanoi", Images: 1}, payload)
}

func TestCreateHotelImpl_QueueRejectionKeepsHotel(t *testing.T) {
	f := newTestFactory(t)
	queue := domain_mocks.NewMockTaskQueue(t)
	queue.EXPECT().Enqueue(mock.Anything).Return(domain.ErrQueueFull)

	uc := NewCreateHotelImpl(f, queue, nil, nil, newFixedTimeProvider(t), testLogger)
	hotel, _, err := uc.Execute(context.Background(), newTestHotel("Lotus Inn", "Hanoi", 4.5), []string{"https://cdn.example.com/lobby.jpg"})
	require.NoError(t, err)

	uow := f.Begin()
	defer uow.Close() //nolint:errcheck
	exists, err := persistence.GetRepository[domain.Hotel](uow).Exists(context.Background(), squirrel.Eq{"id": hotel.ID})
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInitCreateHotel_Initialize(t *testing.T) {
	i := InitCreateHotel{
		Queue:        domain_mocks.NewMockTaskQueue(t),
		TimeProvider: domain_mocks.NewMockCurrentTimeProvider(t),
		Logger:       testLogger,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[CreateHotel]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
