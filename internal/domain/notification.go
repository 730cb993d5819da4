package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies what happened in the booking system.
type NotificationType string

const (
	// NotificationType_HOTEL_CREATED is sent when a hotel is registered.
	NotificationType_HOTEL_CREATED NotificationType = "HOTEL.CREATED"
	// NotificationType_HOTEL_DELETED is sent when a hotel is removed from the listing.
	NotificationType_HOTEL_DELETED NotificationType = "HOTEL.DELETED"
	// NotificationType_RESERVATION_CREATED is sent when a guest books a room.
	NotificationType_RESERVATION_CREATED NotificationType = "RESERVATION.CREATED"
)

// Notification is a message handed to the notification transport by background work.
type Notification struct {
	ID         uuid.UUID
	Type       NotificationType
	EntityType string
	EntityID   int
	Recipient  string
	Payload    []byte
	CreatedAt  time.Time
}

// NewNotification builds a notification carrying payload encoded as JSON.
func NewNotification(t NotificationType, entityType string, entityID int, recipient string, payload any, now time.Time) (Notification, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Notification{}, err
	}
	return Notification{
		ID:         uuid.New(),
		Type:       t,
		EntityType: entityType,
		EntityID:   entityID,
		Recipient:  recipient,
		Payload:    data,
		CreatedAt:  now,
	}, nil
}

// NotificationPublisher delivers notifications to the messaging infrastructure.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}
