package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/persistence"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DeleteHotel defines the interface for the DeleteHotel use case.
type DeleteHotel interface {
	Execute(ctx context.Context, hotelID int) error
}

// DeleteHotelImpl is the implementation of the DeleteHotel use case.
type DeleteHotelImpl struct {
	uowFactory   persistence.UnitOfWorkFactory
	queue        domain.TaskQueue
	publish      PublishNotification
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewDeleteHotelImpl creates a new instance of DeleteHotelImpl.
func NewDeleteHotelImpl(
	uowFactory persistence.UnitOfWorkFactory,
	queue domain.TaskQueue,
	publish PublishNotification,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) DeleteHotelImpl {
	return DeleteHotelImpl{
		uowFactory:   uowFactory,
		queue:        queue,
		publish:      publish,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute soft deletes a hotel and its rooms in one commit.
func (d DeleteHotelImpl) Execute(ctx context.Context, hotelID int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("hotel_id", hotelID),
	))
	defer span.End()

	now := d.timeProvider.Now()
	var hotel *domain.Hotel
	var roomsRemoved int

	_, err := d.uowFactory.Execute(spanCtx, func(uow *persistence.UnitOfWork) error {
		found, ok, err := persistence.GetRepository[domain.Hotel](uow).GetByID(spanCtx, hotelID)
		if err != nil {
			return err
		}
		if !ok || found.IsDeleted {
			return domain.NewNotFoundErr(fmt.Sprintf("hotel %d not found", hotelID))
		}
		hotel = found

		hotel.IsDeleted = true
		hotel.UpdatedAt = now
		persistence.GetRepository[domain.Hotel](uow).Update(hotel)

		rooms := persistence.GetRepository[domain.Room](uow)
		active, err := rooms.Search(spanCtx, squirrel.Eq{"hotel_id": hotelID, "is_deleted": false})
		if err != nil {
			return err
		}
		for _, room := range active {
			room.IsDeleted = true
			room.UpdatedAt = now
			rooms.Update(room)
		}
		roomsRemoved = len(active)
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	span.SetAttributes(attribute.Int("rooms_removed", roomsRemoved))

	notification, err := domain.NewNotification(
		domain.NotificationType_HOTEL_DELETED,
		"hotel",
		hotel.ID,
		"",
		hotelNotificationPayload{HotelID: hotel.ID, Name: hotel.Name, City: hotel.City},
		now,
	)
	if err != nil {
		d.logger.Printf("DeleteHotel: failed to build notification for hotel %d: %v", hotel.ID, err)
		return nil
	}
	enqueueAfterCommit(d.queue, d.logger, notificationWork(d.publish, notification))
	return nil
}

// InitDeleteHotel initializes the DeleteHotel use case and registers it in the dependency container.
type InitDeleteHotel struct {
	UowFactory   persistence.UnitOfWorkFactory `resolve:""`
	Queue        domain.TaskQueue              `resolve:""`
	Publish      PublishNotification           `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *log.Logger                   `resolve:""`
}

// Initialize registers the DeleteHotelImpl use case in the dependency container.
func (i InitDeleteHotel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteHotel](NewDeleteHotelImpl(
		i.UowFactory,
		i.Queue,
		i.Publish,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
