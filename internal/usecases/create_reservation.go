package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/persistence"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// reservationNotificationPayload is the body of the reservation confirmation.
type reservationNotificationPayload struct {
	ReservationID int       `json:"reservation_id"`
	RoomID        int       `json:"room_id"`
	RoomName      string    `json:"room_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalPrice    float64   `json:"total_price"`
}

// CreateReservation defines the interface for the CreateReservation use case.
type CreateReservation interface {
	Execute(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
}

// CreateReservationImpl is the implementation of the CreateReservation use case.
type CreateReservationImpl struct {
	uowFactory   persistence.UnitOfWorkFactory
	queue        domain.TaskQueue
	publish      PublishNotification
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewCreateReservationImpl creates a new instance of CreateReservationImpl.
func NewCreateReservationImpl(
	uowFactory persistence.UnitOfWorkFactory,
	queue domain.TaskQueue,
	publish PublishNotification,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CreateReservationImpl {
	return CreateReservationImpl{
		uowFactory:   uowFactory,
		queue:        queue,
		publish:      publish,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute books a room for the requested dates. The room must exist and must
// not hold another active reservation overlapping those dates. The guest
// confirmation is sent in the background.
func (c CreateReservationImpl) Execute(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("room_id", reservation.RoomID),
	))
	defer span.End()

	now := c.timeProvider.Now()
	reservation.ID = 0
	reservation.CheckIn = reservation.CheckIn.UTC()
	reservation.CheckOut = reservation.CheckOut.UTC()
	reservation.Status = domain.ReservationStatus_PENDING
	reservation.CreatedAt = now
	if err := validateEntity(reservation); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, err
	}
	if err := reservation.Validate(now); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, err
	}

	var room *domain.Room
	_, err := c.uowFactory.Execute(spanCtx, func(uow *persistence.UnitOfWork) error {
		found, ok, err := persistence.GetRepository[domain.Room](uow).GetByID(spanCtx, reservation.RoomID)
		if err != nil {
			return err
		}
		if !ok || found.IsDeleted {
			return domain.NewNotFoundErr(fmt.Sprintf("room %d not found", reservation.RoomID))
		}
		room = found

		reservations := persistence.GetRepository[domain.Reservation](uow)
		booked, err := reservations.Exists(spanCtx, squirrel.And{
			squirrel.Eq{"room_id": reservation.RoomID},
			squirrel.NotEq{"status": domain.ReservationStatus_CANCELLED},
			squirrel.Lt{"check_in": reservation.CheckOut},
			squirrel.Gt{"check_out": reservation.CheckIn},
		})
		if err != nil {
			return err
		}
		if booked {
			return domain.NewConflictErr(fmt.Sprintf("room %d is already booked for the requested dates", reservation.RoomID), nil)
		}

		reservations.Add(&reservation)
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, err
	}
	RecordReservationCreated(spanCtx)

	nights := reservation.CheckOut.Sub(reservation.CheckIn).Hours() / 24
	notification, err := domain.NewNotification(
		domain.NotificationType_RESERVATION_CREATED,
		"reservation",
		reservation.ID,
		reservation.GuestEmail,
		reservationNotificationPayload{
			ReservationID: reservation.ID,
			RoomID:        room.ID,
			RoomName:      room.Name,
			CheckIn:       reservation.CheckIn,
			CheckOut:      reservation.CheckOut,
			TotalPrice:    nights * room.PricePerNight,
		},
		now,
	)
	if err != nil {
		c.logger.Printf("CreateReservation: failed to build notification for reservation %d: %v", reservation.ID, err)
		return reservation, nil
	}
	enqueueAfterCommit(c.queue, c.logger, notificationWork(c.publish, notification))

	return reservation, nil
}

// InitCreateReservation initializes the CreateReservation use case and registers it in the dependency container.
type InitCreateReservation struct {
	UowFactory   persistence.UnitOfWorkFactory `resolve:""`
	Queue        domain.TaskQueue              `resolve:""`
	Publish      PublishNotification           `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *log.Logger                   `resolve:""`
}

// Initialize registers the CreateReservationImpl use case in the dependency container.
func (i InitCreateReservation) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateReservation](NewCreateReservationImpl(
		i.UowFactory,
		i.Queue,
		i.Publish,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
