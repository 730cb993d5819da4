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
)

// hotelNotificationPayload is the body of hotel notifications.
type hotelNotificationPayload struct {
	HotelID int    `json:"hotel_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Images  int    `json:"images,omitempty"`
}

// CreateHotel defines the interface for the CreateHotel use case.
type CreateHotel interface {
	Execute(ctx context.Context, hotel domain.Hotel, imageURLs []string) (domain.Hotel, []domain.HotelImage, error)
}

// CreateHotelImpl is the implementation of the CreateHotel use case.
type CreateHotelImpl struct {
	uowFactory   persistence.UnitOfWorkFactory
	queue        domain.TaskQueue
	verifyImages VerifyHotelImages
	publish      PublishNotification
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewCreateHotelImpl creates a new instance of CreateHotelImpl.
func NewCreateHotelImpl(
	uowFactory persistence.UnitOfWorkFactory,
	queue domain.TaskQueue,
	verifyImages VerifyHotelImages,
	publish PublishNotification,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CreateHotelImpl {
	return CreateHotelImpl{
		uowFactory:   uowFactory,
		queue:        queue,
		verifyImages: verifyImages,
		publish:      publish,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute registers a hotel together with its images in a single commit. The
// first image becomes the main one. Image verification and the creation
// notification are scheduled as background work once the commit succeeded.
func (c CreateHotelImpl) Execute(ctx context.Context, hotel domain.Hotel, imageURLs []string) (domain.Hotel, []domain.HotelImage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := c.timeProvider.Now()
	hotel.ID = 0
	hotel.IsDeleted = false
	hotel.CreatedAt = now
	hotel.UpdatedAt = now
	if err := validateEntity(hotel); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Hotel{}, nil, err
	}

	images := make([]domain.HotelImage, 0, len(imageURLs))
	for i, url := range imageURLs {
		image := domain.HotelImage{
			ImageURL:  url,
			IsMain:    i == 0,
			CreatedAt: now,
		}
		if err := validateEntity(image); telemetry.RecordErrorAndStatus(span, err) {
			return domain.Hotel{}, nil, err
		}
		images = append(images, image)
	}

	_, err := c.uowFactory.Execute(spanCtx, func(uow *persistence.UnitOfWork) error {
		hotels := persistence.GetRepository[domain.Hotel](uow)

		duplicate, err := hotels.Exists(spanCtx, squirrel.Eq{
			"name":       hotel.Name,
			"city":       hotel.City,
			"is_deleted": false,
		})
		if err != nil {
			return err
		}
		if duplicate {
			return domain.NewConflictErr(fmt.Sprintf("hotel %q already exists in %s", hotel.Name, hotel.City), nil)
		}

		hotels.Add(&hotel)
		if len(images) == 0 {
			return nil
		}

		// the images reference the key the store assigns to the hotel
		if err := uow.Flush(spanCtx); err != nil {
			return err
		}
		imageRepo := persistence.GetRepository[domain.HotelImage](uow)
		for i := range images {
			images[i].HotelID = hotel.ID
			imageRepo.Add(&images[i])
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Hotel{}, nil, err
	}

	if len(images) > 0 {
		hotelID := hotel.ID
		enqueueAfterCommit(c.queue, c.logger, domain.NewWorkItem("verify-hotel-images", func(ctx context.Context) error {
			return c.verifyImages.Execute(ctx, hotelID)
		}))
	}

	notification, err := domain.NewNotification(
		domain.NotificationType_HOTEL_CREATED,
		"hotel",
		hotel.ID,
		"",
		hotelNotificationPayload{HotelID: hotel.ID, Name: hotel.Name, City: hotel.City, Images: len(images)},
		now,
	)
	if err != nil {
		c.logger.Printf("CreateHotel: failed to build notification for hotel %d: %v", hotel.ID, err)
		return hotel, images, nil
	}
	enqueueAfterCommit(c.queue, c.logger, notificationWork(c.publish, notification))

	return hotel, images, nil
}

// InitCreateHotel initializes the CreateHotel use case and registers it in the dependency container.
type InitCreateHotel struct {
	UowFactory   persistence.UnitOfWorkFactory `resolve:""`
	Queue        domain.TaskQueue              `resolve:""`
	VerifyImages VerifyHotelImages             `resolve:""`
	Publish      PublishNotification           `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *log.Logger                   `resolve:""`
}

// Initialize registers the CreateHotelImpl use case in the dependency container.
func (i InitCreateHotel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateHotel](NewCreateHotelImpl(
		i.UowFactory,
		i.Queue,
		i.VerifyImages,
		i.Publish,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
