package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/persistence"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// VerifyHotelImages defines the interface for the VerifyHotelImages use case.
type VerifyHotelImages interface {
	Execute(ctx context.Context, hotelID int) error
}

// VerifyHotelImagesImpl probes the not yet verified images of a hotel and
// stores what it learns about them. It is the image post-processing step that
// runs in the background after a hotel is created.
type VerifyHotelImagesImpl struct {
	uowFactory   persistence.UnitOfWorkFactory
	inspector    domain.ImageInspector
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	concurrency  int
}

// NewVerifyHotelImagesImpl creates a new instance of VerifyHotelImagesImpl.
// A concurrency below 1 probes one image at a time.
func NewVerifyHotelImagesImpl(
	uowFactory persistence.UnitOfWorkFactory,
	inspector domain.ImageInspector,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	concurrency int,
) VerifyHotelImagesImpl {
	if concurrency < 1 {
		concurrency = 1
	}
	return VerifyHotelImagesImpl{
		uowFactory:   uowFactory,
		inspector:    inspector,
		timeProvider: timeProvider,
		logger:       logger,
		concurrency:  concurrency,
	}
}

// Execute probes every unverified image of hotelID. Images that could be
// probed are stored even when others fail; the failures are returned joined.
func (v VerifyHotelImagesImpl) Execute(ctx context.Context, hotelID int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("hotel_id", hotelID),
	))
	defer span.End()

	images, err := v.pendingImages(spanCtx, hotelID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if len(images) == 0 {
		return nil
	}

	probeErrs := make([]error, len(images))
	g, gCtx := errgroup.WithContext(spanCtx)
	g.SetLimit(v.concurrency)
	for i, image := range images {
		g.Go(func() error {
			metadata, err := v.inspector.Inspect(gCtx, image.ImageURL)
			if err != nil {
				RecordImageVerified(gCtx, "failed")
				probeErrs[i] = fmt.Errorf("inspect image %d: %w", image.ID, err)
				return nil
			}
			RecordImageVerified(gCtx, "verified")

			verifiedAt := v.timeProvider.Now()
			image.ContentType = &metadata.ContentType
			image.SizeBytes = metadata.SizeBytes
			image.VerifiedAt = &verifiedAt
			return nil
		})
	}
	_ = g.Wait()

	_, err = v.uowFactory.Execute(spanCtx, func(uow *persistence.UnitOfWork) error {
		repo := persistence.GetRepository[domain.HotelImage](uow)
		for i, image := range images {
			if probeErrs[i] == nil {
				repo.Update(image)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = errors.Join(probeErrs...)
	if telemetry.RecordErrorAndStatus(span, err) {
		v.logger.Printf("VerifyHotelImages: hotel %d has images that could not be verified", hotelID)
		return err
	}
	return nil
}

func (v VerifyHotelImagesImpl) pendingImages(ctx context.Context, hotelID int) ([]*domain.HotelImage, error) {
	uow := v.uowFactory.Begin()
	defer uow.Close() //nolint:errcheck

	return persistence.GetRepository[domain.HotelImage](uow).
		Query().
		Where(squirrel.Eq{"hotel_id": hotelID, "verified_at": nil}).
		OrderBy("id").
		List(ctx)
}

// InitVerifyHotelImages initializes the VerifyHotelImages use case and registers it in the dependency container.
type InitVerifyHotelImages struct {
	UowFactory   persistence.UnitOfWorkFactory `resolve:""`
	Inspector    domain.ImageInspector         `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Logger       *log.Logger                   `resolve:""`
	Concurrency  int                           `config:"IMAGE_PROBE_CONCURRENCY" default:"4"`
}

// Initialize registers the VerifyHotelImagesImpl use case in the dependency container.
func (i InitVerifyHotelImages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[VerifyHotelImages](NewVerifyHotelImagesImpl(
		i.UowFactory,
		i.Inspector,
		i.TimeProvider,
		i.Logger,
		i.Concurrency,
	))
	return ctx, nil
}
