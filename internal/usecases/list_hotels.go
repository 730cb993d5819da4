package usecases

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/persistence"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
)

// ListHotelsParams holds the parameters for listing hotels.
type ListHotelsParams struct {
	City           *string
	MinRating      *float64
	IncludeDeleted bool
}

// ListHotelsOptions defines a function type for specifying options when listing hotels.
type ListHotelsOptions func(*ListHotelsParams)

// WithCity creates a ListHotelsOptions to filter hotels by city.
func WithCity(city string) ListHotelsOptions {
	return func(params *ListHotelsParams) {
		params.City = &city
	}
}

// WithMinRating creates a ListHotelsOptions to keep hotels rated at least rating.
func WithMinRating(rating float64) ListHotelsOptions {
	return func(params *ListHotelsParams) {
		params.MinRating = &rating
	}
}

// WithDeleted creates a ListHotelsOptions that also returns soft-deleted hotels.
func WithDeleted() ListHotelsOptions {
	return func(params *ListHotelsParams) {
		params.IncludeDeleted = true
	}
}

// ListHotels defines the interface for the ListHotels use case.
type ListHotels interface {
	Query(ctx context.Context, page int, pageSize int, opts ...ListHotelsOptions) ([]domain.Hotel, bool, error)
}

// ListHotelsImpl is the implementation of the ListHotels use case.
type ListHotelsImpl struct {
	uowFactory persistence.UnitOfWorkFactory
}

// NewListHotelsImpl creates a new instance of ListHotelsImpl.
func NewListHotelsImpl(uowFactory persistence.UnitOfWorkFactory) ListHotelsImpl {
	return ListHotelsImpl{
		uowFactory: uowFactory,
	}
}

// Query returns one page of hotels, best rated first, and whether more pages follow.
func (l ListHotelsImpl) Query(ctx context.Context, page int, pageSize int, opts ...ListHotelsOptions) ([]domain.Hotel, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params := ListHotelsParams{}
	for _, opt := range opts {
		opt(&params)
	}

	uow := l.uowFactory.Begin()
	defer uow.Close() //nolint:errcheck

	query := persistence.GetRepository[domain.Hotel](uow).Query()
	if !params.IncludeDeleted {
		query = query.Where(squirrel.Eq{"is_deleted": false})
	}
	if params.City != nil {
		query = query.Where(squirrel.Eq{"city": *params.City})
	}
	if params.MinRating != nil {
		query = query.Where(squirrel.GtOrEq{"average_rating": *params.MinRating})
	}

	query, err := query.OrderBy("average_rating DESC", "id").Page(page, pageSize)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	// one extra row tells whether another page exists
	found, err := query.Limit(uint64(pageSize) + 1).List(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := len(found) > pageSize
	if hasMore {
		found = found[:pageSize]
	}

	hotels := make([]domain.Hotel, 0, len(found))
	for _, h := range found {
		hotels = append(hotels, *h)
	}
	return hotels, hasMore, nil
}

// InitListHotels initializes the ListHotels use case and registers it in the dependency container.
type InitListHotels struct {
	UowFactory persistence.UnitOfWorkFactory `resolve:""`
}

// Initialize registers the ListHotelsImpl use case in the dependency container.
func (i InitListHotels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListHotels](NewListHotelsImpl(i.UowFactory))
	return ctx, nil
}
