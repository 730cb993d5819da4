package usecases

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqldb"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqlite"
	"github.com/xbensieve/room-booking-api/internal/domain"
	domain_mocks "github.com/xbensieve/room-booking-api/internal/domain/mocks"
	"github.com/xbensieve/room-booking-api/internal/persistence"
)

var (
	fixedTime  = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	testLogger = log.New(io.Discard, "", 0)
)

// newTestFactory returns a unit of work factory over a private in-memory SQLite database.
func newTestFactory(t *testing.T) persistence.UnitOfWorkFactory {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryDSN(), testLogger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck
	return persistence.NewUnitOfWorkFactory(sqldb.NewSessionFactory(db, sqldb.SQLite))
}

func newFixedTimeProvider(t *testing.T) *domain_mocks.MockCurrentTimeProvider {
	timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	return timeProvider
}

// captureWork makes queue accept and record every enqueued item.
func captureWork(queue *domain_mocks.MockTaskQueue) *[]domain.WorkItem {
	items := &[]domain.WorkItem{}
	queue.EXPECT().Enqueue(mock.Anything).RunAndReturn(func(item domain.WorkItem) error {
		*items = append(*items, item)
		return nil
	}).Maybe()
	return items
}

func workNames(items []domain.WorkItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func newTestHotel(name, city string, rating float64) domain.Hotel {
	return domain.Hotel{
		Name:          name,
		Address:       "12 Tran Hung Dao",
		City:          city,
		Country:       "Vietnam",
		AverageRating: rating,
		PhoneNumber:   "0283829999",
	}
}

// seed stores entities in one commit and returns them with their generated keys.
func seed[T any, P persistence.EntityPtr[T]](t *testing.T, f persistence.UnitOfWorkFactory, entities ...P) []P {
	t.Helper()
	_, err := f.Execute(context.Background(), func(uow *persistence.UnitOfWork) error {
		repo := persistence.GetRepository[T, P](uow)
		for _, e := range entities {
			repo.Add(e)
		}
		return nil
	})
	require.NoError(t, err)
	return entities
}

func seedHotel(t *testing.T, f persistence.UnitOfWorkFactory, name, city string, rating float64) *domain.Hotel {
	t.Helper()
	hotel := newTestHotel(name, city, rating)
	hotel.CreatedAt = fixedTime
	hotel.UpdatedAt = fixedTime
	return seed[domain.Hotel](t, f, &hotel)[0]
}

func seedRoom(t *testing.T, f persistence.UnitOfWorkFactory, hotelID int, name string, price float64) *domain.Room {
	t.Helper()
	return seed[domain.Room](t, f, &domain.Room{
		HotelID:       hotelID,
		Name:          name,
		Capacity:      2,
		PricePerNight: price,
		CreatedAt:     fixedTime,
		UpdatedAt:     fixedTime,
	})[0]
}

func load[T any, P persistence.EntityPtr[T]](t *testing.T, f persistence.UnitOfWorkFactory, id int) P {
	t.Helper()
	uow := f.Begin()
	defer uow.Close() //nolint:errcheck
	entity, found, err := persistence.GetRepository[T, P](uow).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, found)
	return entity
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}
