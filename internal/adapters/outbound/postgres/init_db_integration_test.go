//go:build integration

package postgres

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/sqldb"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/persistence"
)

func startPostgres(t *testing.T) *InitDB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "booking",
				"POSTGRES_PASSWORD": "booking",
				"POSTGRES_DB":       "bookingdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbInit := &InitDB{
		Logger:     log.New(os.Stdout, "", log.LstdFlags),
		DBUser:     "booking",
		DBPass:     "booking",
		DBHost:     host,
		DBPort:     port.Port(),
		DBName:     "bookingdb",
		DBMaxConns: 4,
	}
	_, err = dbInit.Initialize(ctx)
	require.NoError(t, err)
	t.Cleanup(dbInit.Close)

	return dbInit
}

func TestPostgres_UnitOfWork(t *testing.T) {
	dbInit := startPostgres(t)
	f := persistence.NewUnitOfWorkFactory(sqldb.NewSessionFactory(dbInit.db, sqldb.Postgres))
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	hotel := &domain.Hotel{
		Name:        "Lotus Inn",
		Address:     "1 Main Street",
		City:        "Hanoi",
		Country:     "Vietnam",
		PhoneNumber: "0123456789",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("commit-assigns-keys-and-round-trips", func(t *testing.T) {
		affected, err := f.Execute(ctx, func(uow *persistence.UnitOfWork) error {
			persistence.GetRepository[domain.Hotel](uow).Add(hotel)
			if err := uow.Flush(ctx); err != nil {
				return err
			}
			persistence.GetRepository[domain.Room](uow).Add(&domain.Room{
				HotelID:       hotel.ID,
				Name:          "Deluxe",
				Capacity:      2,
				PricePerNight: 80,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)
		require.NotZero(t, hotel.ID)

		uow := f.Begin()
		defer uow.Close() //nolint:errcheck

		got, found, err := persistence.GetRepository[domain.Hotel](uow).GetByID(ctx, hotel.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, hotel.Name, got.Name)
		assert.True(t, hotel.CreatedAt.Equal(got.CreatedAt))

		rooms, err := persistence.GetRepository[domain.Room](uow).Search(ctx, squirrel.Eq{"hotel_id": hotel.ID})
		require.NoError(t, err)
		assert.Len(t, rooms, 1)
	})

	t.Run("exists-matches-search", func(t *testing.T) {
		uow := f.Begin()
		defer uow.Close() //nolint:errcheck
		repo := persistence.GetRepository[domain.Hotel](uow)

		for _, p := range []squirrel.Sqlizer{
			squirrel.Eq{"city": "Hanoi"},
			squirrel.Eq{"city": "Hue"},
		} {
			found, err := repo.Search(ctx, p)
			require.NoError(t, err)
			exists, err := repo.Exists(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, len(found) > 0, exists)
		}
	})

	t.Run("failed-commit-writes-nothing", func(t *testing.T) {
		_, err := f.Execute(ctx, func(uow *persistence.UnitOfWork) error {
			persistence.GetRepository[domain.Hotel](uow).Add(&domain.Hotel{
				Name:        "Orphanage",
				Address:     "2 Main Street",
				City:        "Hue",
				Country:     "Vietnam",
				PhoneNumber: "0123456789",
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			persistence.GetRepository[domain.Room](uow).Add(&domain.Room{
				HotelID:       424242,
				Name:          "Ghost",
				Capacity:      1,
				PricePerNight: 10,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
			return nil
		})
		require.Error(t, err)
		var conflict *domain.ConflictErr
		assert.True(t, errors.As(err, &conflict))

		uow := f.Begin()
		defer uow.Close() //nolint:errcheck
		exists, err := persistence.GetRepository[domain.Hotel](uow).Exists(ctx, squirrel.Eq{"name": "Orphanage"})
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
