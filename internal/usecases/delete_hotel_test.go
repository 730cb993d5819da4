package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbensieve/room-booking-api/internal/domain"
	domain_mocks "github.com/xbensieve/room-booking-api/internal/domain/mocks"
)

func TestDeleteHotelImpl_Execute(t *testing.T) {
	f := newTestFactory(t)
	hotel := seedHotel(t, f, "Lotus Inn", "Hanoi", 4.5)
	other := seedHotel(t, f, "Sea Breeze", "Da Nang", 4.8)
	deluxe := seedRoom(t, f, hotel.ID, "Deluxe", 90)
	twin := seedRoom(t, f, hotel.ID, "Twin", 60)
	otherRoom := seedRoom(t, f, other.ID, "Ocean View", 120)

	queue := domain_mocks.NewMockTaskQueue(t)
	work := captureWork(queue)
	uc := NewDeleteHotelImpl(f, queue, nil, newFixedTimeProvider(t), testLogger)

	require.NoError(t, uc.Execute(context.Background(), hotel.ID))

	stored := load[domain.Hotel](t, f, hotel.ID)
	assert.True(t, stored.IsDeleted)
	assert.True(t, fixedTime.Equal(stored.UpdatedAt))
	assert.True(t, load[domain.Room](t, f, deluxe.ID).IsDeleted)
	assert.True(t, load[domain.Room](t, f, twin.ID).IsDeleted)
	assert.False(t, load[domain.Room](t, f, otherRoom.ID).IsDeleted)
	assert.False(t, load[domain.Hotel](t, f, other.ID).IsDeleted)
	assert.Equal(t, []string{"notify-hotel-deleted"}, workNames(*work))

	// deleting again reports the hotel as missing
	err := uc.Execute(context.Background(), hotel.ID)
	assert.Equal(t, domain.NewNotFoundErr(fmt.Sprintf("hotel %d not found", hotel.ID)), err)
	assert.Len(t, *work, 1)
}

func TestDeleteHotelImpl_Execute_NotFound(t *testing.T) {
	f := newTestFactory(t)
	queue := domain_mocks.NewMockTaskQueue(t)

	uc := NewDeleteHotelImpl(f, queue, nil, newFixedTimeProvider(t), testLogger)
	err := uc.Execute(context.Background(), 404)

	assert.Equal(t, domain.NewNotFoundErr("hotel 404 not found"), err)
}

func TestInitDeleteHotel_Initialize(t *testing.T) {
	i := InitDeleteHotel{
		Queue:        domain_mocks.NewMockTaskQueue(t),
		TimeProvider: domain_mocks.NewMockCurrentTimeProvider(t),
		Logger:       testLogger,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[DeleteHotel]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
