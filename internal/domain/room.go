package domain

import "time"

var roomSchema = Schema{
	Table: "rooms",
	Columns: []string{
		"id",
		"hotel_id",
		"name",
		"capacity",
		"price_per_night",
		"is_deleted",
		"created_at",
		"updated_at",
	},
	GeneratedKey: true,
}

// Room is a bookable room of a hotel.
type Room struct {
	ID            int
	HotelID       int     `validate:"required"`
	Name          string  `validate:"required,max=100"`
	Capacity      int     `validate:"gte=1"`
	PricePerNight float64 `validate:"gt=0"`
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Schema returns the table mapping of Room.
func (r *Room) Schema() Schema { return roomSchema }

// Values returns the column values of the room.
func (r *Room) Values() []any {
	return []any{
		r.ID,
		r.HotelID,
		r.Name,
		r.Capacity,
		r.PricePerNight,
		r.IsDeleted,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// Pointers returns scan destinations for the room columns.
func (r *Room) Pointers() []any {
	return []any{
		&r.ID,
		&r.HotelID,
		&r.Name,
		&r.Capacity,
		&r.PricePerNight,
		&r.IsDeleted,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}
