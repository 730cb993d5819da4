package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation.
type ReservationStatus string

const (
	// ReservationStatus_PENDING indicates the reservation awaits payment.
	ReservationStatus_PENDING ReservationStatus = "PENDING"
	// ReservationStatus_CONFIRMED indicates the reservation was paid and confirmed.
	ReservationStatus_CONFIRMED ReservationStatus = "CONFIRMED"
	// ReservationStatus_CANCELLED indicates the reservation was cancelled.
	ReservationStatus_CANCELLED ReservationStatus = "CANCELLED"
)

var reservationSchema = Schema{
	Table: "reservations",
	Columns: []string{
		"id",
		"room_id",
		"guest_email",
		"check_in",
		"check_out",
		"status",
		"created_at",
	},
	GeneratedKey: true,
}

// Reservation books a room for a date range.
type Reservation struct {
	ID         int
	RoomID     int    `validate:"required"`
	GuestEmail string `validate:"required,email"`
	CheckIn    time.Time
	CheckOut   time.Time
	Status     ReservationStatus
	CreatedAt  time.Time
}

// Validate checks the date range of the reservation.
func (r Reservation) Validate(now time.Time) error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return NewValidationErr("check_in and check_out are required")
	}
	if !r.CheckOut.After(r.CheckIn) {
		return NewValidationErr("check_out must be after check_in")
	}
	if r.CheckIn.Before(now.Truncate(24 * time.Hour)) {
		return NewValidationErr("check_in cannot be in the past")
	}
	return nil
}

// Schema returns the table mapping of Reservation.
func (r *Reservation) Schema() Schema { return reservationSchema }

// Values returns the column values of the reservation.
func (r *Reservation) Values() []any {
	return []any{
		r.ID,
		r.RoomID,
		r.GuestEmail,
		r.CheckIn,
		r.CheckOut,
		r.Status,
		r.CreatedAt,
	}
}

// Pointers returns scan destinations for the reservation columns.
func (r *Reservation) Pointers() []any {
	return []any{
		&r.ID,
		&r.RoomID,
		&r.GuestEmail,
		&r.CheckIn,
		&r.CheckOut,
		&r.Status,
		&r.CreatedAt,
	}
}
