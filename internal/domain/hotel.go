package domain

import "time"

var hotelSchema = Schema{
	Table: "hotels",
	Columns: []string{
		"id",
		"name",
		"address",
		"city",
		"country",
		"description",
		"average_rating",
		"total_reviews",
		"phone_number",
		"created_at",
		"updated_at",
		"is_deleted",
	},
	GeneratedKey: true,
}

// Hotel represents a hotel listed in the booking system.
type Hotel struct {
	ID            int
	Name          string  `validate:"required,max=256"`
	Address       string  `validate:"required,max=512"`
	City          string  `validate:"required,max=100"`
	Country       string  `validate:"required,max=100"`
	Description   *string `validate:"omitempty,max=2000"`
	AverageRating float64 `validate:"gte=0,lte=5"`
	TotalReviews  int     `validate:"gte=0"`
	PhoneNumber   string  `validate:"required,max=15"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsDeleted     bool
}

// Schema returns the table mapping of Hotel.
func (h *Hotel) Schema() Schema { return hotelSchema }

// Values returns the column values of the hotel.
func (h *Hotel) Values() []any {
	return []any{
		h.ID,
		h.Name,
		h.Address,
		h.City,
		h.Country,
		h.Description,
		h.AverageRating,
		h.TotalReviews,
		h.PhoneNumber,
		h.CreatedAt,
		h.UpdatedAt,
		h.IsDeleted,
	}
}

// Pointers returns scan destinations for the hotel columns.
func (h *Hotel) Pointers() []any {
	return []any{
		&h.ID,
		&h.Name,
		&h.Address,
		&h.City,
		&h.Country,
		&h.Description,
		&h.AverageRating,
		&h.TotalReviews,
		&h.PhoneNumber,
		&h.CreatedAt,
		&h.UpdatedAt,
		&h.IsDeleted,
	}
}
