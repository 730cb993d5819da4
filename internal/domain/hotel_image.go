package domain

import (
	"context"
	"time"
)

var hotelImageSchema = Schema{
	Table: "hotel_images",
	Columns: []string{
		"id",
		"hotel_id",
		"image_url",
		"is_main",
		"content_type",
		"size_bytes",
		"verified_at",
		"created_at",
	},
	GeneratedKey: true,
}

// HotelImage is a picture attached to a hotel. ContentType, SizeBytes and
// VerifiedAt are filled in by background post-processing.
type HotelImage struct {
	ID          int
	HotelID     int
	ImageURL    string `validate:"required,url"`
	IsMain      bool
	ContentType *string
	SizeBytes   *int64
	VerifiedAt  *time.Time
	CreatedAt   time.Time
}

// Schema returns the table mapping of HotelImage.
func (i *HotelImage) Schema() Schema { return hotelImageSchema }

// Values returns the column values of the image.
func (i *HotelImage) Values() []any {
	return []any{
		i.ID,
		i.HotelID,
		i.ImageURL,
		i.IsMain,
		i.ContentType,
		i.SizeBytes,
		i.VerifiedAt,
		i.CreatedAt,
	}
}

// Pointers returns scan destinations for the image columns.
func (i *HotelImage) Pointers() []any {
	return []any{
		&i.ID,
		&i.HotelID,
		&i.ImageURL,
		&i.IsMain,
		&i.ContentType,
		&i.SizeBytes,
		&i.VerifiedAt,
		&i.CreatedAt,
	}
}

// ImageMetadata is what an image probe learns about a remote image.
// SizeBytes is nil when the server does not announce the size.
type ImageMetadata struct {
	ContentType string
	SizeBytes   *int64
}

// ImageInspector fetches metadata of remotely stored images.
type ImageInspector interface {
	Inspect(ctx context.Context, url string) (ImageMetadata, error)
}
