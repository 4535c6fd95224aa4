package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"
)

// ErrGalleryImageNotFound is returned when a gallery image is not found.
var ErrGalleryImageNotFound = errors.New("gallery image not found")

// GalleryRepository defines the interface for gallery-image database operations.
type GalleryRepository interface {
	// CreateImage persists a new gallery image.
	CreateImage(ctx context.Context, image *entity.GalleryImage) error

	// FindImageByID retrieves an image by its unique ID.
	FindImageByID(ctx context.Context, id int64) (*entity.GalleryImage, error)

	// FindImagesByVendor retrieves all of a vendor's images, oldest first.
	FindImagesByVendor(ctx context.Context, vendorID int64) ([]*entity.GalleryImage, error)

	// FindOldestImage retrieves the vendor's earliest image, or
	// ErrGalleryImageNotFound when the gallery is empty.
	FindOldestImage(ctx context.Context, vendorID int64) (*entity.GalleryImage, error)

	// CountImages returns the number of images a vendor has.
	CountImages(ctx context.Context, vendorID int64) (int64, error)

	// SetCover marks the given image as cover.
	SetCover(ctx context.Context, id int64) error

	// ClearCover unmarks every cover image of the vendor.
	ClearCover(ctx context.Context, vendorID int64) error

	// DeleteImage removes an image row.
	DeleteImage(ctx context.Context, id int64) error
}
