package usecase

import (
	"context"
	"io"

	"vendir/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadImageInput carries one uploaded media item. Exactly one of Body or
// MediaURL must be set: Body streams a file into blob storage, MediaURL
// records an externally hosted image as-is.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
	MediaURL    string
}

// GalleryUsecase defines the owner-side contract for gallery management.
type GalleryUsecase interface {
	// ListImages returns the vendor's gallery, oldest first.
	ListImages(ctx context.Context, userID uuid.UUID) ([]*entity.GalleryImage, error)

	// UploadImage stores a new image. The vendor's first image automatically
	// becomes the cover.
	UploadImage(ctx context.Context, userID uuid.UUID, input UploadImageInput) (*entity.GalleryImage, error)

	// DeleteImage removes an owned image. When the cover is deleted, the
	// oldest remaining image is promoted.
	DeleteImage(ctx context.Context, userID uuid.UUID, imageID int64) error

	// SetCoverImage makes the given owned image the sole cover.
	SetCoverImage(ctx context.Context, userID uuid.UUID, imageID int64) error
}
