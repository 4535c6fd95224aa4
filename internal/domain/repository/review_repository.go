package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user has already reviewed the vendor.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines the interface for review database operations.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID.
	FindReviewByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindReviewByVendorAndUser retrieves the review a user left on a vendor.
	FindReviewByVendorAndUser(ctx context.Context, vendorID int64, userID uuid.UUID) (*entity.Review, error)

	// FindPublishedReviews retrieves up to limit of a vendor's published
	// reviews with reviewer names, newest first. limit <= 0 means no limit.
	FindPublishedReviews(ctx context.Context, vendorID int64, limit int) ([]*entity.Review, error)

	// ListRatings returns every published rating value currently stored for
	// the vendor. Used to recompute the profile aggregate from scratch.
	ListRatings(ctx context.Context, vendorID int64) ([]int, error)

	// DeleteReview removes a review row.
	DeleteReview(ctx context.Context, id int64) error

	// DeleteReviewsByUser removes every review the user has written and
	// returns the IDs of the vendors whose aggregates must be recomputed.
	DeleteReviewsByUser(ctx context.Context, userID uuid.UUID) ([]int64, error)

	// ListAllReviews returns every review with reviewer names for the admin
	// console, newest first.
	ListAllReviews(ctx context.Context) ([]*entity.Review, error)
}
