package usecase

import (
	"context"

	"vendir/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput is a rating left by a registered user.
type SubmitReviewInput struct {
	VendorID   int64
	UserID     uuid.UUID
	Rating     int
	ReviewText *string
}

// ReviewUsecase defines the contract for review submission.
type ReviewUsecase interface {
	// SubmitReview rejects duplicates and self-reviews, stores the review,
	// recomputes the vendor's rating aggregate by full rescan, and notifies
	// the vendor by email best-effort.
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*entity.Review, error)
}
