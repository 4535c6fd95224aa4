package usecase

import (
	"context"
	"time"

	"vendir/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitInquiryInput is a lead submitted against a vendor profile. UserID is
// nil for guests; the contact fields are folded into the stored message.
type SubmitInquiryInput struct {
	VendorID   int64
	UserID     *uuid.UUID
	Name       string
	Email      string
	Phone      *string
	OccasionID *int64
	EventDate  *time.Time
	Message    string
}

// UpdateInquiryStatusInput changes the state of an owned inquiry. Any status
// may be set at any time.
type UpdateInquiryStatusInput struct {
	InquiryID int64
	Status    entity.InquiryStatus
}

// InquiryUsecase defines the contract for lead submission and management.
type InquiryUsecase interface {
	// SubmitInquiry validates and stores a new inquiry, then notifies the
	// vendor by email best-effort.
	SubmitInquiry(ctx context.Context, input SubmitInquiryInput) (*entity.Inquiry, error)

	// ListInquiries returns the calling vendor's inquiries, newest first,
	// optionally filtered by status.
	ListInquiries(ctx context.Context, userID uuid.UUID, status *entity.InquiryStatus) ([]*entity.Inquiry, error)

	// UpdateStatus changes an inquiry's status. Only the owning vendor may
	// mutate; ownership mismatch is rejected before the row is touched.
	UpdateStatus(ctx context.Context, userID uuid.UUID, input UpdateInquiryStatusInput) error
}
