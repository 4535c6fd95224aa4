package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"
)

// ErrInquiryNotFound is returned when an inquiry is not found.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository defines the interface for inquiry database operations.
type InquiryRepository interface {
	// CreateInquiry persists a new inquiry.
	CreateInquiry(ctx context.Context, inquiry *entity.Inquiry) error

	// FindInquiryByID retrieves an inquiry by its unique ID.
	FindInquiryByID(ctx context.Context, id int64) (*entity.Inquiry, error)

	// FindInquiriesByVendor retrieves a vendor's inquiries, newest first.
	FindInquiriesByVendor(ctx context.Context, vendorID int64) ([]*entity.Inquiry, error)

	// UpdateInquiryStatus changes an inquiry's status.
	UpdateInquiryStatus(ctx context.Context, id int64, status entity.InquiryStatus) error

	// ListAllInquiries returns every inquiry with vendor and occasion context
	// for the admin console, newest first.
	ListAllInquiries(ctx context.Context) ([]*entity.Inquiry, error)
}
