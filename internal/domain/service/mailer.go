package service

import (
	"context"

	"vendir/internal/domain/entity"
)

// Mailer defines the interface for outbound email notifications.
// Delivery failures are logged by implementations and never fail the
// triggering operation.
type Mailer interface {
	// SendInquiryNotification notifies a vendor about a new inquiry.
	SendInquiryNotification(ctx context.Context, vendorEmail, businessName string, inquiry *entity.Inquiry) error

	// SendReviewNotification notifies a vendor about a new review.
	SendReviewNotification(ctx context.Context, vendorEmail, businessName string, review *entity.Review) error

	// SendVerificationNotification notifies a vendor that an admin changed
	// their verification status.
	SendVerificationNotification(ctx context.Context, vendorEmail, businessName string, verified bool) error
}
