package mail

import (
	"context"
	"log/slog"

	"vendir/internal/domain/entity"
	"vendir/internal/domain/service"
)

// logMailer writes notifications to the log instead of sending them. Used in
// local development where no SMTP server is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendInquiryNotification(ctx context.Context, vendorEmail, businessName string, inquiry *entity.Inquiry) error {
	m.logger.InfoContext(ctx, "inquiry notification",
		slog.String("to", vendorEmail),
		slog.String("business", businessName),
		slog.Int64("inquiryID", inquiry.ID),
	)

	return nil
}

func (m *logMailer) SendReviewNotification(ctx context.Context, vendorEmail, businessName string, review *entity.Review) error {
	m.logger.InfoContext(ctx, "review notification",
		slog.String("to", vendorEmail),
		slog.String("business", businessName),
		slog.Int("rating", review.Rating),
	)

	return nil
}

func (m *logMailer) SendVerificationNotification(ctx context.Context, vendorEmail, businessName string, verified bool) error {
	m.logger.InfoContext(ctx, "verification notification",
		slog.String("to", vendorEmail),
		slog.String("business", businessName),
		slog.Bool("verified", verified),
	)

	return nil
}
