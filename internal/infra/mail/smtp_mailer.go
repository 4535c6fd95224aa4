// Package mail sends vendor-facing notification emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"vendir/config"
	"vendir/internal/domain/entity"
	"vendir/internal/domain/service"
	"vendir/internal/errors"
)

// smtpMailer is a concrete implementation of the Mailer interface using net/smtp.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth: auth,
		from: cfg.SMTP.From,
	}, nil
}

// SendInquiryNotification notifies a vendor about a new inquiry.
func (m *smtpMailer) SendInquiryNotification(ctx context.Context, vendorEmail, businessName string, inquiry *entity.Inquiry) error {
	subject := fmt.Sprintf("New inquiry for %s", businessName)

	return m.send(ctx, vendorEmail, subject, inquiryNotificationBody(inquiry))
}

// SendReviewNotification notifies a vendor about a new review.
func (m *smtpMailer) SendReviewNotification(ctx context.Context, vendorEmail, businessName string, review *entity.Review) error {
	subject := fmt.Sprintf("New review for %s", businessName)

	return m.send(ctx, vendorEmail, subject, reviewNotificationBody(review))
}

// SendVerificationNotification notifies a vendor about a verification change.
func (m *smtpMailer) SendVerificationNotification(ctx context.Context, vendorEmail, businessName string, verified bool) error {
	subject := fmt.Sprintf("Verification update for %s", businessName)

	return m.send(ctx, vendorEmail, subject, verificationNotificationBody(verified))
}

func inquiryNotificationBody(inquiry *entity.Inquiry) string {
	var body strings.Builder
	body.WriteString("You have received a new inquiry.\r\n\r\n")
	if inquiry.EventDate != nil {
		fmt.Fprintf(&body, "Event date: %s\r\n\r\n", inquiry.EventDate.Format("2006-01-02"))
	}
	body.WriteString(inquiry.Message)

	return body.String()
}

func reviewNotificationBody(review *entity.Review) string {
	var body strings.Builder
	fmt.Fprintf(&body, "%s rated your profile %d out of %d.\r\n", review.ReviewerName, review.Rating, entity.MaxRating)
	if review.ReviewText != nil && *review.ReviewText != "" {
		fmt.Fprintf(&body, "\r\n%s\r\n", *review.ReviewText)
	}

	return body.String()
}

func verificationNotificationBody(verified bool) string {
	if verified {
		return "Your profile has been verified and is now visible in the directory.\r\n"
	}

	return "Your profile verification has been revoked. It is no longer listed in the directory.\r\n"
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send canceled")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
