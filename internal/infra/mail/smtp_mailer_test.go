package mail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendir/config"
	"vendir/internal/domain/entity"
)

func newTestSMTPConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SMTP.Host = "localhost"
	cfg.SMTP.Port = 2525
	cfg.SMTP.From = "noreply@example.com"

	return cfg
}

func TestNewSMTPMailer(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		mailer, err := NewSMTPMailer(newTestSMTPConfig())

		require.NoError(t, err)
		assert.NotNil(t, mailer)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := newTestSMTPConfig()
		cfg.SMTP.Host = ""

		mailer, err := NewSMTPMailer(cfg)

		assert.Error(t, err)
		assert.Nil(t, mailer)
	})
}

func TestReviewNotificationBody(t *testing.T) {
	t.Run("with review text", func(t *testing.T) {
		text := "Great venue, very responsive team."
		review := &entity.Review{
			Rating:       4,
			ReviewText:   &text,
			ReviewerName: "Priya Nair",
		}

		body := reviewNotificationBody(review)

		assert.Equal(t, "Priya Nair rated your profile 4 out of 5.\r\n\r\nGreat venue, very responsive team.\r\n", body)
	})

	t.Run("without review text", func(t *testing.T) {
		review := &entity.Review{
			Rating:       5,
			ReviewerName: "Priya Nair",
		}

		body := reviewNotificationBody(review)

		assert.Equal(t, "Priya Nair rated your profile 5 out of 5.\r\n", body)
	})

	t.Run("empty review text omitted", func(t *testing.T) {
		text := ""
		review := &entity.Review{
			Rating:       3,
			ReviewText:   &text,
			ReviewerName: "Priya Nair",
		}

		body := reviewNotificationBody(review)

		assert.Equal(t, "Priya Nair rated your profile 3 out of 5.\r\n", body)
	})
}

func TestInquiryNotificationBody(t *testing.T) {
	t.Run("with event date", func(t *testing.T) {
		eventDate := time.Date(2026, 11, 21, 0, 0, 0, 0, time.UTC)
		inquiry := &entity.Inquiry{
			Message:   "Name: Jane Doe\nEmail: jane@example.com\nPhone: N/A\n\nLooking for a December booking.",
			EventDate: &eventDate,
		}

		body := inquiryNotificationBody(inquiry)

		assert.Contains(t, body, "Event date: 2026-11-21")
		assert.Contains(t, body, inquiry.Message)
	})

	t.Run("without event date", func(t *testing.T) {
		inquiry := &entity.Inquiry{Message: "Looking for a December booking."}

		body := inquiryNotificationBody(inquiry)

		assert.NotContains(t, body, "Event date")
		assert.Contains(t, body, inquiry.Message)
	})
}

func TestVerificationNotificationBody(t *testing.T) {
	assert.Contains(t, verificationNotificationBody(true), "has been verified")
	assert.Contains(t, verificationNotificationBody(false), "has been revoked")
}

func TestSMTPMailerCanceledContext(t *testing.T) {
	mailer, err := NewSMTPMailer(newTestSMTPConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = mailer.SendReviewNotification(ctx, "vendor@example.com", "Sweet Crumbs", &entity.Review{Rating: 5})

	assert.Error(t, err)
}
