package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating and MaxRating bound the accepted star values.
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by a registered user on a vendor profile.
// ReviewerName is filled from the users table on read and is not stored.
// Only published reviews are shown publicly or counted in the aggregate.
type Review struct {
	ID           int64     `json:"id"`
	VendorID     int64     `json:"vendor_id"`
	UserID       uuid.UUID `json:"user_id"`
	Rating       int       `json:"rating"`
	ReviewText   *string   `json:"review_text"`
	IsPublished  bool      `json:"is_published"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
