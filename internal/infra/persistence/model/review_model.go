package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index
// enforces at most one review per user per vendor at the database level.
type ReviewModel struct {
	ID          int64     `gorm:"primary_key"`
	VendorID    int64     `gorm:"not null;uniqueIndex:idx_reviews_vendor_user"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_vendor_user"`
	Rating      int       `gorm:"not null"`
	ReviewText  *string   `gorm:"type:text"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
