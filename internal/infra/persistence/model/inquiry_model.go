package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryModel mirrors the 'inquiries' table. UserID is NULL for guest
// submissions; the sender's contact details live inside the message body.
type InquiryModel struct {
	ID         int64      `gorm:"primary_key"`
	VendorID   int64      `gorm:"not null;index"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	OccasionID *int64
	EventDate  *time.Time
	Message    string `gorm:"type:text;not null"`
	Status     string `gorm:"type:varchar(20);not null;default:'NEW'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Vendor   *VendorProfileModel `gorm:"foreignKey:VendorID"`
	Occasion *OccasionModel      `gorm:"foreignKey:OccasionID"`
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}
