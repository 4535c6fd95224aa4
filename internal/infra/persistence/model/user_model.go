package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	MobileNumber *string   `gorm:"type:varchar(20);unique"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	RoleID       int64     `gorm:"not null;default:3"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	VendorProfile *VendorProfileModel `gorm:"foreignKey:UserID"`
	Reviews       []ReviewModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
