// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every account carries exactly one
// role; an account with RoleVendor additionally owns one VendorProfile.
type User struct {
	ID           uuid.UUID `json:"id"`            // Global unique identifier for the account.
	FullName     string    `json:"full_name"`     // Display name shown on reviews and inquiries.
	Email        string    `json:"email"`         // Unique login identifier.
	MobileNumber *string   `json:"mobile_number"` // Optional, unique when present.
	PasswordHash string    `json:"-"`             // bcrypt hash; never serialized outward.
	Role         Role      `json:"role"`          // Resolved from the role id at load time.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
