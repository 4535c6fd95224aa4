package usecase

import (
	"context"

	"vendir/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserRoleInput changes another account's role.
type UpdateUserRoleInput struct {
	UserID uuid.UUID
	Role   entity.Role
}

// SetVerificationInput toggles a vendor's directory visibility.
type SetVerificationInput struct {
	VendorID int64
	Verified bool
}

// AdminUsecase defines the moderation contract. Every operation requires the
// caller to hold the admin role; callerID identifies the acting admin.
type AdminUsecase interface {
	ListUsers(ctx context.Context, callerID uuid.UUID) ([]*entity.User, error)

	// DeleteUser removes an account and all of its vendor-owned data in one
	// transaction. Self-deletion and deletion of admins are forbidden.
	DeleteUser(ctx context.Context, callerID, userID uuid.UUID) error

	// UpdateUserRole changes another account's role. Changing one's own role
	// is forbidden.
	UpdateUserRole(ctx context.Context, callerID uuid.UUID, input UpdateUserRoleInput) error

	ListVendors(ctx context.Context, callerID uuid.UUID) ([]*entity.VendorProfile, error)

	// SetVendorVerification toggles the verification flag and notifies the
	// vendor by email best-effort.
	SetVendorVerification(ctx context.Context, callerID uuid.UUID, input SetVerificationInput) error

	ListReviews(ctx context.Context, callerID uuid.UUID) ([]*entity.Review, error)

	// ListInquiries returns every inquiry with vendor and occasion context
	// for the admin console.
	ListInquiries(ctx context.Context, callerID uuid.UUID) ([]*entity.Inquiry, error)

	// DeleteReview removes a review and recomputes the vendor's aggregate;
	// an emptied set resets it to zero.
	DeleteReview(ctx context.Context, callerID uuid.UUID, reviewID int64) error
}
