package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor profile is not found.
	ErrVendorNotFound = errors.New("vendor profile not found")
	// ErrDuplicateVendor is returned when the user already has a vendor profile.
	ErrDuplicateVendor = errors.New("vendor profile already exists")
	// ErrDuplicateSlug is returned when the requested slug is already taken.
	ErrDuplicateSlug = errors.New("slug already taken")
)

// VendorListFilter narrows the public directory listing. Zero values mean
// "no constraint". AmenityIDs and OccasionIDs match vendors that have at
// least one of the given IDs.
type VendorListFilter struct {
	Query         string
	CategorySlug  string
	CitySlug      string
	CategoryID    *int64
	SubCategoryID *int64
	CityID        *int64
	AreaID        *int64
	AmenityIDs    []int64
	OccasionIDs   []int64
	MinRating     *float64
	Page          int
	Limit         int
}

// Offset converts the 1-based page into a row offset.
func (f VendorListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * f.Limit
}

// VendorProfileUpdate carries the onboarding fields a vendor may change.
// Nil pointers leave the column untouched; the persistence layer writes
// only the fields each onboarding step supplies.
type VendorProfileUpdate struct {
	BusinessName  *string
	Slug          *string
	Description   *string
	CategoryID    *int64
	SubCategoryID *int64
	CityID        *int64
	AreaID        *int64
	Landmark      *string
}

// VendorRepository defines the interface for vendor-profile database operations.
type VendorRepository interface {
	// CreateVendorProfile persists an empty profile for the given user.
	CreateVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	// FindVendorByID retrieves a profile by primary key, including soft-deleted rows.
	FindVendorByID(ctx context.Context, id int64) (*entity.VendorProfile, error)

	// FindVendorByUserID retrieves the profile owned by the given user.
	FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	// FindPublicVendor retrieves a directory-visible profile by slug, with the
	// full association graph loaded. Soft-deleted profiles are excluded.
	FindPublicVendor(ctx context.Context, slug string) (*entity.VendorProfile, error)

	// FindPublicVendorByID is the numeric-id fallback of FindPublicVendor for
	// profiles that have not been assigned a slug yet.
	FindPublicVendorByID(ctx context.Context, id int64) (*entity.VendorProfile, error)

	// ListVendors returns one page of directory-visible profiles with their
	// card image, ordered by verification, rating, then recency.
	ListVendors(ctx context.Context, filter VendorListFilter) ([]*entity.VendorProfile, error)

	// CountVendors returns the total number of profiles matching the filter.
	CountVendors(ctx context.Context, filter VendorListFilter) (int64, error)

	// UpdateVendorProfile applies the non-nil fields of update to a profile.
	UpdateVendorProfile(ctx context.Context, id int64, update VendorProfileUpdate) error

	// SlugExists reports whether any profile other than excludeID holds slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// ReplaceAmenities sets a profile's amenity mappings to exactly the given IDs.
	ReplaceAmenities(ctx context.Context, vendorID int64, amenityIDs []int64) error

	// ReplaceOccasions sets a profile's occasion mappings to exactly the given IDs.
	ReplaceOccasions(ctx context.Context, vendorID int64, occasionIDs []int64) error

	// ReplaceSocialLinks sets a profile's social links to exactly the given set.
	ReplaceSocialLinks(ctx context.Context, vendorID int64, links []*entity.SocialLink) error

	// ReplaceOpeningHours sets a profile's weekly hours to exactly the given set.
	ReplaceOpeningHours(ctx context.Context, vendorID int64, hours []*entity.OpeningHour) error

	// UpdateRatingAggregate writes the recomputed average rating and review count.
	UpdateRatingAggregate(ctx context.Context, vendorID int64, avgRating float64, reviewCount int) error

	// SetVerification toggles the admin verification flag.
	SetVerification(ctx context.Context, vendorID int64, verified bool) error

	// SetDeleted toggles the soft-delete flag.
	SetDeleted(ctx context.Context, vendorID int64, deleted bool) error

	// DeleteVendorData hard-deletes a profile and its dependent rows
	// (gallery, mappings, social links, hours, inquiries, reviews).
	DeleteVendorData(ctx context.Context, vendorID int64) error

	// ListAllVendors returns every profile, including unverified and
	// soft-deleted ones, for the admin console.
	ListAllVendors(ctx context.Context) ([]*entity.VendorProfile, error)
}
