package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfile is the aggregate root of the vendor domain. A profile is
// created empty when a user upgrades to the vendor role and is filled in
// incrementally through onboarding; most columns stay NULL until then.
//
// The primary key is numeric (not a UUID) because public profile URLs accept
// either the slug or the raw id for profiles created before slug assignment.
type VendorProfile struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BusinessName  *string   `json:"business_name"`
	Slug          *string   `json:"slug"`
	Description   *string   `json:"description"`
	CategoryID    *int64    `json:"category_id"`
	SubCategoryID *int64    `json:"sub_category_id"`
	CityID        *int64    `json:"city_id"`
	AreaID        *int64    `json:"area_id"`
	Landmark      *string   `json:"landmark"`
	AvgRating     float64   `json:"avg_rating"`
	ReviewCount   int       `json:"review_count"`
	IsVerified    bool      `json:"is_verified"`
	IsDeleted     bool      `json:"is_deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations, populated per use case (never a blanket graph load).
	Owner        *VendorOwner    `json:"owner,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	SubCategory  *SubCategory    `json:"sub_category,omitempty"`
	City         *City           `json:"city,omitempty"`
	Area         *Area           `json:"area,omitempty"`
	Amenities    []*Amenity      `json:"amenities,omitempty"`
	Occasions    []*Occasion     `json:"occasions,omitempty"`
	Gallery      []*GalleryImage `json:"gallery,omitempty"`
	SocialLinks  []*SocialLink   `json:"social_links,omitempty"`
	OpeningHours []*OpeningHour  `json:"opening_hours,omitempty"`
	Reviews      []*Review       `json:"reviews,omitempty"`
}

// VendorOwner is the slice of the owning user exposed alongside a profile.
type VendorOwner struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	MobileNumber *string `json:"mobile_number"`
}

// CardImage returns the single gallery image attached for listing cards,
// or nil when the vendor has no images.
func (v *VendorProfile) CardImage() *GalleryImage {
	if len(v.Gallery) == 0 {
		return nil
	}

	return v.Gallery[0]
}

// SocialLink is an external profile link (instagram, website, ...).
type SocialLink struct {
	ID       int64  `json:"id"`
	VendorID int64  `json:"vendor_id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// OpeningHour describes one weekday's hours. DayOfWeek is 0 (Sunday) to 6.
type OpeningHour struct {
	ID        int64  `json:"id"`
	VendorID  int64  `json:"vendor_id"`
	DayOfWeek int    `json:"day_of_week"`
	OpensAt   string `json:"opens_at"`
	ClosesAt  string `json:"closes_at"`
	IsClosed  bool   `json:"is_closed"`
}
