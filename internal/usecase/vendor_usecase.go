package usecase

import (
	"context"

	"vendir/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateBasicInfoInput is the first onboarding step. BusinessName drives
// slug assignment.
type UpdateBasicInfoInput struct {
	BusinessName string
	Description  *string
}

// UpdateCategoryInput is the category onboarding step.
type UpdateCategoryInput struct {
	CategoryID    int64
	SubCategoryID *int64
}

// UpdateLocationInput is the location onboarding step.
type UpdateLocationInput struct {
	CityID   int64
	AreaID   *int64
	Landmark *string
}

// UpdateAmenitiesInput replaces the vendor's amenity set.
type UpdateAmenitiesInput struct {
	AmenityIDs []int64
}

// UpdateOccasionsInput replaces the vendor's occasion set.
type UpdateOccasionsInput struct {
	OccasionIDs []int64
}

// SocialLinkInput is one external profile link.
type SocialLinkInput struct {
	Platform string
	URL      string
}

// OpeningHourInput is one weekday's hours.
type OpeningHourInput struct {
	DayOfWeek int
	OpensAt   string
	ClosesAt  string
	IsClosed  bool
}

// --- Output DTOs ---

// VendorProfileOutput is the owner-facing view of a profile with its derived
// completeness metric.
type VendorProfileOutput struct {
	Vendor *entity.VendorProfile `json:"vendor"`

	// CompletedFields counts how many of {businessName, categoryID, cityID,
	// amenities non-empty, occasions non-empty} are present. Informational
	// only; directory visibility depends solely on admin verification.
	CompletedFields int `json:"completed_fields"`
	TotalFields     int `json:"total_fields"`
}

// VendorAnalyticsOutput summarises a vendor's lead and review performance.
// Rates are percentages; RatingDistribution is keyed by star value.
type VendorAnalyticsOutput struct {
	TotalInquiries      int                          `json:"total_inquiries"`
	InquiriesLast7Days  int                          `json:"inquiries_last_7_days"`
	InquiriesLast30Days int                          `json:"inquiries_last_30_days"`
	InquiryStatusCounts map[entity.InquiryStatus]int `json:"inquiry_status_counts"`
	ConvertedInquiries  int                          `json:"converted_inquiries"`
	ConversionRate      float64                      `json:"conversion_rate"`
	TotalReviews        int                          `json:"total_reviews"`
	AvgRating           float64                      `json:"avg_rating"`
	RatingDistribution  map[int]int                  `json:"rating_distribution"`
}

// VendorUsecase defines the owner-side contract for vendor profile
// management. Every operation resolves the profile through the calling user
// and fails for accounts without one.
type VendorUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*VendorProfileOutput, error)
	UpdateBasicInfo(ctx context.Context, userID uuid.UUID, input UpdateBasicInfoInput) (*VendorProfileOutput, error)
	UpdateCategory(ctx context.Context, userID uuid.UUID, input UpdateCategoryInput) (*VendorProfileOutput, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, input UpdateLocationInput) (*VendorProfileOutput, error)
	UpdateAmenities(ctx context.Context, userID uuid.UUID, input UpdateAmenitiesInput) (*VendorProfileOutput, error)
	UpdateOccasions(ctx context.Context, userID uuid.UUID, input UpdateOccasionsInput) (*VendorProfileOutput, error)
	UpdateSocialLinks(ctx context.Context, userID uuid.UUID, links []SocialLinkInput) (*VendorProfileOutput, error)
	UpdateOpeningHours(ctx context.Context, userID uuid.UUID, hours []OpeningHourInput) (*VendorProfileOutput, error)

	// ProfileQR renders a PNG QR code pointing at the vendor's public
	// profile URL. Fails until a slug has been assigned.
	ProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// GetAnalytics computes inquiry and review performance numbers for the
	// owner dashboard.
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*VendorAnalyticsOutput, error)
}
