package usecase

import (
	"context"

	"vendir/internal/domain/entity"
)

// ListVendorsInput narrows and pages the public directory listing.
type ListVendorsInput struct {
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
	PageSize      int
}

// ListVendorsOutput is one page of directory results with true totals.
type ListVendorsOutput struct {
	Vendors    []*entity.VendorProfile `json:"vendors"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalPages int                     `json:"total_pages"`
}

// VendorDetailOutput is the full public aggregate for one profile.
type VendorDetailOutput struct {
	Vendor  *entity.VendorProfile `json:"vendor"`
	Reviews []*entity.Review      `json:"reviews"`
}

// CatalogOutput bundles the master data behind directory filters and
// onboarding option lists.
type CatalogOutput struct {
	Categories []*entity.Category `json:"categories"`
	Cities     []*entity.City     `json:"cities"`
	Amenities  []*entity.Amenity  `json:"amenities"`
	Occasions  []*entity.Occasion `json:"occasions"`
}

// DirectoryUsecase defines the read-side contract of the public directory.
type DirectoryUsecase interface {
	// ListVendors returns one page of directory-visible profiles. An
	// out-of-range page yields an empty list with true totals.
	ListVendors(ctx context.Context, input ListVendorsInput) (*ListVendorsOutput, error)

	// GetVendor resolves a profile by slug, falling back to a primary-key
	// lookup when the identifier parses as an integer.
	GetVendor(ctx context.Context, identifier string) (*VendorDetailOutput, error)

	// GetCatalog returns the filter and onboarding option lists.
	GetCatalog(ctx context.Context) (*CatalogOutput, error)
}
