package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"
)

// ErrMasterRecordNotFound is returned when a catalog record is not found.
var ErrMasterRecordNotFound = errors.New("catalog record not found")

// MasterRepository defines read access to the catalog tables that back
// directory filters and onboarding option lists.
type MasterRepository interface {
	// ListCategories retrieves categories with their subcategories, by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListCities retrieves cities with their regions and areas, by name.
	ListCities(ctx context.Context) ([]*entity.City, error)

	// ListAmenities retrieves all amenities, by name.
	ListAmenities(ctx context.Context) ([]*entity.Amenity, error)

	// ListOccasions retrieves all occasions, by name.
	ListOccasions(ctx context.Context) ([]*entity.Occasion, error)

	// FindSubCategoryByID retrieves a subcategory by its unique ID.
	FindSubCategoryByID(ctx context.Context, id int64) (*entity.SubCategory, error)

	// FindAreaByID retrieves an area by its unique ID.
	FindAreaByID(ctx context.Context, id int64) (*entity.Area, error)

	// AmenitiesExist reports whether every given amenity ID exists.
	AmenitiesExist(ctx context.Context, ids []int64) (bool, error)

	// OccasionsExist reports whether every given occasion ID exists.
	OccasionsExist(ctx context.Context, ids []int64) (bool, error)
}
