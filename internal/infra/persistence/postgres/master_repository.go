package postgres

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/domain/repository"
	"vendir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// masterRepository implements the repository.MasterRepository interface.
type masterRepository struct {
	db *gorm.DB
}

// NewMasterRepository is the constructor for masterRepository.
func NewMasterRepository(db *gorm.DB) repository.MasterRepository {
	return &masterRepository{
		db: db,
	}
}

// ListCategories retrieves categories with their subcategories, by name.
func (repo *masterRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_categories.name ASC")
		}).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// ListCities retrieves cities with their regions and areas, by name.
func (repo *masterRepository) ListCities(ctx context.Context) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	if err := repo.db.WithContext(ctx).
		Preload("Regions", func(db *gorm.DB) *gorm.DB {
			return db.Order("regions.name ASC")
		}).
		Preload("Regions.Areas", func(db *gorm.DB) *gorm.DB {
			return db.Order("areas.name ASC")
		}).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

// ListAmenities retrieves all amenities, by name.
func (repo *masterRepository) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityModels []*model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&amenityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityModels))
	for _, amenityM := range amenityModels {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// ListOccasions retrieves all occasions, by name.
func (repo *masterRepository) ListOccasions(ctx context.Context) ([]*entity.Occasion, error) {
	var occasionModels []*model.OccasionModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&occasionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list occasions")
	}

	occasions := make([]*entity.Occasion, 0, len(occasionModels))
	for _, occasionM := range occasionModels {
		occasions = append(occasions, toOccasionDomain(occasionM))
	}

	return occasions, nil
}

// FindSubCategoryByID retrieves a subcategory by its unique ID.
func (repo *masterRepository) FindSubCategoryByID(ctx context.Context, id int64) (*entity.SubCategory, error) {
	var subCategoryM model.SubCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subCategoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMasterRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find subcategory by ID")
	}

	return toSubCategoryDomain(&subCategoryM), nil
}

// FindAreaByID retrieves an area with its region, so callers can walk up to
// the owning city.
func (repo *masterRepository) FindAreaByID(ctx context.Context, id int64) (*entity.Area, error) {
	var areaM model.AreaModel

	if err := repo.db.WithContext(ctx).
		Preload("Region").
		Where("id = ?", id).
		First(&areaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMasterRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find area by ID")
	}

	return toAreaDomain(&areaM), nil
}

// AmenitiesExist reports whether every given amenity ID exists.
func (repo *masterRepository) AmenitiesExist(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AmenityModel{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count amenities")
	}

	return count == int64(len(ids)), nil
}

// OccasionsExist reports whether every given occasion ID exists.
func (repo *masterRepository) OccasionsExist(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OccasionModel{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count occasions")
	}

	return count == int64(len(ids)), nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	category := &entity.Category{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
	for _, subM := range data.SubCategories {
		category.SubCategories = append(category.SubCategories, toSubCategoryDomain(subM))
	}

	return category
}

func toSubCategoryDomain(data *model.SubCategoryModel) *entity.SubCategory {
	if data == nil {
		return nil
	}

	return &entity.SubCategory{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		CategoryID: data.CategoryID,
	}
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	city := &entity.City{
		ID:      data.ID,
		Name:    data.Name,
		Slug:    data.Slug,
		StateID: data.StateID,
	}
	for _, regionM := range data.Regions {
		city.Regions = append(city.Regions, toRegionDomain(regionM))
	}

	return city
}

func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	region := &entity.Region{
		ID:     data.ID,
		Name:   data.Name,
		Slug:   data.Slug,
		CityID: data.CityID,
	}
	for _, areaM := range data.Areas {
		region.Areas = append(region.Areas, toAreaDomain(areaM))
	}

	return region
}

func toAreaDomain(data *model.AreaModel) *entity.Area {
	if data == nil {
		return nil
	}

	return &entity.Area{
		ID:       data.ID,
		Name:     data.Name,
		Slug:     data.Slug,
		RegionID: data.RegionID,
		Region:   toRegionDomain(data.Region),
	}
}

func toAmenityDomain(data *model.AmenityModel) *entity.Amenity {
	if data == nil {
		return nil
	}

	return &entity.Amenity{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
}

func toOccasionDomain(data *model.OccasionModel) *entity.Occasion {
	if data == nil {
		return nil
	}

	return &entity.Occasion{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
}
