package postgres

import (
	"context"
	"sort"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// CreateVendorProfile persists an empty profile for the given user.
func (repo *vendorRepository) CreateVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	vendorM := &model.VendorProfileModel{UserID: userID}

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateVendor
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	return toVendorDomain(vendorM), nil
}

// FindVendorByID retrieves a profile by primary key, including soft-deleted rows.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id int64) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorByUserID retrieves the profile owned by the given user.
func (repo *vendorRepository) FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Occasions").
		Preload("SocialLinks").
		Preload("OpeningHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("opening_hours.day_of_week ASC")
		}).
		Where("user_id = ?", userID).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindPublicVendor retrieves a directory-visible profile by slug with the
// full association graph loaded.
func (repo *vendorRepository) FindPublicVendor(ctx context.Context, slug string) (*entity.VendorProfile, error) {
	return repo.findPublicVendor(ctx, "slug = ?", slug)
}

// FindPublicVendorByID is the numeric-id fallback of FindPublicVendor.
func (repo *vendorRepository) FindPublicVendorByID(ctx context.Context, id int64) (*entity.VendorProfile, error) {
	return repo.findPublicVendor(ctx, "id = ?", id)
}

func (repo *vendorRepository) findPublicVendor(ctx context.Context, cond string, arg any) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("SubCategory").
		Preload("City").
		Preload("Area").
		Preload("Amenities").
		Preload("Occasions").
		Preload("SocialLinks").
		Preload("OpeningHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("opening_hours.day_of_week ASC")
		}).
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order("gallery_images.created_at ASC")
		}).
		Where("is_deleted = ?", false).
		Where("is_verified = ?", true).
		Where("business_name IS NOT NULL AND category_id IS NOT NULL AND city_id IS NOT NULL").
		Where(cond, arg).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find public vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// directoryScope applies the base visibility predicate plus the caller's
// filter. A profile is directory-visible once it is verified and has at
// least a business name, a category, and a city.
func directoryScope(filter repository.VendorListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.
			Where("vendor_profiles.is_deleted = ?", false).
			Where("vendor_profiles.is_verified = ?", true).
			Where("vendor_profiles.business_name IS NOT NULL").
			Where("vendor_profiles.category_id IS NOT NULL").
			Where("vendor_profiles.city_id IS NOT NULL")

		if filter.Query != "" {
			db = db.Where("vendor_profiles.business_name ILIKE ?", "%"+filter.Query+"%")
		}
		if filter.CategorySlug != "" {
			db = db.Where(
				"vendor_profiles.category_id IN (SELECT id FROM categories WHERE slug = ?)",
				filter.CategorySlug,
			)
		}
		if filter.CitySlug != "" {
			db = db.Where(
				"vendor_profiles.city_id IN (SELECT id FROM cities WHERE slug = ?)",
				filter.CitySlug,
			)
		}
		if filter.CategoryID != nil {
			db = db.Where("vendor_profiles.category_id = ?", *filter.CategoryID)
		}
		if filter.SubCategoryID != nil {
			db = db.Where("vendor_profiles.sub_category_id = ?", *filter.SubCategoryID)
		}
		if filter.CityID != nil {
			db = db.Where("vendor_profiles.city_id = ?", *filter.CityID)
		}
		if filter.AreaID != nil {
			db = db.Where("vendor_profiles.area_id = ?", *filter.AreaID)
		}
		if filter.MinRating != nil {
			db = db.Where("vendor_profiles.avg_rating >= ?", *filter.MinRating)
		}
		if len(filter.AmenityIDs) > 0 {
			db = db.Where(
				"EXISTS (SELECT 1 FROM vendor_amenities va WHERE va.vendor_id = vendor_profiles.id AND va.amenity_id IN ?)",
				filter.AmenityIDs,
			)
		}
		if len(filter.OccasionIDs) > 0 {
			db = db.Where(
				"EXISTS (SELECT 1 FROM vendor_occasions vo WHERE vo.vendor_id = vendor_profiles.id AND vo.occasion_id IN ?)",
				filter.OccasionIDs,
			)
		}

		return db
	}
}

// ListVendors returns one page of directory-visible profiles with their
// card image, ordered by verification, rating, then recency.
func (repo *vendorRepository) ListVendors(ctx context.Context, filter repository.VendorListFilter) ([]*entity.VendorProfile, error) {
	var vendorModels []*model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Scopes(directoryScope(filter)).
		Preload("Category").
		Preload("SubCategory").
		Preload("City").
		Preload("Area").
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order("gallery_images.created_at ASC")
		}).
		Order("is_verified DESC, avg_rating DESC, created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.VendorProfile, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// CountVendors returns the total number of profiles matching the filter.
func (repo *vendorRepository) CountVendors(ctx context.Context, filter repository.VendorListFilter) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Scopes(directoryScope(filter)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vendors")
	}

	return count, nil
}

// UpdateVendorProfile applies the non-nil fields of update to a profile.
func (repo *vendorRepository) UpdateVendorProfile(ctx context.Context, id int64, update repository.VendorProfileUpdate) error {
	columns := map[string]any{}
	if update.BusinessName != nil {
		columns["business_name"] = *update.BusinessName
	}
	if update.Slug != nil {
		columns["slug"] = *update.Slug
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.CategoryID != nil {
		columns["category_id"] = *update.CategoryID
	}
	if update.SubCategoryID != nil {
		columns["sub_category_id"] = *update.SubCategoryID
	}
	if update.CityID != nil {
		columns["city_id"] = *update.CityID
	}
	if update.AreaID != nil {
		columns["area_id"] = *update.AreaID
	}
	if update.Landmark != nil {
		columns["landmark"] = *update.Landmark
	}
	if len(columns) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrMasterRecordNotFound
		}

		return errors.Wrap(result.Error, "failed to update vendor profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// SlugExists reports whether any profile other than excludeID holds slug.
func (repo *vendorRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return count > 0, nil
}

// ReplaceAmenities sets a profile's amenity mappings to exactly the given IDs.
func (repo *vendorRepository) ReplaceAmenities(ctx context.Context, vendorID int64, amenityIDs []int64) error {
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&model.VendorAmenityModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear vendor amenities")
	}

	if len(amenityIDs) == 0 {
		return nil
	}

	rows := make([]model.VendorAmenityModel, 0, len(amenityIDs))
	for _, amenityID := range amenityIDs {
		rows = append(rows, model.VendorAmenityModel{VendorID: vendorID, AmenityID: amenityID})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMasterRecordNotFound
		}

		return errors.Wrap(err, "failed to insert vendor amenities")
	}

	return nil
}

// ReplaceOccasions sets a profile's occasion mappings to exactly the given IDs.
func (repo *vendorRepository) ReplaceOccasions(ctx context.Context, vendorID int64, occasionIDs []int64) error {
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&model.VendorOccasionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear vendor occasions")
	}

	if len(occasionIDs) == 0 {
		return nil
	}

	rows := make([]model.VendorOccasionModel, 0, len(occasionIDs))
	for _, occasionID := range occasionIDs {
		rows = append(rows, model.VendorOccasionModel{VendorID: vendorID, OccasionID: occasionID})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMasterRecordNotFound
		}

		return errors.Wrap(err, "failed to insert vendor occasions")
	}

	return nil
}

// ReplaceSocialLinks sets a profile's social links to exactly the given set.
func (repo *vendorRepository) ReplaceSocialLinks(ctx context.Context, vendorID int64, links []*entity.SocialLink) error {
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&model.SocialLinkModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear social links")
	}

	if len(links) == 0 {
		return nil
	}

	rows := make([]model.SocialLinkModel, 0, len(links))
	for _, link := range links {
		rows = append(rows, model.SocialLinkModel{
			VendorID: vendorID,
			Platform: link.Platform,
			URL:      link.URL,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to insert social links")
	}

	return nil
}

// ReplaceOpeningHours sets a profile's weekly hours to exactly the given set.
func (repo *vendorRepository) ReplaceOpeningHours(ctx context.Context, vendorID int64, hours []*entity.OpeningHour) error {
	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&model.OpeningHourModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear opening hours")
	}

	if len(hours) == 0 {
		return nil
	}

	rows := make([]model.OpeningHourModel, 0, len(hours))
	for _, hour := range hours {
		rows = append(rows, model.OpeningHourModel{
			VendorID:  vendorID,
			DayOfWeek: hour.DayOfWeek,
			OpensAt:   hour.OpensAt,
			ClosesAt:  hour.ClosesAt,
			IsClosed:  hour.IsClosed,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to insert opening hours")
	}

	return nil
}

// UpdateRatingAggregate writes the recomputed average rating and review count.
func (repo *vendorRepository) UpdateRatingAggregate(ctx context.Context, vendorID int64, avgRating float64, reviewCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", vendorID).
		Updates(map[string]any{
			"avg_rating":   avgRating,
			"review_count": reviewCount,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rating aggregate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// SetVerification toggles the admin verification flag.
func (repo *vendorRepository) SetVerification(ctx context.Context, vendorID int64, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", vendorID).
		Update("is_verified", verified)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update verification flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// SetDeleted toggles the soft-delete flag.
func (repo *vendorRepository) SetDeleted(ctx context.Context, vendorID int64, deleted bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", vendorID).
		Update("is_deleted", deleted)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update soft-delete flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// DeleteVendorData hard-deletes a profile and its dependent rows. Child rows
// go first so foreign keys never block the profile delete.
func (repo *vendorRepository) DeleteVendorData(ctx context.Context, vendorID int64) error {
	deletions := []any{
		&model.GalleryImageModel{},
		&model.VendorAmenityModel{},
		&model.VendorOccasionModel{},
		&model.SocialLinkModel{},
		&model.OpeningHourModel{},
		&model.InquiryModel{},
		&model.ReviewModel{},
	}
	for _, target := range deletions {
		if err := repo.db.WithContext(ctx).
			Where("vendor_id = ?", vendorID).
			Delete(target).Error; err != nil {
			return errors.Wrap(err, "failed to delete vendor dependents")
		}
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", vendorID).
		Delete(&model.VendorProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vendor profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ListAllVendors returns every profile for the admin console.
func (repo *vendorRepository) ListAllVendors(ctx context.Context) ([]*entity.VendorProfile, error) {
	var vendorModels []*model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("City").
		Order("created_at DESC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all vendors")
	}

	vendors := make([]*entity.VendorProfile, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorProfileModel to a domain VendorProfile
// entity, carrying over whichever associations were preloaded.
func toVendorDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	vendor := &entity.VendorProfile{
		ID:            data.ID,
		UserID:        data.UserID,
		BusinessName:  data.BusinessName,
		Slug:          data.Slug,
		Description:   data.Description,
		CategoryID:    data.CategoryID,
		SubCategoryID: data.SubCategoryID,
		CityID:        data.CityID,
		AreaID:        data.AreaID,
		Landmark:      data.Landmark,
		AvgRating:     data.AvgRating,
		ReviewCount:   data.ReviewCount,
		IsVerified:    data.IsVerified,
		IsDeleted:     data.IsDeleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.User != nil {
		vendor.Owner = &entity.VendorOwner{
			FullName:     data.User.FullName,
			Email:        data.User.Email,
			MobileNumber: data.User.MobileNumber,
		}
	}
	if data.Category != nil {
		vendor.Category = toCategoryDomain(data.Category)
	}
	if data.SubCategory != nil {
		vendor.SubCategory = toSubCategoryDomain(data.SubCategory)
	}
	if data.City != nil {
		vendor.City = toCityDomain(data.City)
	}
	if data.Area != nil {
		vendor.Area = toAreaDomain(data.Area)
	}
	for _, amenityM := range data.Amenities {
		vendor.Amenities = append(vendor.Amenities, toAmenityDomain(amenityM))
	}
	for _, occasionM := range data.Occasions {
		vendor.Occasions = append(vendor.Occasions, toOccasionDomain(occasionM))
	}
	for _, imageM := range data.Gallery {
		vendor.Gallery = append(vendor.Gallery, toGalleryImageDomain(imageM))
	}
	for _, linkM := range data.SocialLinks {
		vendor.SocialLinks = append(vendor.SocialLinks, &entity.SocialLink{
			ID:       linkM.ID,
			VendorID: linkM.VendorID,
			Platform: linkM.Platform,
			URL:      linkM.URL,
		})
	}
	for _, hourM := range data.OpeningHours {
		vendor.OpeningHours = append(vendor.OpeningHours, &entity.OpeningHour{
			ID:        hourM.ID,
			VendorID:  hourM.VendorID,
			DayOfWeek: hourM.DayOfWeek,
			OpensAt:   hourM.OpensAt,
			ClosesAt:  hourM.ClosesAt,
			IsClosed:  hourM.IsClosed,
		})
	}
	// Day order is part of the read contract even when rows arrive unsorted.
	sort.Slice(vendor.OpeningHours, func(i, j int) bool {
		return vendor.OpeningHours[i].DayOfWeek < vendor.OpeningHours[j].DayOfWeek
	})

	return vendor
}
