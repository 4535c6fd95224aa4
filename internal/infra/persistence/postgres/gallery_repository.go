package postgres

import (
	"context"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// galleryRepository implements the repository.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

// CreateImage persists a new gallery image.
func (repo *galleryRepository) CreateImage(ctx context.Context, image *entity.GalleryImage) error {
	imageM := fromGalleryImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery image")
	}

	// Update the entity with generated values
	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindImageByID retrieves an image by its unique ID.
func (repo *galleryRepository) FindImageByID(ctx context.Context, id int64) (*entity.GalleryImage, error) {
	var imageM model.GalleryImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGalleryImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find gallery image by ID")
	}

	return toGalleryImageDomain(&imageM), nil
}

// FindImagesByVendor retrieves all of a vendor's images, oldest first.
func (repo *galleryRepository) FindImagesByVendor(ctx context.Context, vendorID int64) ([]*entity.GalleryImage, error) {
	var imageModels []*model.GalleryImageModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gallery images by vendor")
	}

	images := make([]*entity.GalleryImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toGalleryImageDomain(imageM))
	}

	return images, nil
}

// FindOldestImage retrieves the vendor's earliest image.
func (repo *galleryRepository) FindOldestImage(ctx context.Context, vendorID int64) (*entity.GalleryImage, error) {
	var imageM model.GalleryImageModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGalleryImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find oldest gallery image")
	}

	return toGalleryImageDomain(&imageM), nil
}

// CountImages returns the number of images a vendor has.
func (repo *galleryRepository) CountImages(ctx context.Context, vendorID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GalleryImageModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count gallery images")
	}

	return count, nil
}

// SetCover marks the given image as cover.
func (repo *galleryRepository) SetCover(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GalleryImageModel{}).
		Where("id = ?", id).
		Update("is_cover_image", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set cover image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGalleryImageNotFound
	}

	return nil
}

// ClearCover unmarks every cover image of the vendor.
func (repo *galleryRepository) ClearCover(ctx context.Context, vendorID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.GalleryImageModel{}).
		Where("vendor_id = ? AND is_cover_image = ?", vendorID, true).
		Update("is_cover_image", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear cover images")
	}

	return nil
}

// DeleteImage removes an image row.
func (repo *galleryRepository) DeleteImage(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GalleryImageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete gallery image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGalleryImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGalleryImageDomain converts a GORM GalleryImageModel to a domain GalleryImage entity.
func toGalleryImageDomain(data *model.GalleryImageModel) *entity.GalleryImage {
	if data == nil {
		return nil
	}

	return &entity.GalleryImage{
		ID:        data.ID,
		VendorID:  data.VendorID,
		MediaURL:  data.MediaURL,
		MediaType: data.MediaType,
		IsCover:   data.IsCoverImage,
		CreatedAt: data.CreatedAt,
	}
}

// fromGalleryImageDomain converts a domain GalleryImage entity to a GORM GalleryImageModel.
func fromGalleryImageDomain(data *entity.GalleryImage) *model.GalleryImageModel {
	if data == nil {
		return nil
	}

	return &model.GalleryImageModel{
		ID:           data.ID,
		VendorID:     data.VendorID,
		MediaURL:     data.MediaURL,
		MediaType:    data.MediaType,
		IsCoverImage: data.IsCover,
	}
}
