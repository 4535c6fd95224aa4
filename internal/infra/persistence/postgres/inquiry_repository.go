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

// inquiryRepository implements the repository.InquiryRepository interface.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{
		db: db,
	}
}

// CreateInquiry persists a new inquiry.
func (repo *inquiryRepository) CreateInquiry(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inquiry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	// Update the entity with generated values
	inquiry.ID = inquiryM.ID
	inquiry.CreatedAt = inquiryM.CreatedAt
	inquiry.UpdatedAt = inquiryM.UpdatedAt

	return nil
}

// FindInquiryByID retrieves an inquiry by its unique ID.
func (repo *inquiryRepository) FindInquiryByID(ctx context.Context, id int64) (*entity.Inquiry, error) {
	var inquiryM model.InquiryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inquiry by ID")
	}

	return toInquiryDomain(&inquiryM), nil
}

// FindInquiriesByVendor retrieves a vendor's inquiries, newest first.
func (repo *inquiryRepository) FindInquiriesByVendor(ctx context.Context, vendorID int64) ([]*entity.Inquiry, error) {
	var inquiryModels []*model.InquiryModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&inquiryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inquiries by vendor")
	}

	inquiries := make([]*entity.Inquiry, 0, len(inquiryModels))
	for _, inquiryM := range inquiryModels {
		inquiries = append(inquiries, toInquiryDomain(inquiryM))
	}

	return inquiries, nil
}

// UpdateInquiryStatus changes an inquiry's status.
func (repo *inquiryRepository) UpdateInquiryStatus(ctx context.Context, id int64, status entity.InquiryStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update inquiry status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInquiryNotFound
	}

	return nil
}

// ListAllInquiries returns every inquiry with vendor and occasion context
// for the admin console, newest first.
func (repo *inquiryRepository) ListAllInquiries(ctx context.Context) ([]*entity.Inquiry, error) {
	var inquiryModels []*model.InquiryModel

	if err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Occasion").
		Order("created_at DESC").
		Find(&inquiryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(inquiryModels))
	for _, inquiryM := range inquiryModels {
		inquiries = append(inquiries, toInquiryDomain(inquiryM))
	}

	return inquiries, nil
}

// --- Mapper Functions ---

// toInquiryDomain converts a GORM InquiryModel to a domain Inquiry entity.
func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	if data == nil {
		return nil
	}

	inquiry := &entity.Inquiry{
		ID:         data.ID,
		VendorID:   data.VendorID,
		UserID:     data.UserID,
		OccasionID: data.OccasionID,
		EventDate:  data.EventDate,
		Message:    data.Message,
		Status:     entity.InquiryStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Vendor != nil && data.Vendor.BusinessName != nil {
		inquiry.VendorName = *data.Vendor.BusinessName
	}
	if data.Occasion != nil {
		inquiry.OccasionName = data.Occasion.Name
	}

	return inquiry
}

// fromInquiryDomain converts a domain Inquiry entity to a GORM InquiryModel.
func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	return &model.InquiryModel{
		ID:         data.ID,
		VendorID:   data.VendorID,
		UserID:     data.UserID,
		OccasionID: data.OccasionID,
		EventDate:  data.EventDate,
		Message:    data.Message,
		Status:     string(data.Status),
	}
}
