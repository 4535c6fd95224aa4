package postgres

import (
	"context"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindReviewByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindReviewByVendorAndUser retrieves the review a user left on a vendor.
func (repo *reviewRepository) FindReviewByVendorAndUser(ctx context.Context, vendorID int64, userID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND user_id = ?", vendorID, userID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by vendor and user")
	}

	return toReviewDomain(&reviewM), nil
}

// FindPublishedReviews retrieves up to limit of a vendor's published reviews
// with reviewer names, newest first.
func (repo *reviewRepository) FindPublishedReviews(ctx context.Context, vendorID int64, limit int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).
		Preload("User").
		Where("vendor_id = ? AND is_published = ?", vendorID, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// ListRatings returns every rating value currently stored for the vendor.
func (repo *reviewRepository) ListRatings(ctx context.Context, vendorID int64) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("vendor_id = ? AND is_published = ?", vendorID, true).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// DeleteReview removes a review row.
func (repo *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteReviewsByUser removes every review the user has written and returns
// the affected vendor IDs.
func (repo *reviewRepository) DeleteReviewsByUser(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	var vendorIDs []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("vendor_id", &vendorIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to collect reviewed vendor IDs")
	}

	if len(vendorIDs) == 0 {
		return nil, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete reviews by user")
	}

	return vendorIDs, nil
}

// ListAllReviews returns every review with reviewer names for the admin console.
func (repo *reviewRepository) ListAllReviews(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:          data.ID,
		VendorID:    data.VendorID,
		UserID:      data.UserID,
		Rating:      data.Rating,
		ReviewText:  data.ReviewText,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.User != nil {
		review.ReviewerName = data.User.FullName
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		UserID:      data.UserID,
		Rating:      data.Rating,
		ReviewText:  data.ReviewText,
		IsPublished: data.IsPublished,
	}
}
