package impl

import (
	"context"
	"testing"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	mockRepo "vendir/internal/mocks/repository"
	mockSvc "vendir/internal/mocks/service"
	"vendir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	vendorRepo *mockRepo.MockVendorRepository
	userRepo   *mockRepo.MockUserRepository
	mailer     *mockSvc.MockMailer
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		VendorRepo: vendorRepo,
		UserRepo:   userRepo,
		Mailer:     mailer,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
		mailer:     mailer,
	}
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: uuid.New()}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindReviewByVendorAndUser(ctx, int64(1), reviewerID).
		Return(nil, repository.ErrReviewNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

			mockReviewRepo.EXPECT().
				CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = 7
				}).
				Return(nil)

			// The aggregate is rebuilt from the rows, not nudged incrementally.
			mockReviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{5, 4}, nil)
			mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(1), 4.5, 2).Return(nil)

			return fn(mockFactory)
		})

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   reviewerID,
		Rating:   4,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), review.ID)
	assert.True(t, review.IsPublished)
}

func TestReviewService_SubmitReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		review, err := fx.service.SubmitReview(context.Background(), usecase.SubmitReviewInput{
			VendorID: 1,
			UserID:   uuid.New(),
			Rating:   rating,
		})

		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domainerrors.ErrRatingOutOfRange))
	}
}

func TestReviewService_SubmitReview_OwnVendor(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: ownerID}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   ownerID,
		Rating:   5,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewOwnVendor))
}

func TestReviewService_SubmitReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: uuid.New()}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindReviewByVendorAndUser(ctx, int64(1), reviewerID).
		Return(&entity.Review{ID: 3}, nil)

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   reviewerID,
		Rating:   5,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
}

func TestReviewService_SubmitReview_ConcurrentDuplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: uuid.New()}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindReviewByVendorAndUser(ctx, int64(1), reviewerID).
		Return(nil, repository.ErrReviewNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateReview)

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   reviewerID,
		Rating:   5,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
}

func TestReviewService_SubmitReview_VendorNotPublic(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		FindPublicVendorByID(ctx, int64(1)).
		Return(nil, repository.ErrVendorNotFound)

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   uuid.New(),
		Rating:   5,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestReviewService_SubmitReview_NotificationFailureSwallowed(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	vendor := &entity.VendorProfile{
		ID:           1,
		UserID:       uuid.New(),
		BusinessName: strPtr("Sweet Crumbs"),
		Owner:        &entity.VendorOwner{FullName: "Owner", Email: "owner@example.com"},
	}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindReviewByVendorAndUser(ctx, int64(1), reviewerID).
		Return(nil, repository.ErrReviewNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

			mockReviewRepo.EXPECT().
				CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)
			mockReviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{5}, nil)
			mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(1), 5.0, 1).Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		FindUserByID(ctx, reviewerID).
		Return(&entity.User{ID: reviewerID, FullName: "Priya Nair"}, nil)

	fx.mailer.EXPECT().
		SendReviewNotification(ctx, "owner@example.com", "Sweet Crumbs", mock.AnythingOfType("*entity.Review")).
		Return(errors.New("smtp unavailable"))

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   reviewerID,
		Rating:   5,
	})

	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_SubmitReview_NotificationCarriesReviewerName(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	vendor := &entity.VendorProfile{
		ID:           1,
		UserID:       uuid.New(),
		BusinessName: strPtr("Sweet Crumbs"),
		Owner:        &entity.VendorOwner{FullName: "Owner", Email: "owner@example.com"},
	}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindReviewByVendorAndUser(ctx, int64(1), reviewerID).
		Return(nil, repository.ErrReviewNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

			mockReviewRepo.EXPECT().
				CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)
			mockReviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{4}, nil)
			mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(1), 4.0, 1).Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		FindUserByID(ctx, reviewerID).
		Return(&entity.User{ID: reviewerID, FullName: "Priya Nair"}, nil)

	fx.mailer.EXPECT().
		SendReviewNotification(ctx, "owner@example.com", "Sweet Crumbs", mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, vendorEmail string, businessName string, review *entity.Review) {
			assert.Equal(t, "Priya Nair", review.ReviewerName)
		}).
		Return(nil)

	review, err := fx.service.SubmitReview(ctx, usecase.SubmitReviewInput{
		VendorID: 1,
		UserID:   reviewerID,
		Rating:   4,
	})

	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", review.ReviewerName)
}
