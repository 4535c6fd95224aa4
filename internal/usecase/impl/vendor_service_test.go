package impl

import (
	"context"
	"testing"
	"time"

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

// vendorServiceFixtures holds all test dependencies for vendor service tests.
type vendorServiceFixtures struct {
	service     usecase.VendorUsecase
	txManager   *mockRepo.MockTransactionManager
	vendorRepo  *mockRepo.MockVendorRepository
	inquiryRepo *mockRepo.MockInquiryRepository
	reviewRepo  *mockRepo.MockReviewRepository
	masterRepo  *mockRepo.MockMasterRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	masterRepo := mockRepo.NewMockMasterRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewVendorService(VendorServiceParams{
		TxManager:   txManager,
		VendorRepo:  vendorRepo,
		InquiryRepo: inquiryRepo,
		ReviewRepo:  reviewRepo,
		MasterRepo:  masterRepo,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})

	return vendorServiceFixtures{
		service:     service,
		txManager:   txManager,
		vendorRepo:  vendorRepo,
		inquiryRepo: inquiryRepo,
		reviewRepo:  reviewRepo,
		masterRepo:  masterRepo,
		qrService:   qrService,
	}
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestVendorService_GetProfile_EmptyProfile(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.CompletedFields)
	assert.Equal(t, 5, output.TotalFields)
}

func TestVendorService_GetProfile_CompleteProfile(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{
		ID:           1,
		UserID:       userID,
		BusinessName: strPtr("Sweet Crumbs"),
		CategoryID:   int64Ptr(3),
		CityID:       int64Ptr(7),
		Amenities:    []*entity.Amenity{{ID: 1}},
		Occasions:    []*entity.Occasion{{ID: 2}},
	}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 5, output.CompletedFields)
	assert.Equal(t, 5, output.TotalFields)
}

func TestVendorService_GetProfile_NoProfile(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.vendorRepo.EXPECT().
		FindVendorByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	output, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestVendorService_UpdateBasicInfo_AssignsBaseSlug(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().SlugExists(ctx, "sweet-crumbs", int64(1)).Return(false, nil)

	fx.vendorRepo.EXPECT().
		UpdateVendorProfile(ctx, int64(1), mock.AnythingOfType("repository.VendorProfileUpdate")).
		Run(func(ctx context.Context, id int64, update repository.VendorProfileUpdate) {
			require.NotNil(t, update.BusinessName)
			assert.Equal(t, "Sweet Crumbs", *update.BusinessName)
			require.NotNil(t, update.Slug)
			assert.Equal(t, "sweet-crumbs", *update.Slug)
		}).
		Return(nil)

	output, err := fx.service.UpdateBasicInfo(ctx, userID, usecase.UpdateBasicInfoInput{
		BusinessName: "  Sweet Crumbs  ",
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestVendorService_UpdateBasicInfo_SuffixesTakenSlug(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().SlugExists(ctx, "sweet-crumbs", int64(1)).Return(true, nil)
	fx.vendorRepo.EXPECT().SlugExists(ctx, "sweet-crumbs-1", int64(1)).Return(true, nil)
	fx.vendorRepo.EXPECT().SlugExists(ctx, "sweet-crumbs-2", int64(1)).Return(false, nil)

	fx.vendorRepo.EXPECT().
		UpdateVendorProfile(ctx, int64(1), mock.AnythingOfType("repository.VendorProfileUpdate")).
		Run(func(ctx context.Context, id int64, update repository.VendorProfileUpdate) {
			require.NotNil(t, update.Slug)
			assert.Equal(t, "sweet-crumbs-2", *update.Slug)
		}).
		Return(nil)

	_, err := fx.service.UpdateBasicInfo(ctx, userID, usecase.UpdateBasicInfoInput{
		BusinessName: "Sweet Crumbs",
	})

	require.NoError(t, err)
}

func TestVendorService_UpdateBasicInfo_SlugExhausted(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	// Every candidate is taken; the loop must stop instead of spinning.
	fx.vendorRepo.EXPECT().
		SlugExists(ctx, mock.AnythingOfType("string"), int64(1)).
		Return(true, nil)

	output, err := fx.service.UpdateBasicInfo(ctx, userID, usecase.UpdateBasicInfoInput{
		BusinessName: "Sweet Crumbs",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugExhausted))
}

func TestVendorService_UpdateBasicInfo_EmptyName(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	output, err := fx.service.UpdateBasicInfo(ctx, uuid.New(), usecase.UpdateBasicInfoInput{
		BusinessName: "   ",
	})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestVendorService_UpdateBasicInfo_ConcurrentSlugConflict(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().SlugExists(ctx, "sweet-crumbs", int64(1)).Return(false, nil)

	fx.vendorRepo.EXPECT().
		UpdateVendorProfile(ctx, int64(1), mock.AnythingOfType("repository.VendorProfileUpdate")).
		Return(repository.ErrDuplicateSlug)

	output, err := fx.service.UpdateBasicInfo(ctx, userID, usecase.UpdateBasicInfoInput{
		BusinessName: "Sweet Crumbs",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestVendorService_UpdateCategory_SubCategoryMismatch(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.masterRepo.EXPECT().
		FindSubCategoryByID(ctx, int64(9)).
		Return(&entity.SubCategory{ID: 9, CategoryID: 99}, nil)

	output, err := fx.service.UpdateCategory(ctx, userID, usecase.UpdateCategoryInput{
		CategoryID:    3,
		SubCategoryID: int64Ptr(9),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSubCategoryMismatch))
}

func TestVendorService_UpdateCategory_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.masterRepo.EXPECT().
		FindSubCategoryByID(ctx, int64(9)).
		Return(&entity.SubCategory{ID: 9, CategoryID: 3}, nil)

	fx.vendorRepo.EXPECT().
		UpdateVendorProfile(ctx, int64(1), mock.AnythingOfType("repository.VendorProfileUpdate")).
		Return(nil)

	_, err := fx.service.UpdateCategory(ctx, userID, usecase.UpdateCategoryInput{
		CategoryID:    3,
		SubCategoryID: int64Ptr(9),
	})

	require.NoError(t, err)
}

func TestVendorService_UpdateLocation_AreaMismatch(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.masterRepo.EXPECT().
		FindAreaByID(ctx, int64(5)).
		Return(&entity.Area{ID: 5, Region: &entity.Region{ID: 2, CityID: 99}}, nil)

	output, err := fx.service.UpdateLocation(ctx, userID, usecase.UpdateLocationInput{
		CityID: 7,
		AreaID: int64Ptr(5),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAreaMismatch))
}

func TestVendorService_UpdateAmenities_UnknownAmenity(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.masterRepo.EXPECT().AmenitiesExist(ctx, []int64{1, 999}).Return(false, nil)

	output, err := fx.service.UpdateAmenities(ctx, userID, usecase.UpdateAmenitiesInput{
		AmenityIDs: []int64{1, 999},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestVendorService_UpdateAmenities_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.masterRepo.EXPECT().AmenitiesExist(ctx, []int64{1, 2}).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)
			mockVendorRepo.EXPECT().ReplaceAmenities(ctx, int64(1), []int64{1, 2}).Return(nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateAmenities(ctx, userID, usecase.UpdateAmenitiesInput{
		AmenityIDs: []int64{1, 2},
	})

	require.NoError(t, err)
}

func TestVendorService_UpdateOpeningHours_InvalidDay(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	output, err := fx.service.UpdateOpeningHours(ctx, userID, []usecase.OpeningHourInput{
		{DayOfWeek: 7, OpensAt: "09:00", ClosesAt: "18:00"},
	})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestVendorService_ProfileQR_NoSlug(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	png, err := fx.service.ProfileQR(ctx, userID)

	assert.Nil(t, png)
	assert.Error(t, err)
}

func TestVendorService_ProfileQR_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{
		ID:     1,
		UserID: userID,
		Slug:   strPtr("sweet-crumbs"),
	}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.qrService.EXPECT().GenerateProfileQR("sweet-crumbs").Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.ProfileQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestVendorService_GetAnalytics_Success(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID, AvgRating: 4.3}

	now := time.Now()
	inquiries := []*entity.Inquiry{
		{ID: 1, Status: entity.InquiryStatusNew, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, Status: entity.InquiryStatusConverted, CreatedAt: now.AddDate(0, 0, -10)},
		{ID: 3, Status: entity.InquiryStatusClosed, CreatedAt: now.AddDate(0, 0, -60)},
		{ID: 4, Status: entity.InquiryStatusConverted, CreatedAt: now.AddDate(0, 0, -2)},
	}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiriesByVendor(ctx, int64(1)).Return(inquiries, nil)
	fx.reviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{5, 5, 4}, nil)

	output, err := fx.service.GetAnalytics(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 4, output.TotalInquiries)
	assert.Equal(t, 2, output.InquiriesLast7Days)
	assert.Equal(t, 3, output.InquiriesLast30Days)
	assert.Equal(t, 2, output.ConvertedInquiries)
	assert.InDelta(t, 50.0, output.ConversionRate, 0.001)
	assert.Equal(t, 1, output.InquiryStatusCounts[entity.InquiryStatusNew])
	assert.Equal(t, 2, output.InquiryStatusCounts[entity.InquiryStatusConverted])
	assert.Equal(t, 3, output.TotalReviews)
	assert.Equal(t, 4.3, output.AvgRating)
	assert.Equal(t, 2, output.RatingDistribution[5])
	assert.Equal(t, 1, output.RatingDistribution[4])
}

func TestVendorService_GetAnalytics_NoActivity(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiriesByVendor(ctx, int64(1)).Return([]*entity.Inquiry{}, nil)
	fx.reviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{}, nil)

	output, err := fx.service.GetAnalytics(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalInquiries)
	assert.Equal(t, 0.0, output.ConversionRate)
	assert.Equal(t, 0, output.TotalReviews)
}

func TestVendorService_GetAnalytics_NoProfile(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.vendorRepo.EXPECT().
		FindVendorByUserID(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	output, err := fx.service.GetAnalytics(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}
