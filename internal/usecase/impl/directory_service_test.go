package impl

import (
	"context"
	"testing"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	mockRepo "vendir/internal/mocks/repository"
	"vendir/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service    usecase.DirectoryUsecase
	vendorRepo *mockRepo.MockVendorRepository
	reviewRepo *mockRepo.MockReviewRepository
	masterRepo *mockRepo.MockMasterRepository
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	masterRepo := mockRepo.NewMockMasterRepository(t)

	service := NewDirectoryService(DirectoryServiceParams{
		VendorRepo: vendorRepo,
		ReviewRepo: reviewRepo,
		MasterRepo: masterRepo,
		Logger:     newDiscardLogger(),
	})

	return directoryServiceFixtures{
		service:    service,
		vendorRepo: vendorRepo,
		reviewRepo: reviewRepo,
		masterRepo: masterRepo,
	}
}

func TestDirectoryService_ListVendors_DefaultsAndTotals(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	vendors := []*entity.VendorProfile{{ID: 1}, {ID: 2}}

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Run(func(ctx context.Context, filter repository.VendorListFilter) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 12, filter.Limit)
		}).
		Return(vendors, nil)

	fx.vendorRepo.EXPECT().
		CountVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(int64(25), nil)

	output, err := fx.service.ListVendors(ctx, usecase.ListVendorsInput{Page: 0, PageSize: 0})

	require.NoError(t, err)
	assert.Len(t, output.Vendors, 2)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 12, output.PageSize)
	assert.Equal(t, 3, output.TotalPages)
}

func TestDirectoryService_ListVendors_SlugFilters(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Run(func(ctx context.Context, filter repository.VendorListFilter) {
			assert.Equal(t, "banquet-halls", filter.CategorySlug)
			assert.Equal(t, "mumbai", filter.CitySlug)
		}).
		Return([]*entity.VendorProfile{}, nil)

	fx.vendorRepo.EXPECT().
		CountVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(int64(0), nil)

	_, err := fx.service.ListVendors(ctx, usecase.ListVendorsInput{
		CategorySlug: "banquet-halls",
		CitySlug:     "mumbai",
	})

	require.NoError(t, err)
}

func TestDirectoryService_ListVendors_PageSizeCapped(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Run(func(ctx context.Context, filter repository.VendorListFilter) {
			assert.Equal(t, 50, filter.Limit)
		}).
		Return([]*entity.VendorProfile{}, nil)

	fx.vendorRepo.EXPECT().
		CountVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(int64(0), nil)

	output, err := fx.service.ListVendors(ctx, usecase.ListVendorsInput{PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, 50, output.PageSize)
}

func TestDirectoryService_ListVendors_OutOfRangePage(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return([]*entity.VendorProfile{}, nil)

	fx.vendorRepo.EXPECT().
		CountVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(int64(5), nil)

	output, err := fx.service.ListVendors(ctx, usecase.ListVendorsInput{Page: 40, PageSize: 12})

	require.NoError(t, err)
	// Past the last page the list is empty but the totals stay true.
	assert.Empty(t, output.Vendors)
	assert.Equal(t, int64(5), output.Total)
	assert.Equal(t, 40, output.Page)
	assert.Equal(t, 1, output.TotalPages)
}

func TestDirectoryService_ListVendors_TrimsGalleryToCard(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	vendors := []*entity.VendorProfile{{
		ID: 1,
		Gallery: []*entity.GalleryImage{
			{ID: 10}, {ID: 11}, {ID: 12},
		},
	}}

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(vendors, nil)

	fx.vendorRepo.EXPECT().
		CountVendors(ctx, mock.AnythingOfType("repository.VendorListFilter")).
		Return(int64(1), nil)

	output, err := fx.service.ListVendors(ctx, usecase.ListVendorsInput{})

	require.NoError(t, err)
	require.Len(t, output.Vendors, 1)
	assert.Len(t, output.Vendors[0].Gallery, 1)
	assert.Equal(t, int64(10), output.Vendors[0].Gallery[0].ID)
}

func TestDirectoryService_GetVendor_BySlug(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{ID: 1, Slug: strPtr("sweet-crumbs")}

	fx.vendorRepo.EXPECT().
		FindPublicVendor(ctx, "sweet-crumbs").
		Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindPublishedReviews(ctx, int64(1), 20).
		Return([]*entity.Review{{ID: 9, Rating: 5}}, nil)

	output, err := fx.service.GetVendor(ctx, "sweet-crumbs")

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Vendor.ID)
	assert.Len(t, output.Reviews, 1)
}

func TestDirectoryService_GetVendor_NumericFallback(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{ID: 17}

	fx.vendorRepo.EXPECT().
		FindPublicVendor(ctx, "17").
		Return(nil, repository.ErrVendorNotFound)

	fx.vendorRepo.EXPECT().
		FindPublicVendorByID(ctx, int64(17)).
		Return(vendor, nil)

	fx.reviewRepo.EXPECT().
		FindPublishedReviews(ctx, int64(17), 20).
		Return([]*entity.Review{}, nil)

	output, err := fx.service.GetVendor(ctx, "17")

	require.NoError(t, err)
	assert.Equal(t, int64(17), output.Vendor.ID)
}

func TestDirectoryService_GetVendor_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		FindPublicVendor(ctx, "no-such-vendor").
		Return(nil, repository.ErrVendorNotFound)

	output, err := fx.service.GetVendor(ctx, "no-such-vendor")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestDirectoryService_GetCatalog(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.masterRepo.EXPECT().ListCategories(ctx).Return([]*entity.Category{{ID: 1}}, nil)
	fx.masterRepo.EXPECT().ListCities(ctx).Return([]*entity.City{{ID: 2}}, nil)
	fx.masterRepo.EXPECT().ListAmenities(ctx).Return([]*entity.Amenity{{ID: 3}}, nil)
	fx.masterRepo.EXPECT().ListOccasions(ctx).Return([]*entity.Occasion{{ID: 4}}, nil)

	output, err := fx.service.GetCatalog(ctx)

	require.NoError(t, err)
	assert.Len(t, output.Categories, 1)
	assert.Len(t, output.Cities, 1)
	assert.Len(t, output.Amenities, 1)
	assert.Len(t, output.Occasions, 1)
}
