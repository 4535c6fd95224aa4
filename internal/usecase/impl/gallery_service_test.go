package impl

import (
	"context"
	"io"
	"strings"
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

// galleryServiceFixtures holds all test dependencies for gallery service tests.
type galleryServiceFixtures struct {
	service      usecase.GalleryUsecase
	txManager    *mockRepo.MockTransactionManager
	vendorRepo   *mockRepo.MockVendorRepository
	galleryRepo  *mockRepo.MockGalleryRepository
	mediaStorage *mockSvc.MockMediaStorage
}

func createTestGalleryService(t *testing.T) galleryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	galleryRepo := mockRepo.NewMockGalleryRepository(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	service := NewGalleryService(GalleryServiceParams{
		TxManager:    txManager,
		VendorRepo:   vendorRepo,
		GalleryRepo:  galleryRepo,
		MediaStorage: mediaStorage,
		Logger:       newDiscardLogger(),
	})

	return galleryServiceFixtures{
		service:      service,
		txManager:    txManager,
		vendorRepo:   vendorRepo,
		galleryRepo:  galleryRepo,
		mediaStorage: mediaStorage,
	}
}

func TestGalleryService_UploadImage_FirstImageBecomesCover(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Run(func(ctx context.Context, key string, contentType string, body io.Reader) {
			assert.True(t, strings.HasPrefix(key, "vendors/1/"))
			assert.True(t, strings.HasSuffix(key, ".jpg"))
		}).
		Return("https://cdn.example.com/vendors/1/photo.jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().CountImages(ctx, int64(1)).Return(int64(0), nil)
			mockGalleryRepo.EXPECT().
				CreateImage(ctx, mock.AnythingOfType("*entity.GalleryImage")).
				Run(func(ctx context.Context, image *entity.GalleryImage) {
					image.ID = 10
				}).
				Return(nil)

			return fn(mockFactory)
		})

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("fake-bytes"),
	})

	require.NoError(t, err)
	assert.True(t, image.IsCover)
	assert.Equal(t, "image", image.MediaType)
	assert.Equal(t, "https://cdn.example.com/vendors/1/photo.jpg", image.MediaURL)
}

func TestGalleryService_UploadImage_SubsequentImageNotCover(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().CountImages(ctx, int64(1)).Return(int64(3), nil)
			mockGalleryRepo.EXPECT().
				CreateImage(ctx, mock.AnythingOfType("*entity.GalleryImage")).
				Return(nil)

			return fn(mockFactory)
		})

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{
		MediaURL: "https://example.com/hosted.png",
	})

	require.NoError(t, err)
	assert.False(t, image.IsCover)
	assert.Equal(t, "https://example.com/hosted.png", image.MediaURL)
}

func TestGalleryService_UploadImage_BodyAndURLRejected(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{
		Body:     strings.NewReader("fake-bytes"),
		MediaURL: "https://example.com/hosted.png",
	})

	assert.Nil(t, image)
	assert.Error(t, err)
}

func TestGalleryService_UploadImage_NeitherBodyNorURLRejected(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{})

	assert.Nil(t, image)
	assert.Error(t, err)
}

func TestGalleryService_UploadImage_StorageFailure(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{
		FileName:    "photo.png",
		ContentType: "image/png",
		Body:        strings.NewReader("fake-bytes"),
	})

	assert.Nil(t, image)
	assert.True(t, errors.Is(err, domainerrors.ErrGalleryUploadFailed))
}

func TestGalleryService_UploadImage_VideoContentType(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)

	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "video/mp4", mock.Anything).
		Return("https://cdn.example.com/vendors/1/clip.mp4", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().CountImages(ctx, int64(1)).Return(int64(1), nil)
			mockGalleryRepo.EXPECT().
				CreateImage(ctx, mock.AnythingOfType("*entity.GalleryImage")).
				Return(nil)

			return fn(mockFactory)
		})

	image, err := fx.service.UploadImage(ctx, userID, usecase.UploadImageInput{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Body:        strings.NewReader("fake-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "video", image.MediaType)
}

func TestGalleryService_DeleteImage_CoverPromotesOldest(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	cover := &entity.GalleryImage{ID: 10, VendorID: 1, IsCover: true}
	oldest := &entity.GalleryImage{ID: 11, VendorID: 1}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImageByID(ctx, int64(10)).Return(cover, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().DeleteImage(ctx, int64(10)).Return(nil)
			mockGalleryRepo.EXPECT().FindOldestImage(ctx, int64(1)).Return(oldest, nil)
			mockGalleryRepo.EXPECT().SetCover(ctx, int64(11)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteImage(ctx, userID, 10)

	require.NoError(t, err)
}

func TestGalleryService_DeleteImage_NonCoverNoPromotion(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	image := &entity.GalleryImage{ID: 12, VendorID: 1, IsCover: false}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImageByID(ctx, int64(12)).Return(image, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().DeleteImage(ctx, int64(12)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteImage(ctx, userID, 12)

	require.NoError(t, err)
}

func TestGalleryService_DeleteImage_LastCoverLeavesEmptyGallery(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	cover := &entity.GalleryImage{ID: 10, VendorID: 1, IsCover: true}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImageByID(ctx, int64(10)).Return(cover, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().DeleteImage(ctx, int64(10)).Return(nil)
			mockGalleryRepo.EXPECT().
				FindOldestImage(ctx, int64(1)).
				Return(nil, repository.ErrGalleryImageNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteImage(ctx, userID, 10)

	require.NoError(t, err)
}

func TestGalleryService_DeleteImage_ForeignImageNotFound(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	foreign := &entity.GalleryImage{ID: 99, VendorID: 2}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImageByID(ctx, int64(99)).Return(foreign, nil)

	err := fx.service.DeleteImage(ctx, userID, 99)

	// Ownership violations look identical to a missing image.
	assert.True(t, errors.Is(err, domainerrors.ErrGalleryImageNotFound))
}

func TestGalleryService_SetCoverImage_ClearsThenSets(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	image := &entity.GalleryImage{ID: 12, VendorID: 1}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImageByID(ctx, int64(12)).Return(image, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().GalleryRepo().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().ClearCover(ctx, int64(1)).Return(nil)
			mockGalleryRepo.EXPECT().SetCover(ctx, int64(12)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.SetCoverImage(ctx, userID, 12)

	require.NoError(t, err)
}

func TestGalleryService_ListImages(t *testing.T) {
	fx := createTestGalleryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	images := []*entity.GalleryImage{{ID: 10, IsCover: true}, {ID: 11}}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.galleryRepo.EXPECT().FindImagesByVendor(ctx, int64(1)).Return(images, nil)

	got, err := fx.service.ListImages(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
