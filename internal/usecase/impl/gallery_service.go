package impl

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"

	deliverycontext "vendir/internal/delivery/context"
	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/domain/service"
	"vendir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	txManager    repository.TransactionManager
	vendorRepo   repository.VendorRepository
	galleryRepo  repository.GalleryRepository
	mediaStorage service.MediaStorage
	logger       *slog.Logger
}

// GalleryServiceParams holds dependencies for galleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VendorRepo   repository.VendorRepository
	GalleryRepo  repository.GalleryRepository
	MediaStorage service.MediaStorage
	Logger       *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		txManager:    params.TxManager,
		vendorRepo:   params.VendorRepo,
		galleryRepo:  params.GalleryRepo,
		mediaStorage: params.MediaStorage,
		logger:       params.Logger,
	}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListImages returns the caller's gallery, oldest first.
func (srv *galleryService) ListImages(ctx context.Context, userID uuid.UUID) ([]*entity.GalleryImage, error) {
	vendor, err := srv.resolveOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	images, err := srv.galleryRepo.FindImagesByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery images")
	}

	return images, nil
}

// UploadImage stores an image for the calling vendor. A streamed body is
// written to blob storage first; an external URL is recorded as-is. The
// vendor's first image becomes the cover.
func (srv *galleryService) UploadImage(ctx context.Context, userID uuid.UUID, input usecase.UploadImageInput) (*entity.GalleryImage, error) {
	vendor, err := srv.resolveOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if (input.Body == nil) == (input.MediaURL == "") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provide exactly one of file body or media url")
	}

	mediaURL := input.MediaURL
	if input.Body != nil {
		key := mediaKey(vendor.ID, input.FileName)
		mediaURL, err = srv.mediaStorage.Save(ctx, key, input.ContentType, input.Body)
		if err != nil {
			srv.log(ctx).Error("Failed to store media file", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

			return nil, domainerrors.ErrGalleryUploadFailed.WrapMessage(err.Error())
		}
	}

	image := &entity.GalleryImage{
		VendorID:  vendor.ID,
		MediaURL:  mediaURL,
		MediaType: mediaType(input.ContentType),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.GalleryRepo().CountImages(ctx, vendor.ID)
		if err != nil {
			return err
		}
		image.IsCover = count == 0

		return repoFactory.GalleryRepo().CreateImage(ctx, image)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create gallery image", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create gallery image")
	}

	srv.log(ctx).Info("Gallery image uploaded",
		slog.Int64("vendorID", vendor.ID),
		slog.Int64("imageID", image.ID),
		slog.Bool("cover", image.IsCover))

	return image, nil
}

// DeleteImage removes an owned image. Deleting the cover promotes the oldest
// remaining image in the same transaction.
func (srv *galleryService) DeleteImage(ctx context.Context, userID uuid.UUID, imageID int64) error {
	vendor, err := srv.resolveOwner(ctx, userID)
	if err != nil {
		return err
	}

	image, err := srv.ownedImage(ctx, vendor.ID, imageID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GalleryRepo().DeleteImage(ctx, image.ID); err != nil {
			return err
		}
		if !image.IsCover {
			return nil
		}

		oldest, err := repoFactory.GalleryRepo().FindOldestImage(ctx, vendor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrGalleryImageNotFound) {
				// Gallery is now empty; nothing to promote.
				return nil
			}

			return err
		}

		return repoFactory.GalleryRepo().SetCover(ctx, oldest.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete gallery image", slog.Int64("imageID", imageID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete gallery image")
	}

	return nil
}

// SetCoverImage makes the given owned image the sole cover.
func (srv *galleryService) SetCoverImage(ctx context.Context, userID uuid.UUID, imageID int64) error {
	vendor, err := srv.resolveOwner(ctx, userID)
	if err != nil {
		return err
	}

	image, err := srv.ownedImage(ctx, vendor.ID, imageID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GalleryRepo().ClearCover(ctx, vendor.ID); err != nil {
			return err
		}

		return repoFactory.GalleryRepo().SetCover(ctx, image.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set cover image", slog.Int64("imageID", imageID), slog.Any("error", err))

		return errors.Wrap(err, "failed to set cover image")
	}

	return nil
}

func (srv *galleryService) resolveOwner(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	return vendor, nil
}

// ownedImage loads an image and verifies it belongs to the vendor. A foreign
// image is reported as not found rather than forbidden.
func (srv *galleryService) ownedImage(ctx context.Context, vendorID, imageID int64) (*entity.GalleryImage, error) {
	image, err := srv.galleryRepo.FindImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrGalleryImageNotFound) {
			return nil, domainerrors.ErrGalleryImageNotFound
		}

		return nil, errors.Wrap(err, "failed to load gallery image")
	}
	if image.VendorID != vendorID {
		return nil, domainerrors.ErrGalleryImageNotFound
	}

	return image, nil
}

// mediaKey builds a collision-free blob key under the vendor's prefix.
func mediaKey(vendorID int64, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))

	return "vendors/" + strconv.FormatInt(vendorID, 10) + "/" + uuid.NewString() + ext
}

func mediaType(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}

	return "image"
}
