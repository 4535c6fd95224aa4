package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendir/internal/delivery/context"
	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/domain/service"
	"vendir/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
	mailer     service.Mailer
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	VendorRepo repository.VendorRepository
	UserRepo   repository.UserRepository
	Mailer     service.Mailer
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		vendorRepo: params.VendorRepo,
		userRepo:   params.UserRepo,
		mailer:     params.Mailer,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview stores a rating against a public vendor and rebuilds the
// vendor's aggregate inside the same transaction. One review per user per
// vendor; owners cannot rate themselves.
func (srv *reviewService) SubmitReview(ctx context.Context, input usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	vendor, err := srv.vendorRepo.FindPublicVendorByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}
	if vendor.UserID == input.UserID {
		return nil, domainerrors.ErrReviewOwnVendor
	}

	if _, err := srv.reviewRepo.FindReviewByVendorAndUser(ctx, vendor.ID, input.UserID); err == nil {
		return nil, domainerrors.ErrReviewAlreadyExists
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	review := &entity.Review{
		VendorID:    vendor.ID,
		UserID:      input.UserID,
		Rating:      input.Rating,
		ReviewText:  input.ReviewText,
		IsPublished: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().CreateReview(ctx, review); err != nil {
			return err
		}

		return recomputeRatingAggregate(ctx, repoFactory, vendor.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			// Unique constraint caught a concurrent duplicate.
			return nil, domainerrors.ErrReviewAlreadyExists
		}

		srv.log(ctx).Error("Failed to submit review", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit review")
	}

	srv.notifyVendor(ctx, vendor, review)

	srv.log(ctx).Info("Review submitted",
		slog.Int64("vendorID", vendor.ID),
		slog.Int64("reviewID", review.ID),
		slog.Int("rating", review.Rating))

	return review, nil
}

// notifyVendor emails the owner about a new review. Failures are logged and
// swallowed; the review is already committed.
func (srv *reviewService) notifyVendor(ctx context.Context, vendor *entity.VendorProfile, review *entity.Review) {
	if vendor.Owner == nil || vendor.Owner.Email == "" {
		return
	}

	businessName := ""
	if vendor.BusinessName != nil {
		businessName = *vendor.BusinessName
	}

	// ReviewerName is a read-model field; a freshly created review does not
	// carry it, so resolve it from the reviewer's account.
	if reviewer, err := srv.userRepo.FindUserByID(ctx, review.UserID); err == nil {
		review.ReviewerName = reviewer.FullName
	} else {
		srv.log(ctx).Warn("Failed to resolve reviewer name for notification",
			slog.Int64("reviewID", review.ID),
			slog.Any("error", err))
	}

	if err := srv.mailer.SendReviewNotification(ctx, vendor.Owner.Email, businessName, review); err != nil {
		srv.log(ctx).Warn("Failed to send review notification",
			slog.Int64("reviewID", review.ID),
			slog.Any("error", err))
	}
}
