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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	vendorRepo  repository.VendorRepository
	reviewRepo  repository.ReviewRepository
	inquiryRepo repository.InquiryRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	VendorRepo  repository.VendorRepository
	ReviewRepo  repository.ReviewRepository
	InquiryRepo repository.InquiryRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		vendorRepo:  params.VendorRepo,
		reviewRepo:  params.ReviewRepo,
		inquiryRepo: params.InquiryRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account for the moderation console.
func (srv *adminService) ListUsers(ctx context.Context, callerID uuid.UUID) ([]*entity.User, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account together with its vendor data and reviews.
// Vendors the target had reviewed get their aggregates rebuilt in the same
// transaction.
func (srv *adminService) DeleteUser(ctx context.Context, callerID, userID uuid.UUID) error {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if callerID == userID {
		return domainerrors.ErrAdminSelfDelete
	}

	target, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user")
	}
	if target.IsAdmin() {
		return domainerrors.ErrAdminDeleteAdmin
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendor, err := repoFactory.VendorRepo().FindVendorByUserID(ctx, userID)
		switch {
		case err == nil:
			if err := repoFactory.VendorRepo().DeleteVendorData(ctx, vendor.ID); err != nil {
				return err
			}
		case !errors.Is(err, repository.ErrVendorNotFound):
			return err
		}

		affected, err := repoFactory.ReviewRepo().DeleteReviewsByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, vendorID := range affected {
			if err := recomputeRatingAggregate(ctx, repoFactory, vendorID); err != nil {
				return err
			}
		}

		return repoFactory.UserRepo().DeleteUser(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("userID", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted by admin",
		slog.String("userID", userID.String()),
		slog.String("adminID", callerID.String()))

	return nil
}

// UpdateUserRole changes another account's role.
func (srv *adminService) UpdateUserRole(ctx context.Context, callerID uuid.UUID, input usecase.UpdateUserRoleInput) error {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if callerID == input.UserID {
		return domainerrors.ErrForbidden.WrapMessage("cannot change own role")
	}
	if !input.Role.IsValid() {
		return domainerrors.ErrRoleInvalid
	}

	if err := srv.userRepo.UpdateUserRole(ctx, input.UserID, input.Role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role updated",
		slog.String("userID", input.UserID.String()),
		slog.String("role", string(input.Role)))

	return nil
}

// ListVendors returns every profile, including unverified and soft-deleted
// ones.
func (srv *adminService) ListVendors(ctx context.Context, callerID uuid.UUID) ([]*entity.VendorProfile, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	vendors, err := srv.vendorRepo.ListAllVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// SetVendorVerification toggles directory visibility for a profile and tells
// the owner by email best-effort.
func (srv *adminService) SetVendorVerification(ctx context.Context, callerID uuid.UUID, input usecase.SetVerificationInput) error {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	vendor, err := srv.vendorRepo.FindVendorByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "failed to load vendor profile")
	}

	if err := srv.vendorRepo.SetVerification(ctx, vendor.ID, input.Verified); err != nil {
		return errors.Wrap(err, "failed to set vendor verification")
	}

	srv.notifyVerification(ctx, vendor, input.Verified)

	srv.log(ctx).Info("Vendor verification updated",
		slog.Int64("vendorID", vendor.ID),
		slog.Bool("verified", input.Verified))

	return nil
}

// ListReviews returns every review for the moderation console.
func (srv *adminService) ListReviews(ctx context.Context, callerID uuid.UUID) ([]*entity.Review, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListAllReviews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListInquiries returns every inquiry with vendor and occasion context for
// the moderation console.
func (srv *adminService) ListInquiries(ctx context.Context, callerID uuid.UUID) ([]*entity.Inquiry, error) {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	inquiries, err := srv.inquiryRepo.ListAllInquiries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	return inquiries, nil
}

// DeleteReview removes a review and rebuilds the vendor's aggregate.
func (srv *adminService) DeleteReview(ctx context.Context, callerID uuid.UUID, reviewID int64) error {
	if err := srv.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	review, err := srv.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to load review")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().DeleteReview(ctx, review.ID); err != nil {
			return err
		}

		return recomputeRatingAggregate(ctx, repoFactory, review.VendorID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete review", slog.Int64("reviewID", reviewID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted by admin",
		slog.Int64("reviewID", reviewID),
		slog.String("adminID", callerID.String()))

	return nil
}

// requireAdmin verifies the caller still holds the admin role. The token
// claim alone is not trusted; a demoted admin loses access immediately.
func (srv *adminService) requireAdmin(ctx context.Context, callerID uuid.UUID) error {
	caller, err := srv.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized
		}

		return errors.Wrap(err, "failed to load caller")
	}
	if !caller.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *adminService) notifyVerification(ctx context.Context, vendor *entity.VendorProfile, verified bool) {
	if vendor.Owner == nil || vendor.Owner.Email == "" {
		return
	}

	businessName := ""
	if vendor.BusinessName != nil {
		businessName = *vendor.BusinessName
	}

	if err := srv.mailer.SendVerificationNotification(ctx, vendor.Owner.Email, businessName, verified); err != nil {
		srv.log(ctx).Warn("Failed to send verification notification",
			slog.Int64("vendorID", vendor.ID),
			slog.Any("error", err))
	}
}
