package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

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

const minInquiryNameLength = 2

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	vendorRepo  repository.VendorRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// InquiryServiceParams holds dependencies for inquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	InquiryRepo repository.InquiryRepository
	VendorRepo  repository.VendorRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo: params.InquiryRepo,
		vendorRepo:  params.VendorRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitInquiry stores a lead against a public vendor profile. The submitted
// contact fields are folded into the message text, so the row stays readable
// even for guests with no account. Email notification is best-effort and
// never fails the submission.
func (srv *inquiryService) SubmitInquiry(ctx context.Context, input usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	if err := validateInquiryInput(input); err != nil {
		return nil, err
	}

	vendor, err := srv.vendorRepo.FindPublicVendorByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	inquiry := &entity.Inquiry{
		VendorID:   vendor.ID,
		UserID:     input.UserID,
		OccasionID: input.OccasionID,
		EventDate:  input.EventDate,
		Message:    entity.ComposeInquiryMessage(input.Name, input.Email, input.Phone, input.Message),
		Status:     entity.InquiryStatusNew,
	}
	if err := srv.inquiryRepo.CreateInquiry(ctx, inquiry); err != nil {
		srv.log(ctx).Error("Failed to create inquiry", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create inquiry")
	}

	srv.notifyVendor(ctx, vendor, inquiry)

	srv.log(ctx).Info("Inquiry submitted",
		slog.Int64("vendorID", vendor.ID),
		slog.Int64("inquiryID", inquiry.ID))

	return inquiry, nil
}

// ListInquiries returns the calling vendor's inbox, newest first.
func (srv *inquiryService) ListInquiries(ctx context.Context, userID uuid.UUID, status *entity.InquiryStatus) ([]*entity.Inquiry, error) {
	vendor, err := srv.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	inquiries, err := srv.inquiryRepo.FindInquiriesByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}
	if status == nil {
		return inquiries, nil
	}

	filtered := make([]*entity.Inquiry, 0, len(inquiries))
	for _, inquiry := range inquiries {
		if inquiry.Status == *status {
			filtered = append(filtered, inquiry)
		}
	}

	return filtered, nil
}

// UpdateStatus moves an owned inquiry to any valid status. The pipeline has
// no enforced ordering; a CLOSED lead can be reopened as CONTACTED.
func (srv *inquiryService) UpdateStatus(ctx context.Context, userID uuid.UUID, input usecase.UpdateInquiryStatusInput) error {
	if !input.Status.IsValid() {
		return domainerrors.ErrInquiryStatusInvalid
	}

	vendor, err := srv.ownProfile(ctx, userID)
	if err != nil {
		return err
	}

	inquiry, err := srv.inquiryRepo.FindInquiryByID(ctx, input.InquiryID)
	if err != nil {
		if errors.Is(err, repository.ErrInquiryNotFound) {
			return domainerrors.ErrInquiryNotFound
		}

		return errors.Wrap(err, "failed to load inquiry")
	}
	if inquiry.VendorID != vendor.ID {
		return domainerrors.ErrVendorOwnershipViolation
	}

	if err := srv.inquiryRepo.UpdateInquiryStatus(ctx, inquiry.ID, input.Status); err != nil {
		srv.log(ctx).Error("Failed to update inquiry status", slog.Int64("inquiryID", inquiry.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update inquiry status")
	}

	return nil
}

func (srv *inquiryService) ownProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	return vendor, nil
}

// notifyVendor emails the owner about a new lead. Failures are logged and
// swallowed; the inquiry is already committed.
func (srv *inquiryService) notifyVendor(ctx context.Context, vendor *entity.VendorProfile, inquiry *entity.Inquiry) {
	if vendor.Owner == nil || vendor.Owner.Email == "" {
		return
	}

	businessName := ""
	if vendor.BusinessName != nil {
		businessName = *vendor.BusinessName
	}

	if err := srv.mailer.SendInquiryNotification(ctx, vendor.Owner.Email, businessName, inquiry); err != nil {
		srv.log(ctx).Warn("Failed to send inquiry notification",
			slog.Int64("inquiryID", inquiry.ID),
			slog.Any("error", err))
	}
}

func validateInquiryInput(input usecase.SubmitInquiryInput) error {
	if utf8.RuneCountInString(strings.TrimSpace(input.Name)) < minInquiryNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("name must be at least 2 characters")
	}
	if !strings.Contains(input.Email, "@") {
		return domainerrors.ErrValidationFailed.WithDetails("email must be a valid address")
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Message)) < entity.MinInquiryMessageLength {
		return domainerrors.ErrInquiryMessageTooShort
	}

	return nil
}
