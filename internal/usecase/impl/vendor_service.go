package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vendir/internal/delivery/context"
	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/domain/service"
	"vendir/internal/usecase"
	"vendir/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// slugMaxAttempts guards the suffix loop against collision storms. The
	// slug unique constraint is the correctness backstop under races.
	slugMaxAttempts = 1000

	// completenessTotalFields is the number of onboarding fields counted by
	// the completeness metric.
	completenessTotalFields = 5

	fallbackSlugBase = "vendor"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager   repository.TransactionManager
	vendorRepo  repository.VendorRepository
	inquiryRepo repository.InquiryRepository
	reviewRepo  repository.ReviewRepository
	masterRepo  repository.MasterRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VendorRepo  repository.VendorRepository
	InquiryRepo repository.InquiryRepository
	ReviewRepo  repository.ReviewRepository
	MasterRepo  repository.MasterRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:   params.TxManager,
		vendorRepo:  params.VendorRepo,
		inquiryRepo: params.InquiryRepo,
		reviewRepo:  params.ReviewRepo,
		masterRepo:  params.MasterRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's profile with its completeness metric.
func (srv *vendorService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildProfileOutput(vendor), nil
}

// UpdateBasicInfo stores the business name and description, deriving a unique
// slug from the name. Each step commits independently, so an abandoned
// onboarding run keeps everything persisted so far.
func (srv *vendorService) UpdateBasicInfo(ctx context.Context, userID uuid.UUID, input usecase.UpdateBasicInfoInput) (*usecase.VendorProfileOutput, error) {
	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("businessName must not be empty")
	}

	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	slug, err := srv.assignSlug(ctx, vendor.ID, businessName)
	if err != nil {
		return nil, err
	}

	update := repository.VendorProfileUpdate{
		BusinessName: &businessName,
		Slug:         &slug,
		Description:  input.Description,
	}
	if err := srv.vendorRepo.UpdateVendorProfile(ctx, vendor.ID, update); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			// Lost a race on the unique constraint after the availability check.
			return nil, domainerrors.ErrConflict.WrapMessage("slug taken concurrently")
		}

		srv.log(ctx).Error("Failed to update basic info", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update basic info")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateCategory stores the category selection. A subcategory, when present,
// must belong to the chosen category.
func (srv *vendorService) UpdateCategory(ctx context.Context, userID uuid.UUID, input usecase.UpdateCategoryInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.SubCategoryID != nil {
		subCategory, err := srv.masterRepo.FindSubCategoryByID(ctx, *input.SubCategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrMasterRecordNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("subcategory not found")
			}

			return nil, errors.Wrap(err, "failed to look up subcategory")
		}
		if subCategory.CategoryID != input.CategoryID {
			return nil, domainerrors.ErrSubCategoryMismatch
		}
	}

	update := repository.VendorProfileUpdate{
		CategoryID:    &input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	}
	if err := srv.vendorRepo.UpdateVendorProfile(ctx, vendor.ID, update); err != nil {
		if errors.Is(err, repository.ErrMasterRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateLocation stores the location selection. An area, when present, must
// belong to the chosen city.
func (srv *vendorService) UpdateLocation(ctx context.Context, userID uuid.UUID, input usecase.UpdateLocationInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.AreaID != nil {
		area, err := srv.masterRepo.FindAreaByID(ctx, *input.AreaID)
		if err != nil {
			if errors.Is(err, repository.ErrMasterRecordNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("area not found")
			}

			return nil, errors.Wrap(err, "failed to look up area")
		}
		if area.Region == nil || area.Region.CityID != input.CityID {
			return nil, domainerrors.ErrAreaMismatch
		}
	}

	update := repository.VendorProfileUpdate{
		CityID:   &input.CityID,
		AreaID:   input.AreaID,
		Landmark: input.Landmark,
	}
	if err := srv.vendorRepo.UpdateVendorProfile(ctx, vendor.ID, update); err != nil {
		if errors.Is(err, repository.ErrMasterRecordNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("city not found")
		}

		return nil, errors.Wrap(err, "failed to update location")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateAmenities replaces the vendor's amenity set atomically.
func (srv *vendorService) UpdateAmenities(ctx context.Context, userID uuid.UUID, input usecase.UpdateAmenitiesInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ok, err := srv.masterRepo.AmenitiesExist(ctx, input.AmenityIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify amenities")
	}
	if !ok {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown amenity")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VendorRepo().ReplaceAmenities(ctx, vendor.ID, input.AmenityIDs)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to replace amenities", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to replace amenities")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateOccasions replaces the vendor's occasion set atomically.
func (srv *vendorService) UpdateOccasions(ctx context.Context, userID uuid.UUID, input usecase.UpdateOccasionsInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ok, err := srv.masterRepo.OccasionsExist(ctx, input.OccasionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify occasions")
	}
	if !ok {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown occasion")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VendorRepo().ReplaceOccasions(ctx, vendor.ID, input.OccasionIDs)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to replace occasions", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to replace occasions")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateSocialLinks replaces the vendor's social links atomically.
func (srv *vendorService) UpdateSocialLinks(ctx context.Context, userID uuid.UUID, links []usecase.SocialLinkInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.SocialLink, 0, len(links))
	for _, link := range links {
		if strings.TrimSpace(link.Platform) == "" || strings.TrimSpace(link.URL) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("social links require platform and url")
		}
		entities = append(entities, &entity.SocialLink{
			VendorID: vendor.ID,
			Platform: link.Platform,
			URL:      link.URL,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VendorRepo().ReplaceSocialLinks(ctx, vendor.ID, entities)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace social links")
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateOpeningHours replaces the vendor's weekly hours atomically.
func (srv *vendorService) UpdateOpeningHours(ctx context.Context, userID uuid.UUID, hours []usecase.OpeningHourInput) (*usecase.VendorProfileOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.OpeningHour, 0, len(hours))
	for _, hour := range hours {
		if hour.DayOfWeek < 0 || hour.DayOfWeek > 6 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("dayOfWeek must be between 0 and 6")
		}
		entities = append(entities, &entity.OpeningHour{
			VendorID:  vendor.ID,
			DayOfWeek: hour.DayOfWeek,
			OpensAt:   hour.OpensAt,
			ClosesAt:  hour.ClosesAt,
			IsClosed:  hour.IsClosed,
		})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VendorRepo().ReplaceOpeningHours(ctx, vendor.ID, entities)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace opening hours")
	}

	return srv.GetProfile(ctx, userID)
}

// ProfileQR renders a PNG QR code pointing at the vendor's public profile URL.
func (srv *vendorService) ProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendor.Slug == nil || *vendor.Slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile has no slug yet; complete the basic info step first")
	}

	png, err := srv.qrService.GenerateProfileQR(*vendor.Slug)
	if err != nil {
		srv.log(ctx).Error("Failed to render profile QR", slog.Int64("vendorID", vendor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render profile QR")
	}

	return png, nil
}

// GetAnalytics computes inquiry and review performance numbers for the owner
// dashboard from the stored rows.
func (srv *vendorService) GetAnalytics(ctx context.Context, userID uuid.UUID) (*usecase.VendorAnalyticsOutput, error) {
	vendor, err := srv.resolveOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	inquiries, err := srv.inquiryRepo.FindInquiriesByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inquiries for analytics")
	}

	ratings, err := srv.reviewRepo.ListRatings(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ratings for analytics")
	}

	now := time.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	output := &usecase.VendorAnalyticsOutput{
		TotalInquiries:      len(inquiries),
		InquiryStatusCounts: make(map[entity.InquiryStatus]int),
		TotalReviews:        len(ratings),
		AvgRating:           vendor.AvgRating,
		RatingDistribution:  make(map[int]int),
	}

	for _, inquiry := range inquiries {
		output.InquiryStatusCounts[inquiry.Status]++
		if !inquiry.CreatedAt.Before(sevenDaysAgo) {
			output.InquiriesLast7Days++
		}
		if !inquiry.CreatedAt.Before(thirtyDaysAgo) {
			output.InquiriesLast30Days++
		}
	}

	output.ConvertedInquiries = output.InquiryStatusCounts[entity.InquiryStatusConverted]
	if output.TotalInquiries > 0 {
		output.ConversionRate = float64(output.ConvertedInquiries) / float64(output.TotalInquiries) * 100
	}

	for _, rating := range ratings {
		output.RatingDistribution[rating]++
	}

	return output, nil
}

// resolveOwnProfile loads the profile owned by the calling user.
func (srv *vendorService) resolveOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	return vendor, nil
}

// assignSlug derives a slug from businessName and appends an incrementing
// numeric suffix until no other row holds it. The caller's own row is not a
// conflict, so renaming back and forth is stable.
func (srv *vendorService) assignSlug(ctx context.Context, vendorID int64, businessName string) (string, error) {
	base := util.Slugify(businessName)
	if base == "" {
		base = fallbackSlugBase
	}

	candidate := base
	for attempt := 1; ; attempt++ {
		taken, err := srv.vendorRepo.SlugExists(ctx, candidate, vendorID)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug availability")
		}
		if !taken {
			return candidate, nil
		}
		if attempt >= slugMaxAttempts {
			return "", domainerrors.ErrSlugExhausted
		}

		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
}

// buildProfileOutput derives the informational completeness metric.
func buildProfileOutput(vendor *entity.VendorProfile) *usecase.VendorProfileOutput {
	completed := 0
	if vendor.BusinessName != nil && *vendor.BusinessName != "" {
		completed++
	}
	if vendor.CategoryID != nil {
		completed++
	}
	if vendor.CityID != nil {
		completed++
	}
	if len(vendor.Amenities) > 0 {
		completed++
	}
	if len(vendor.Occasions) > 0 {
		completed++
	}

	return &usecase.VendorProfileOutput{
		Vendor:          vendor,
		CompletedFields: completed,
		TotalFields:     completenessTotalFields,
	}
}
