package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "vendir/internal/delivery/context"
	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	"vendir/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50

	detailReviewLimit = 20
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	vendorRepo repository.VendorRepository
	reviewRepo repository.ReviewRepository
	masterRepo repository.MasterRepository
	logger     *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	ReviewRepo repository.ReviewRepository
	MasterRepo repository.MasterRepository
	Logger     *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		vendorRepo: params.VendorRepo,
		reviewRepo: params.ReviewRepo,
		masterRepo: params.MasterRepo,
		logger:     params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVendors returns one page of directory-visible profiles. The page query
// and the count query run in parallel against the same predicate.
func (srv *directoryService) ListVendors(ctx context.Context, input usecase.ListVendorsInput) (*usecase.ListVendorsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := repository.VendorListFilter{
		Query:         input.Query,
		CategorySlug:  input.CategorySlug,
		CitySlug:      input.CitySlug,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		CityID:        input.CityID,
		AreaID:        input.AreaID,
		AmenityIDs:    input.AmenityIDs,
		OccasionIDs:   input.OccasionIDs,
		MinRating:     input.MinRating,
		Page:          page,
		Limit:         pageSize,
	}

	var (
		wg       sync.WaitGroup
		vendors  []*entity.VendorProfile
		total    int64
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()

		vendors, listErr = srv.vendorRepo.ListVendors(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		total, countErr = srv.vendorRepo.CountVendors(ctx, filter)
	}()
	wg.Wait()

	if listErr != nil {
		return nil, errors.Wrap(listErr, "failed to list vendors")
	}
	if countErr != nil {
		return nil, errors.Wrap(countErr, "failed to count vendors")
	}

	// Card rendering wants at most one image per vendor, the earliest one.
	for _, vendor := range vendors {
		if len(vendor.Gallery) > 1 {
			vendor.Gallery = vendor.Gallery[:1]
		}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &usecase.ListVendorsOutput{
		Vendors:    vendors,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetVendor resolves a profile by slug first, falling back to a primary-key
// lookup when the identifier parses as an integer.
func (srv *directoryService) GetVendor(ctx context.Context, identifier string) (*usecase.VendorDetailOutput, error) {
	vendor, err := srv.vendorRepo.FindPublicVendor(ctx, identifier)
	if errors.Is(err, repository.ErrVendorNotFound) {
		id, parseErr := strconv.ParseInt(identifier, 10, 64)
		if parseErr != nil {
			return nil, domainerrors.ErrVendorNotFound
		}

		vendor, err = srv.vendorRepo.FindPublicVendorByID(ctx, id)
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}
	}
	if err != nil {
		srv.log(ctx).Error("Failed to resolve vendor", slog.String("identifier", identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve vendor")
	}

	reviews, err := srv.reviewRepo.FindPublishedReviews(ctx, vendor.ID, detailReviewLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor reviews")
	}

	return &usecase.VendorDetailOutput{Vendor: vendor, Reviews: reviews}, nil
}

// GetCatalog returns the filter and onboarding option lists.
func (srv *directoryService) GetCatalog(ctx context.Context) (*usecase.CatalogOutput, error) {
	categories, err := srv.masterRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	cities, err := srv.masterRepo.ListCities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	amenities, err := srv.masterRepo.ListAmenities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	occasions, err := srv.masterRepo.ListOccasions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list occasions")
	}

	return &usecase.CatalogOutput{
		Categories: categories,
		Cities:     cities,
		Amenities:  amenities,
		Occasions:  occasions,
	}, nil
}
