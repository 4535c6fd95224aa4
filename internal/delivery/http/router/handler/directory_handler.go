package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"vendir/internal/delivery/http/response"
	"vendir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the public, unauthenticated directory endpoints.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler.
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListVendors handles the filtered, paginated directory listing.
func (h *DirectoryHandler) ListVendors(c echo.Context) error {
	input := usecase.ListVendorsInput{
		Query:        c.QueryParam("q"),
		CategorySlug: c.QueryParam("category"),
		CitySlug:     c.QueryParam("city"),
	}

	var err error
	if input.CategoryID, err = optionalInt64Param(c, "category_id"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "category_id must be an integer")
	}
	if input.SubCategoryID, err = optionalInt64Param(c, "sub_category_id"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "sub_category_id must be an integer")
	}
	if input.CityID, err = optionalInt64Param(c, "city_id"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "city_id must be an integer")
	}
	if input.AreaID, err = optionalInt64Param(c, "area_id"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "area_id must be an integer")
	}
	if input.AmenityIDs, err = idListParam(c, "amenities"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "amenities must be a comma-separated integer list")
	}
	if input.OccasionIDs, err = idListParam(c, "occasions"); err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "occasions must be a comma-separated integer list")
	}
	if raw := c.QueryParam("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_FILTER", "min_rating must be a number")
		}
		input.MinRating = &minRating
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	output, err := h.directoryUC.ListVendors(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetVendor handles the public profile detail lookup by slug or numeric id.
func (h *DirectoryHandler) GetVendor(c echo.Context) error {
	identifier := c.Param("identifier")
	if identifier == "" {
		return response.BadRequest(c, "INVALID_ID", "identifier is required")
	}

	output, err := h.directoryUC.GetVendor(c.Request().Context(), identifier)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetCatalog handles the master-data bundle behind the filter UI.
func (h *DirectoryHandler) GetCatalog(c echo.Context) error {
	output, err := h.directoryUC.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetCategories returns the category tree only.
func (h *DirectoryHandler) GetCategories(c echo.Context) error {
	output, err := h.directoryUC.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Categories)
}

// GetCities returns the city list only.
func (h *DirectoryHandler) GetCities(c echo.Context) error {
	output, err := h.directoryUC.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Cities)
}

// GetAmenities returns the amenity list only.
func (h *DirectoryHandler) GetAmenities(c echo.Context) error {
	output, err := h.directoryUC.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Amenities)
}

// GetOccasions returns the occasion list only.
func (h *DirectoryHandler) GetOccasions(c echo.Context) error {
	output, err := h.directoryUC.GetCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Occasions)
}

func optionalInt64Param(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func idListParam(c echo.Context, name string) ([]int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
