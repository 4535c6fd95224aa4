package handler

import (
	"log/slog"
	"net/http"

	"vendir/internal/delivery/http/response"
	"vendir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves the owner-side onboarding and profile endpoints.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// BasicInfoRequest is the first onboarding step.
type BasicInfoRequest struct {
	BusinessName string  `json:"business_name" validate:"required,min=1"`
	Description  *string `json:"description"`
}

// CategoryRequest is the category onboarding step.
type CategoryRequest struct {
	CategoryID    int64  `json:"category_id" validate:"required"`
	SubCategoryID *int64 `json:"sub_category_id"`
}

// LocationRequest is the location onboarding step.
type LocationRequest struct {
	CityID   int64   `json:"city_id" validate:"required"`
	AreaID   *int64  `json:"area_id"`
	Landmark *string `json:"landmark"`
}

// AmenitiesRequest replaces the amenity set.
type AmenitiesRequest struct {
	AmenityIDs []int64 `json:"amenity_ids"`
}

// OccasionsRequest replaces the occasion set.
type OccasionsRequest struct {
	OccasionIDs []int64 `json:"occasion_ids"`
}

// SocialLinksRequest replaces the social links.
type SocialLinksRequest struct {
	Links []SocialLinkRequest `json:"links" validate:"dive"`
}

// SocialLinkRequest is one external profile link.
type SocialLinkRequest struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

// OpeningHoursRequest replaces the weekly hours.
type OpeningHoursRequest struct {
	Hours []OpeningHourRequest `json:"hours" validate:"dive"`
}

// OpeningHourRequest is one weekday's hours.
type OpeningHourRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	OpensAt   string `json:"opens_at"`
	ClosesAt  string `json:"closes_at"`
	IsClosed  bool   `json:"is_closed"`
}

// GetProfile returns the caller's profile with its completeness metric.
func (h *VendorHandler) GetProfile(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	output, err := h.vendorUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateBasicInfo handles the business name and description step.
func (h *VendorHandler) UpdateBasicInfo(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req BasicInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid basic info input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.vendorUC.UpdateBasicInfo(c.Request().Context(), userID, usecase.UpdateBasicInfoInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateCategory handles the category selection step.
func (h *VendorHandler) UpdateCategory(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.vendorUC.UpdateCategory(c.Request().Context(), userID, usecase.UpdateCategoryInput{
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateLocation handles the location selection step.
func (h *VendorHandler) UpdateLocation(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.vendorUC.UpdateLocation(c.Request().Context(), userID, usecase.UpdateLocationInput{
		CityID:   req.CityID,
		AreaID:   req.AreaID,
		Landmark: req.Landmark,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateAmenities handles the amenity selection step.
func (h *VendorHandler) UpdateAmenities(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req AmenitiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid amenities input")
	}

	output, err := h.vendorUC.UpdateAmenities(c.Request().Context(), userID, usecase.UpdateAmenitiesInput{
		AmenityIDs: req.AmenityIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateOccasions handles the occasion selection step.
func (h *VendorHandler) UpdateOccasions(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req OccasionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid occasions input")
	}

	output, err := h.vendorUC.UpdateOccasions(c.Request().Context(), userID, usecase.UpdateOccasionsInput{
		OccasionIDs: req.OccasionIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateSocialLinks replaces the caller's social links.
func (h *VendorHandler) UpdateSocialLinks(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req SocialLinksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid social links input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	links := make([]usecase.SocialLinkInput, 0, len(req.Links))
	for _, link := range req.Links {
		links = append(links, usecase.SocialLinkInput{
			Platform: link.Platform,
			URL:      link.URL,
		})
	}

	output, err := h.vendorUC.UpdateSocialLinks(c.Request().Context(), userID, links)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateOpeningHours replaces the caller's weekly hours.
func (h *VendorHandler) UpdateOpeningHours(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req OpeningHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid opening hours input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	hours := make([]usecase.OpeningHourInput, 0, len(req.Hours))
	for _, hour := range req.Hours {
		hours = append(hours, usecase.OpeningHourInput{
			DayOfWeek: hour.DayOfWeek,
			OpensAt:   hour.OpensAt,
			ClosesAt:  hour.ClosesAt,
			IsClosed:  hour.IsClosed,
		})
	}

	output, err := h.vendorUC.UpdateOpeningHours(c.Request().Context(), userID, hours)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ProfileQR streams a PNG QR code of the public profile URL.
func (h *VendorHandler) ProfileQR(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	png, err := h.vendorUC.ProfileQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetAnalytics returns inquiry and review performance numbers.
func (h *VendorHandler) GetAnalytics(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	output, err := h.vendorUC.GetAnalytics(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
