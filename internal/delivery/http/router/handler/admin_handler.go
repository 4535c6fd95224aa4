package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vendir/internal/delivery/http/response"
	"vendir/internal/domain/entity"
	"vendir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the moderation console endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateRoleRequest represents the request body for a role change.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SetVerificationRequest represents the request body for a verification toggle.
type SetVerificationRequest struct {
	Verified bool `json:"verified"`
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// DeleteUser removes an account and its vendor data.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "user id must be a UUID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), callerID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"})
}

// UpdateUserRole changes another account's role.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "user id must be a UUID")
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err = h.adminUC.UpdateUserRole(c.Request().Context(), callerID, usecase.UpdateUserRoleInput{
		UserID: userID,
		Role:   entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Role updated"})
}

// ListVendors returns every profile, including hidden ones.
func (h *AdminHandler) ListVendors(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	vendors, err := h.adminUC.ListVendors(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors)
}

// SetVendorVerification toggles a profile's directory visibility.
func (h *AdminHandler) SetVendorVerification(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "vendor id must be an integer")
	}

	var req SetVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid verification input")
	}

	err = h.adminUC.SetVendorVerification(c.Request().Context(), callerID, usecase.SetVerificationInput{
		VendorID: vendorID,
		Verified: req.Verified,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Verification updated"})
}

// ListReviews returns every review.
func (h *AdminHandler) ListReviews(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	reviews, err := h.adminUC.ListReviews(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// ListInquiries returns every inquiry with vendor and occasion context.
func (h *AdminHandler) ListInquiries(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	inquiries, err := h.adminUC.ListInquiries(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inquiries)
}

// DeleteReview removes a review and rebuilds the vendor's aggregate.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	callerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "review id must be an integer")
	}

	if err := h.adminUC.DeleteReview(c.Request().Context(), callerID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"})
}
