package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vendir/internal/delivery/http/middleware"
	"vendir/internal/delivery/http/response"
	"vendir/internal/domain/entity"
	"vendir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
	Logger    *slog.Logger
}

// InquiryHandler serves lead submission and the vendor inbox.
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
	logger    *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler.
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: params.InquiryUC,
		logger:    params.Logger,
	}
}

// SubmitInquiryRequest represents the request body for lead submission.
type SubmitInquiryRequest struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	OccasionID *int64  `json:"occasion_id"`
	EventDate  *string `json:"event_date"`
	Message    string  `json:"message" validate:"required"`
}

// UpdateInquiryStatusRequest represents the request body for a status change.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitInquiry handles public lead submission. Guests and logged-in users
// both land here; the optional auth middleware supplies the user ID when a
// session exists.
func (h *InquiryHandler) SubmitInquiry(c echo.Context) error {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "vendor id must be an integer")
	}

	var req SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid inquiry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.SubmitInquiryInput{
		VendorID:   vendorID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		OccasionID: req.OccasionID,
		Message:    req.Message,
	}
	if userID, ok := middleware.UserIDFromContext(c); ok {
		input.UserID = &userID
	}
	if req.EventDate != nil && *req.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "event_date must be YYYY-MM-DD")
		}
		input.EventDate = &eventDate
	}

	inquiry, err := h.inquiryUC.SubmitInquiry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inquiry)
}

// ListInquiries returns the calling vendor's inbox, optionally narrowed by
// the status query parameter.
func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var status *entity.InquiryStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.InquiryStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "unknown inquiry status")
		}
		status = &parsed
	}

	inquiries, err := h.inquiryUC.ListInquiries(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inquiries)
}

// UpdateStatus moves an owned inquiry to a new status.
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	inquiryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "inquiry id must be an integer")
	}

	var req UpdateInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err = h.inquiryUC.UpdateStatus(c.Request().Context(), userID, usecase.UpdateInquiryStatusInput{
		InquiryID: inquiryID,
		Status:    entity.InquiryStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Inquiry status updated"})
}
