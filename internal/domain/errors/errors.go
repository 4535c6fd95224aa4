package errors

import (
	"net/http"

	"vendir/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrMobileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MOBILE_ALREADY_EXISTS",
		"this mobile number is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"failed to update user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	// Vendor-related errors
	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"vendor not found",
		"",
	)

	ErrVendorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VENDOR_ALREADY_EXISTS",
		"this account already has a vendor profile",
		"",
	)

	ErrVendorOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"VENDOR_OWNERSHIP_VIOLATION",
		"you do not have access to this vendor profile",
		"",
	)

	ErrSlugExhausted = NewBaseError(
		http.StatusConflict,
		"SLUG_EXHAUSTED",
		"could not assign a unique profile URL",
		"",
	)

	ErrSubCategoryMismatch = NewBaseError(
		http.StatusBadRequest,
		"SUBCATEGORY_MISMATCH",
		"subcategory does not belong to the selected category",
		"",
	)

	ErrAreaMismatch = NewBaseError(
		http.StatusBadRequest,
		"AREA_MISMATCH",
		"area does not belong to the selected city",
		"",
	)

	// Gallery-related errors
	ErrGalleryImageNotFound = NewBaseError(
		http.StatusNotFound,
		"GALLERY_IMAGE_NOT_FOUND",
		"gallery image not found",
		"",
	)

	ErrGalleryUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"GALLERY_UPLOAD_FAILED",
		"failed to store the uploaded image",
		"",
	)

	// Inquiry-related errors
	ErrInquiryNotFound = NewBaseError(
		http.StatusNotFound,
		"INQUIRY_NOT_FOUND",
		"inquiry not found",
		"",
	)

	ErrInquiryMessageTooShort = NewBaseError(
		http.StatusBadRequest,
		"INQUIRY_MESSAGE_TOO_SHORT",
		"message must be at least 10 characters",
		"",
	)

	ErrInquiryStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"INQUIRY_STATUS_INVALID",
		"unknown inquiry status",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	ErrReviewAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REVIEW_ALREADY_EXISTS",
		"you have already reviewed this vendor",
		"",
	)

	ErrReviewOwnVendor = NewBaseError(
		http.StatusForbidden,
		"REVIEW_OWN_VENDOR",
		"you cannot review your own profile",
		"",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"RATING_OUT_OF_RANGE",
		"rating must be between 1 and 5",
		"",
	)

	// Admin-related errors
	ErrAdminSelfDelete = NewBaseError(
		http.StatusBadRequest,
		"ADMIN_SELF_DELETE",
		"you cannot delete your own account",
		"",
	)

	ErrAdminDeleteAdmin = NewBaseError(
		http.StatusForbidden,
		"ADMIN_DELETE_ADMIN",
		"admin accounts cannot be deleted",
		"",
	)

	ErrRoleInvalid = NewBaseError(
		http.StatusBadRequest,
		"ROLE_INVALID",
		"unknown role",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
