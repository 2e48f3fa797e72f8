package errors

import (
	"net/http"

	"shopdir/internal/errors"
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
	// Shop lifecycle errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"No shop exists for this ID",
		"",
	)

	ErrShopConflict = NewBaseError(
		http.StatusConflict,
		"SHOP_CONFLICT",
		"A shop with this ID already exists",
		"",
	)

	ErrShopFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHOP_FETCH_FAILED",
		"Failed to fetch shops",
		"",
	)

	ErrShopCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHOP_CREATION_FAILED",
		"Failed to create shop",
		"",
	)

	ErrShopUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHOP_UPDATE_FAILED",
		"Failed to update shop",
		"",
	)

	ErrShopDeletionFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHOP_DELETION_FAILED",
		"Failed to delete shop",
		"",
	)

	// Request validation errors
	ErrMissingRequiredFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELDS",
		"One or more required fields are missing",
		"",
	)

	// Asset errors
	ErrPhotoStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_STORE_FAILED",
		"Failed to store shop photo",
		"",
	)

	ErrPhotoRemoveFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_REMOVE_FAILED",
		"Failed to remove shop photo",
		"",
	)

	// Supplementary features
	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_GENERATION_FAILED",
		"Failed to generate shop QR code",
		"",
	)
)

// NewDatabaseExecuteError wraps a raw store error into a generic dependency
// failure. The cause stays inside the error chain for logging and is never
// sent to clients.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrap(NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		message,
		"",
	), cause.Error())
}
