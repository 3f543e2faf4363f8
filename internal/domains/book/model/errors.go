package model

import (
	"errors"
	"net/http"

	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Repository-level errors
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrSlugAlreadyExists = errors.New("slug already exists")
	ErrStoreRead         = errors.New("book store read failed")
	ErrStoreWrite        = errors.New("book store write failed")
)

// Validation errors
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrSlugRequired       = errors.New("slug is required")
	ErrInvalidSlug        = errors.New("slug must contain only lowercase letters, digits and hyphens")
	ErrAuthorNameRequired = errors.New("author name is required")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidRating      = errors.New("review rating must be between 1 and 5")
	ErrInvalidBinding     = errors.New("invalid binding")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrSlugAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: "A book with this slug already exists",
	},
	ErrStoreWrite: {
		Status:  http.StatusInternalServerError,
		Code:    "STORAGE_WRITE_FAILED",
		Message: "Failed to persist the catalog",
	},
	ErrStoreRead: {
		Status:  http.StatusInternalServerError,
		Code:    "STORAGE_READ_FAILED",
		Message: "Failed to read the catalog",
	},
}

// HandleBookError maps a domain error to an HTTP response. Returns true
// when err was non-nil and a response has been written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", vErr.Message, vErr.Details)
		return true
	}

	logger.Error("unhandled book error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}

// ValidationError carries field-level details for a 400 response.
type ValidationError struct {
	Message string
	Details interface{}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details interface{}) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}
