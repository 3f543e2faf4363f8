package model

import (
	"errors"
	"net/http"

	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	ErrStoreRead  = errors.New("settings store read failed")
	ErrStoreWrite = errors.New("settings store write failed")
)

// HandleSettingsError maps a settings error to an HTTP response.
// Returns true when err was non-nil and a response has been written.
func HandleSettingsError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", vErr.Message, vErr.Details)
		return true
	}

	switch {
	case errors.Is(err, ErrStoreWrite):
		response.ErrorResponse(c, http.StatusInternalServerError, "STORAGE_WRITE_FAILED", "Failed to persist settings")
	case errors.Is(err, ErrStoreRead):
		response.ErrorResponse(c, http.StatusInternalServerError, "STORAGE_READ_FAILED", "Failed to read settings")
	default:
		logger.Error("unhandled settings error", err)
		response.InternalServerError(c, "Internal server error")
	}
	return true
}

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
