package handler

import (
	"net/http"

	"safaia-backend/internal/domains/settings/model"
	service "safaia-backend/internal/domains/settings/service"
	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves the public settings read and the admin settings write.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Get - GET /settings
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if model.HandleSettingsError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, settings)
}

// Save - PUT /admin/settings
func (h *Handler) Save(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		logger.Warn("invalid settings request", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	if model.HandleSettingsError(c, h.service.Save(c.Request.Context(), settings)) {
		return
	}

	response.Success(c, http.StatusOK, settings)
}
