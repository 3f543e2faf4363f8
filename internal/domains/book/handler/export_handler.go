package handler

import (
	"fmt"
	"net/http"
	"time"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ExportJSON - GET /admin/export/json
func (h *Handler) ExportJSON(c *gin.Context) {
	data, err := h.service.ExportJSON(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	c.Header("Content-Disposition", attachment("json"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportCSV - GET /admin/export/csv
func (h *Handler) ExportCSV(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	c.Header("Content-Disposition", attachment("csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportExcel - GET /admin/export/xlsx
func (h *Handler) ExportExcel(c *gin.Context) {
	f, err := h.service.ExportExcel(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	c.Header("Content-Disposition", attachment("xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		logger.Error("write xlsx export", err)
		response.InternalServerError(c, "Failed to write export")
	}
}

// attachment names exports with the current date, matching the site's
// download convention.
func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="safaia-books-%s.%s"`, time.Now().Format("2006-01-02"), ext)
}
