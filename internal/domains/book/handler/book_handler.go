package handler

import (
	"context"
	"net/http"
	"strconv"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/internal/domains/book/query"
	service "safaia-backend/internal/domains/book/service"
	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves the public catalog and admin book management.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListCatalog - GET /books
// Query params: category, query, sort (newest|oldest|title|recommended), page
func (h *Handler) ListCatalog(c *gin.Context) {
	params := query.Params{
		Category: c.Query("category"),
		Query:    c.Query("query"),
		Sort:     c.DefaultQuery("sort", query.SortNewest),
		Page:     1,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}

	result, err := h.service.ListCatalog(c.Request.Context(), params)
	if model.HandleBookError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Books, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		HasPrev:    result.HasPrev,
		HasNext:    result.HasNext,
	})
}

// GetBySlug - GET /books/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Featured - GET /books/featured
func (h *Handler) Featured(c *gin.Context) {
	h.shelf(c, h.service.Featured)
}

// NewReleases - GET /books/new-releases
func (h *Handler) NewReleases(c *gin.Context) {
	h.shelf(c, h.service.NewReleases)
}

// Recommended - GET /books/recommended
func (h *Handler) Recommended(c *gin.Context) {
	h.shelf(c, h.service.Recommended)
}

// Categories - GET /categories
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Categories())
}

// ListAll - GET /admin/books
func (h *Handler) ListAll(c *gin.Context) {
	books, err := h.service.ListAll(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Create - POST /admin/books
func (h *Handler) Create(c *gin.Context) {
	var book model.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		logger.Warn("invalid create book request", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), book)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PUT /admin/books/:slug
// The body is a partial update: only the top-level keys present change.
func (h *Handler) Update(c *gin.Context) {
	var patch model.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn("invalid update book request", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("slug"), patch)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /admin/books/:slug
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("slug"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("slug")})
}

func (h *Handler) shelf(c *gin.Context, load func(ctx context.Context) ([]model.Book, error)) {
	books, err := load(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, books)
}
