package service

import (
	"context"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/internal/domains/book/query"

	"github.com/xuri/excelize/v2"
)

// ServiceInterface is the book domain business logic.
type ServiceInterface interface {
	// Public catalog
	ListCatalog(ctx context.Context, params query.Params) (*query.Result, error)
	GetBySlug(ctx context.Context, slug string) (*BookDetail, error)
	Featured(ctx context.Context) ([]model.Book, error)
	NewReleases(ctx context.Context) ([]model.Book, error)
	Recommended(ctx context.Context) ([]model.Book, error)
	Categories() []string

	// Admin catalog management
	ListAll(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, book model.Book) (*model.Book, error)
	Update(ctx context.Context, slug string, patch model.Patch) (*model.Book, error)
	Delete(ctx context.Context, slug string) error

	// Export
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportExcel(ctx context.Context) (*excelize.File, error)
}

// BookDetail is a book together with its resolved related titles.
type BookDetail struct {
	model.Book
	Related []model.Book `json:"related,omitempty"`
}
