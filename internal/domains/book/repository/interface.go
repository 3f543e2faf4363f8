package repository

import (
	"context"

	"safaia-backend/internal/domains/book/model"
)

// RepositoryInterface is the durable book collection. Every mutation is
// a whole-file rewrite: read the entire store, mutate in memory, write
// it back.
type RepositoryInterface interface {
	// ListAll returns the whole collection. A store that does not
	// exist yet yields an empty list, not an error.
	ListAll(ctx context.Context) ([]model.Book, error)

	// GetBySlug returns model.ErrBookNotFound when no record matches,
	// so callers can tell absence from I/O failure.
	GetBySlug(ctx context.Context, slug string) (*model.Book, error)

	// Create appends a record. Fails with model.ErrSlugAlreadyExists
	// on a slug collision; the stored record is returned unchanged.
	Create(ctx context.Context, book model.Book) (*model.Book, error)

	// Update shallow-merges the patch into the record with the given
	// slug. Fails with model.ErrBookNotFound when absent, and with
	// model.ErrSlugAlreadyExists when the patch renames the slug onto
	// a different existing record.
	Update(ctx context.Context, slug string, patch model.Patch) (*model.Book, error)

	// Delete removes the record permanently.
	Delete(ctx context.Context, slug string) error
}
