package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"safaia-backend/internal/domains/book/model"
	"safaia-backend/pkg/logger"
)

const booksFileName = "books.json"

// fileRepository stores the whole collection as one indented JSON array
// on disk. A single mutex serializes mutations so two concurrent
// read-mutate-write cycles cannot silently drop each other's writes.
type fileRepository struct {
	dir  string
	path string
	mu   sync.Mutex
}

// NewFileRepository creates a flat-file book repository rooted at dir.
func NewFileRepository(dir string) RepositoryInterface {
	return &fileRepository{
		dir:  dir,
		path: filepath.Join(dir, booksFileName),
	}
}

func (r *fileRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *fileRepository) GetBySlug(ctx context.Context, slug string) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	books, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range books {
		if books[i].Slug == slug {
			return &books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fileRepository) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	books, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range books {
		if books[i].Slug == book.Slug {
			return nil, fmt.Errorf("create %q: %w", book.Slug, model.ErrSlugAlreadyExists)
		}
	}

	books = append(books, book)
	if err := r.save(books); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *fileRepository) Update(ctx context.Context, slug string, patch model.Patch) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	books, err := r.load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range books {
		if books[i].Slug == slug {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("update %q: %w", slug, model.ErrBookNotFound)
	}

	// A slug rename must not collide with a different record.
	if newSlug, ok := patch.Slug(); ok && newSlug != slug {
		for i := range books {
			if i != index && books[i].Slug == newSlug {
				return nil, fmt.Errorf("update %q to %q: %w", slug, newSlug, model.ErrSlugAlreadyExists)
			}
		}
	}

	patch.Sanitize()
	updated, err := patch.Apply(&books[index])
	if err != nil {
		return nil, fmt.Errorf("apply patch to %q: %w", slug, err)
	}

	books[index] = *updated
	if err := r.save(books); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *fileRepository) Delete(ctx context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	books, err := r.load()
	if err != nil {
		return err
	}

	kept := books[:0:0]
	for _, b := range books {
		if b.Slug != slug {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(books) {
		return fmt.Errorf("delete %q: %w", slug, model.ErrBookNotFound)
	}

	return r.save(kept)
}

// load reads the whole backing file. A missing file is the first-run
// case and yields an empty collection; any other read or parse failure
// is surfaced as ErrStoreRead rather than masked as an empty catalog.
func (r *fileRepository) load() ([]model.Book, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Book{}, nil
	}
	if err != nil {
		logger.Error("read books file", err)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreRead, err)
	}

	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		logger.Error("parse books file", err)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreRead, err)
	}
	return books, nil
}

// save rewrites the whole backing file, creating the data directory on
// first write.
func (r *fileRepository) save(books []model.Book) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("write books file", err)
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}
	return nil
}
