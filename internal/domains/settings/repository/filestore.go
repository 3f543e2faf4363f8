package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"safaia-backend/internal/domains/settings/model"
	"safaia-backend/pkg/logger"
)

const settingsFileName = "settings.json"

// RepositoryInterface is the singleton settings record store.
type RepositoryInterface interface {
	// Get returns the stored settings. On first read, when no file
	// exists yet, the defaults are persisted and returned.
	Get(ctx context.Context) (*model.Settings, error)

	// Save overwrites the whole record.
	Save(ctx context.Context, settings model.Settings) error
}

type fileRepository struct {
	dir  string
	path string
	mu   sync.Mutex
}

// NewFileRepository creates a flat-file settings store rooted at dir.
func NewFileRepository(dir string) RepositoryInterface {
	return &fileRepository{
		dir:  dir,
		path: filepath.Join(dir, settingsFileName),
	}
}

func (r *fileRepository) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		defaults := model.Default()
		if err := r.save(defaults); err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	if err != nil {
		logger.Error("read settings file", err)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreRead, err)
	}

	var settings model.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Error("parse settings file", err)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreRead, err)
	}
	return &settings, nil
}

func (r *fileRepository) Save(ctx context.Context, settings model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(settings)
}

func (r *fileRepository) save(settings model.Settings) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("write settings file", err)
		return fmt.Errorf("%w: %v", model.ErrStoreWrite, err)
	}
	return nil
}
