package service

import (
	"context"

	"safaia-backend/internal/domains/settings/model"
	"safaia-backend/internal/domains/settings/repository"
)

// ServiceInterface is the settings domain business logic.
type ServiceInterface interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}

type SettingsService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	return s.repo.Get(ctx)
}

// Save validates and overwrites the whole record.
func (s *SettingsService) Save(ctx context.Context, settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, settings)
}
