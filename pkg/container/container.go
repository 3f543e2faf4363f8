package container

import (
	"context"
	"fmt"
	"time"

	"safaia-backend/internal/config"
	infraCache "safaia-backend/internal/infrastructure/cache"
	"safaia-backend/pkg/cache"
	"safaia-backend/pkg/logger"
	"safaia-backend/pkg/session"

	authHandler "safaia-backend/internal/domains/auth/handler"
	authService "safaia-backend/internal/domains/auth/service"
	bookHandler "safaia-backend/internal/domains/book/handler"
	"safaia-backend/internal/domains/book/query"
	bookRepo "safaia-backend/internal/domains/book/repository"
	bookService "safaia-backend/internal/domains/book/service"
	settingsHandler "safaia-backend/internal/domains/settings/handler"
	settingsRepo "safaia-backend/internal/domains/settings/repository"
	settingsService "safaia-backend/internal/domains/settings/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config         *config.Config
	Cache          cache.Cache
	SessionManager *session.Manager

	BookRepo    bookRepo.RepositoryInterface
	BookService bookService.ServiceInterface
	BookHandler *bookHandler.Handler

	SettingsRepo    settingsRepo.RepositoryInterface
	SettingsService settingsService.ServiceInterface
	SettingsHandler *settingsHandler.Handler

	AuthService authService.ServiceInterface
	AuthHandler *authHandler.Handler
}

// NewContainer loads config and builds the whole dependency graph.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	c.Cache = buildCache(cfg.Redis)

	sessionDuration := time.Duration(cfg.Session.DurationHours) * time.Hour
	c.SessionManager = session.NewManager(cfg.Session.Secret, sessionDuration)

	c.BookRepo = bookRepo.NewFileRepository(cfg.Storage.DataDir)
	c.SettingsRepo = settingsRepo.NewFileRepository(cfg.Storage.DataDir)

	engine := query.New(cfg.Catalog.Categories, cfg.Catalog.PageSize)
	c.BookService = bookService.NewService(c.BookRepo, engine, c.Cache, cfg.Catalog.Categories)
	c.SettingsService = settingsService.NewService(c.SettingsRepo)
	c.AuthService = authService.NewService(cfg.Admin, c.SessionManager)

	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.SettingsHandler = settingsHandler.NewHandler(c.SettingsService)
	c.AuthHandler = authHandler.NewHandler(
		c.AuthService,
		cfg.Session.CookieName,
		int(sessionDuration.Seconds()),
		cfg.App.Environment == "production",
	)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"data_dir":    cfg.Storage.DataDir,
		"cache":       cfg.Redis.Enabled,
	})

	return c, nil
}

// buildCache returns the Redis-backed cache when enabled, falling back
// to the no-op cache when Redis is disabled or unreachable.
func buildCache(cfg config.RedisConfig) cache.Cache {
	if !cfg.Enabled {
		return cache.NewNoop()
	}

	client := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, falling back to no-op cache", err)
		return cache.NewNoop()
	}

	logger.Info("redis connected", map[string]interface{}{"host": cfg.Host})
	return client
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", err)
		}
	}
}
