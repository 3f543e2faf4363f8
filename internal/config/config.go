package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Catalog CatalogConfig
	Admin   AdminConfig
	Session SessionConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type StorageConfig struct {
	DataDir string // directory holding books.json and settings.json
}

type CatalogConfig struct {
	PageSize   int
	Categories []string
}

type AdminConfig struct {
	// Password is the shared admin secret. The default is for local
	// development only and must be overridden in production.
	Password string
	// PasswordHash, when set, is a bcrypt hash that takes precedence
	// over Password.
	PasswordHash string
	Salt         string
}

type SessionConfig struct {
	Secret        string
	DurationHours int
	CookieName    string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

// DefaultCategories is the publishing house's catalog taxonomy. It can
// be overridden with CATALOG_CATEGORIES (comma-separated).
var DefaultCategories = []string{"Art", "Fashion", "Photography", "Folk Art", "Culinary History"}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Safaia API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Catalog: CatalogConfig{
			PageSize:   getEnvInt("CATALOG_PAGE_SIZE", 9),
			Categories: getEnvList("CATALOG_CATEGORIES", DefaultCategories),
		},
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", "safaia2024"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Salt:         getEnv("ADMIN_SALT", "safaia-salt"),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", "change-me-in-production"),
			DurationHours: getEnvInt("SESSION_DURATION_HOURS", 24),
			CookieName:    getEnv("SESSION_COOKIE_NAME", "safaia_admin_session"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical config values.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Session.Secret == "change-me-in-production" {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
		if c.Admin.Password == "safaia2024" && c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", c.Catalog.PageSize)
	}
	if len(c.Catalog.Categories) == 0 {
		return fmt.Errorf("CATALOG_CATEGORIES must not be empty")
	}
	if c.Session.DurationHours < 1 {
		return fmt.Errorf("SESSION_DURATION_HOURS must be positive, got %d", c.Session.DurationHours)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
