package main

import (
	"os"

	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is for local development; production uses the system
	// environment directly.
	dotenvErr := godotenv.Load()

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	if dotenvErr != nil {
		logger.Debug("no .env file found, using system environment")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
