package main

import (
	"context"
	"net/http"
	"time"

	"safaia-backend/internal/shared/middleware"
	"safaia-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAuthRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// setupPublicRoutes registers the storefront-facing catalog reads.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListCatalog)
		books.GET("/featured", c.BookHandler.Featured)
		books.GET("/new-releases", c.BookHandler.NewReleases)
		books.GET("/recommended", c.BookHandler.Recommended)
		books.GET("/:slug", c.BookHandler.GetBySlug)
	}

	v1.GET("/categories", c.BookHandler.Categories)
	v1.GET("/settings", c.SettingsHandler.Get)
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
	}
}

// setupAdminRoutes registers the session-gated management surface.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.SessionAuth(c.SessionManager, c.Config.Session.CookieName))
	{
		admin.GET("/books", c.BookHandler.ListAll)
		admin.POST("/books", c.BookHandler.Create)
		admin.PUT("/books/:slug", c.BookHandler.Update)
		admin.DELETE("/books/:slug", c.BookHandler.Delete)

		admin.PUT("/settings", c.SettingsHandler.Save)

		admin.GET("/export/json", c.BookHandler.ExportJSON)
		admin.GET("/export/csv", c.BookHandler.ExportCSV)
		admin.GET("/export/xlsx", c.BookHandler.ExportExcel)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheStatus := "ok"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "unavailable"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"cache": cacheStatus,
			},
		})
	}
}
