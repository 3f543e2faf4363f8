package handler

import (
	"net/http"

	service "safaia-backend/internal/domains/auth/service"
	"safaia-backend/internal/shared/response"
	"safaia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler serves admin login and logout.
type Handler struct {
	service    service.ServiceInterface
	cookieName string
	maxAge     int
	secure     bool
}

// NewHandler creates the auth handler. maxAge is the session cookie
// lifetime in seconds; secure marks the cookie HTTPS-only.
func NewHandler(service service.ServiceInterface, cookieName string, maxAge int, secure bool) *Handler {
	return &Handler{
		service:    service,
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login - POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		response.BadRequest(c, "Password is required")
		return
	}

	if !h.service.VerifyPassword(req.Password) {
		logger.Info("admin login rejected", map[string]interface{}{"ip": c.ClientIP()})
		response.Unauthorized(c, "Invalid password")
		return
	}

	token, err := h.service.CreateSession()
	if err != nil {
		logger.Error("session token generation failed", err)
		response.InternalServerError(c, "Failed to create session")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, h.maxAge, "/", "", h.secure, true)

	response.Success(c, http.StatusOK, gin.H{"message": "Logged in"})
}

// Logout - POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}
