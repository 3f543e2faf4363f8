package middleware

import (
	"net/http"

	"safaia-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth guards admin routes. It reads the session cookie and
// rejects the request with 401 before any handler I/O when the token is
// missing, malformed, or expired.
func SessionAuth(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing session"},
			})
			c.Abort()
			return
		}

		if !manager.Validate(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
