package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chedan888/BBQ/internal/kiosk"
)

// RequireAdminView rejects requests unless the session is currently on
// the admin screen. The view controller, not a token, decides which
// operations are reachable.
func RequireAdminView(session *kiosk.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.View() != kiosk.ViewAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin screen is not active",
			})
			return
		}
		c.Next()
	}
}
