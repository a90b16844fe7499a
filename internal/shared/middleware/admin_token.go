package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminToken guards the /admin route group with a shared token carried
// in the X-Admin-Token header. Authentication proper (sessions, roles)
// lives outside this service; the token only keeps the group from
// being open when the API is reachable directly.
//
// An empty configured token disables the whole group.
func AdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADMIN_001",
					"message": "Admin API is not configured",
				},
			})
			return
		}

		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADMIN_002",
					"message": "Invalid admin token",
				},
			})
			return
		}

		c.Next()
	}
}
