package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth sends visitors without a session to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionUserID(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
