package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminSessionKey marks an authenticated moderator session.
const AdminSessionKey = "admin"

// AdminRequired gates the moderator surface. This is a separate trust
// boundary from the storefront proxy signature: admin requests carry a
// session cookie established by the login handler.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if ok, _ := session.Get(AdminSessionKey).(bool); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		c.Next()
	}
}
