package middleware

import (
	"strings"

	"plumtrips-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards admin routes with a Bearer JWT.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.Unauthorized(c, "Missing or malformed authorization header")
			c.Abort()
			return
		}

		userID, email, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}
