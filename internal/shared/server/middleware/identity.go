package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// Identity resolves the caller identity from request headers. There is no
// account system; clients send a stable X-User-Id (or X-Guest-Id) and
// anonymous requests share a single bucket.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			if guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id")); guestID != "" {
				userID = "guest:" + guestID
			}
		}
		if userID == "" {
			userID = "anonymous"
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID stored by Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
