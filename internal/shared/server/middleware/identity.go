package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const (
	userIDKey = "userId"

	// UserIDHeader carries the caller's opaque portfolio owner id.
	UserIDHeader = "X-User-Id"

	maxUserIDLen = 128
)

// Identity stores the caller id from X-User-Id when present. Routes that need
// an owner are wrapped with RequireIdentity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.Next()
			return
		}
		if len(userID) > maxUserIDLen || strings.ContainsAny(userID, " \t\r\n") {
			respond.Error(c, http.StatusBadRequest, "invalid_identity", "X-User-Id is malformed", nil)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireIdentity rejects requests that carry no caller id.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserIDFromContext(c) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
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
