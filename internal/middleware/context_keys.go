package middleware

import (
	"github.com/gamehive/accounts_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// userKey is the key used to store the authenticated user (sanitized of
// credential material by the auth middleware's contract) in the context.
const userKey = contextKey("user")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetUserFromContext retrieves the authenticated user attached by the auth
// middleware. Handlers that only need the caller's identity use this instead
// of another store round-trip.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal := c.Request.Context().Value(userKey)
	if userVal == nil {
		return nil, false
	}
	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
