package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gamehive/accounts_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates the access
// token and attaches the authenticated user to the request context.
//
// The token is accepted either from the access-token cookie or from an
// Authorization: Bearer header. All failures, including a valid token whose
// user no longer exists, produce the same 401 envelope.
func AuthMiddleware(cfg *config.Config, userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractAccessToken(c, cfg.AccessTokenCookieName)
		if tokenString == "" {
			logger.Warn("Access token missing from cookie and Authorization header")
			abortUnauthorized(c, "Unauthorized request")
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, cfg.AccessTokenSecret)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			abortUnauthorized(c, "Invalid access token")
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			abortUnauthorized(c, "Invalid access token")
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("User from access token no longer exists", slog.String("user_id", userID))
			} else {
				logger.Error("Failed to load user for access token", slog.String("error", err.Error()))
			}
			abortUnauthorized(c, "Invalid access token")
			return
		}

		// Store the user ID and user in the standard request context and
		// enrich the request logger.
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userKey, user)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractAccessToken pulls the access token from the cookie or, failing that,
// from the Authorization header.
func extractAccessToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIErrorResponse{
		Success: false,
		Message: message,
	})
}
