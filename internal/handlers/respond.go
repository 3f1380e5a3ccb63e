package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gamehive/accounts_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondSuccess writes the standard success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewAPIResponse(statusCode, data, message))
}

// statusFromError maps the apperrors taxonomy to HTTP status codes. Anything
// outside the taxonomy is an internal failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps an error to its status code and writes the error
// envelope. Internal failures get a generic message so the underlying cause
// is never leaked to the client; it is logged server-side instead. Outside
// production a stack trace is attached to 500 responses.
func respondError(c *gin.Context, isProduction bool, err error) {
	status := statusFromError(err)

	resp := dto.APIErrorResponse{
		Success: false,
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Request failed with internal error", slog.String("error", err.Error()))
		resp.Message = "Something went wrong"
		if !isProduction {
			resp.Stack = string(debug.Stack())
		}
	}

	c.JSON(status, resp)
}
