package handlers

import (
	"fmt"
	"net/http"

	"github.com/gamehive/accounts_backend/internal/apperrors"

	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gamehive/accounts_backend/internal/middleware"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// userHandler handles the protected account operations. Every route here sits
// behind the auth middleware, which has already validated the access token
// and attached the user to the context.
type userHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// newUserHandler creates a new userHandler.
func newUserHandler(cfg *config.Config, services *portssvc.ServiceContainer) *userHandler {
	return &userHandler{
		userService: services.User,
		authService: services.Auth,
		cfg:         cfg,
	}
}

// registerUserRoutes registers the protected account routes.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newUserHandler(cfg, services)

	rg.POST("/logout", h.Logout)
	rg.POST("/update-password", h.UpdatePassword)
	rg.PATCH("/update-account", h.UpdateAccount)
	rg.GET("/current-user", h.CurrentUser)
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and expires both cookies. The
// @Description last issued refresh token can no longer be used.
// @Tags user
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /user/logout [post]
func (h *userHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: missing authentication context", apperrors.ErrUnauthorized))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	clearAuthCookies(c, h.cfg)
	respondSuccess(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// UpdatePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces it. The active session
// @Description (refresh token) is left untouched.
// @Tags user
// @Accept json
// @Produce json
// @Param passwords body dto.UpdatePasswordRequest true "Password change"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /user/update-password [post]
func (h *userHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: missing authentication context", apperrors.ErrUnauthorized))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: all password fields are required", apperrors.ErrValidation))
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Password updated successfully")
}

// UpdateAccount godoc
// @Summary Update account details
// @Description Partially updates username and/or email; omitted fields are
// @Description left untouched.
// @Tags user
// @Accept json
// @Produce json
// @Param details body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 409 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /user/update-account [patch]
func (h *userHandler) UpdateAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: missing authentication context", apperrors.ErrUnauthorized))
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: username or email is required", apperrors.ErrValidation))
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)}, "Account details updated successfully")
}

// CurrentUser godoc
// @Summary Get the current user
// @Description Returns the user attached by the auth middleware. No extra
// @Description store round-trip.
// @Tags user
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Security BearerAuth
// @Router /user/current-user [get]
func (h *userHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: missing authentication context", apperrors.ErrUnauthorized))
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)}, "User found successfully")
}
