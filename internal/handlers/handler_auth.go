package handlers

import (
	"fmt"
	"net/http"

	"github.com/gamehive/accounts_backend/internal/apperrors"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the unauthenticated part of the session lifecycle:
// registration, login and refresh-token rotation.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		userService: services.User,
		authService: services.Auth,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/refresh-token", h.RefreshToken)
}

// setAuthCookies sets the token pair as HttpOnly secure cookies.
func setAuthCookies(c *gin.Context, cfg *config.Config, tokens *portssvc.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.AccessTokenCookieName, tokens.AccessToken, int(cfg.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie(cfg.RefreshTokenCookieName, tokens.RefreshToken, int(cfg.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

// clearAuthCookies expires both token cookies.
func clearAuthCookies(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "", -1, "/", "", true, true)
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account with a starting coin balance.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "Registration details"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 409 {object} dto.APIErrorResponse
// @Failure 500 {object} dto.APIErrorResponse
// @Router /user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation))
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticates by username or email and starts a session. Sets
// @Description the access and refresh tokens as HttpOnly cookies and returns
// @Description them in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.cfg.IsProduction, fmt.Errorf("%w: email or username is required", apperrors.ErrValidation))
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	setAuthCookies(c, h.cfg, tokens)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "User logged in successfully")
}

// RefreshToken godoc
// @Summary Rotate the token pair
// @Description Validates the refresh token from the cookie or body and issues
// @Description a new access and refresh token pair. The previous refresh
// @Description token becomes unusable.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token (optional when the cookie is present)"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /user/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	incoming, _ := c.Cookie(h.cfg.RefreshTokenCookieName)
	if incoming == "" {
		var req dto.RefreshTokenRequest
		// Body is optional; a missing or malformed body just means no token.
		_ = c.ShouldBindJSON(&req)
		incoming = req.RefreshToken
	}

	tokens, err := h.authService.RefreshSession(c.Request.Context(), incoming)
	if err != nil {
		respondError(c, h.cfg.IsProduction, err)
		return
	}

	setAuthCookies(c, h.cfg, tokens)
	respondSuccess(c, http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "Access Token Refreshed Successfully")
}
