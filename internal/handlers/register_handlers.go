package handlers

import (
	"github.com/gamehive/accounts_backend/cmd/docs"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/middleware"
	"github.com/gamehive/accounts_backend/internal/platform/config"
	"github.com/gamehive/accounts_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Server-up check and health route
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	user := r.Group("/api/v1/user")

	// Public session routes: register, login, refresh-token
	registerAuthRoutes(user, cfg, services)

	// Protected account routes behind the auth guard
	protected := user.Group("", middleware.AuthMiddleware(cfg, services.User), middleware.PosthogMiddleware(posthogClient))
	registerUserRoutes(protected, cfg, services)

	// 404 fallback with the standard error envelope
	r.NoRoute(notFound)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
