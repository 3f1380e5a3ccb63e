package services

import (
	portsrepo "github.com/gamehive/accounts_backend/internal/core/ports/repositories"
	portssvc "github.com/gamehive/accounts_backend/internal/core/ports/services"
	"github.com/gamehive/accounts_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token)

	return container
}
