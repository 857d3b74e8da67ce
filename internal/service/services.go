package service

import (
	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/store"
)

// Services bundles the business-logic services behind one handle.
type Services struct {
	AuthService
}

// NewServices wires the services on top of the repositories.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
	}
}
