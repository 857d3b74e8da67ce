package http

import (
	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
