package main

import (
	"context"
	"fmt"

	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/handler"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/server"
	"github.com/adhd-assistant/api/internal/service"
	"github.com/adhd-assistant/api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("auth-server", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("auth-server", cfg.App.Debug)
	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	services := service.NewServices(repositories, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
