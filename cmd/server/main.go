package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-mate/internal/adapter"
	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/handler"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/server"
	"github.com/MKhiriev/go-study-mate/internal/service"
	"github.com/MKhiriev/go-study-mate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("study-mate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	if cfg.App.Version == config.DefaultVersion && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("ai_base_url", cfg.AI.BaseURL).
		Str("ai_model", cfg.AI.Model).
		Bool("database", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	completion, err := adapter.NewCompletionClient(cfg.AI, log)
	switch {
	case errors.Is(err, adapter.ErrAPIKeyNotProvided):
		log.Warn().Msg("WARNING: GROQ_API_KEY is not set, AI endpoints will answer with errors")
	case err != nil:
		log.Fatal().Err(err).Msg("error creating completion client")
	}

	services, err := service.NewServices(storages, completion, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

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
