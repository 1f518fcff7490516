package main

import (
	"context"
	"fmt"

	"github.com/Schmolo/nhplus-umsetzung/internal/audit"
	"github.com/Schmolo/nhplus-umsetzung/internal/clock"
	"github.com/Schmolo/nhplus-umsetzung/internal/config"
	"github.com/Schmolo/nhplus-umsetzung/internal/handler/http"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/server"
	"github.com/Schmolo/nhplus-umsetzung/internal/service"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("nhplus-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	clk := clock.System()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	revoked, err := store.NewRedisRevocationList(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session revocation list")
	}

	trail, err := audit.NewTrail(cfg.Storage.AuditLogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening audit trail")
	}

	repos := store.NewRepositories(db, clk, log)
	services := service.NewServices(repos, revoked, trail, cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration, log)

	sweeper := workers.NewRetentionSweeper(repos.LockStores, clk, cfg.Workers.SweepInterval, log)
	handler := http.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, workers.NewWorkers(sweeper), log)
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
