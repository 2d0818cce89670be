package main

import (
	"fmt"
	"log"

	"github.com/Zoh007/claims-management-system/internal/config"
	"github.com/Zoh007/claims-management-system/internal/events"
	"github.com/Zoh007/claims-management-system/internal/handler"
	"github.com/Zoh007/claims-management-system/internal/logging"
	"github.com/Zoh007/claims-management-system/internal/repository/postgres"
	"github.com/Zoh007/claims-management-system/internal/router"
	"github.com/Zoh007/claims-management-system/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Setup(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	claimRepo := postgres.NewClaimRepo(db)
	detailRepo := postgres.NewClaimDetailRepo(db)
	flagRepo := postgres.NewFlagRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	userRepo := postgres.NewUserRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Live event hub for dashboard notifications
	hub := events.NewHub(cfg.Events.ListenerBuffer, logger)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	claimSvc := service.NewClaimService(claimRepo, detailRepo, flagRepo, noteRepo)
	flagSvc := service.NewFlagService(flagRepo, claimRepo, hub)
	noteSvc := service.NewNoteService(noteRepo, claimRepo)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	claimH := handler.NewClaimHandler(claimSvc)
	flagH := handler.NewFlagHandler(flagSvc)
	noteH := handler.NewNoteHandler(noteSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	eventsH := handler.NewEventsHandler(hub)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, logger, authSvc, authH, claimH, flagH, noteH, statsH, eventsH, healthH)

	logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
