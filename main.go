package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/migrations"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Apply schema migrations before opening the pool
	if err := migrations.Run(ctx, config.Database.DSN()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, config, os.Stdin, os.Stdout, logger)

	if err := cmd.ConsoleApp(ctx, app.Handler); err != nil {
		logger.Fatal("Console loop failed", zap.Error(err))
	}

	logger.Info("Application stopped")
}
