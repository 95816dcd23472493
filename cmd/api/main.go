package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notesapi/internal/config"
	"notesapi/internal/database"
	"notesapi/internal/database/repositories"
	"notesapi/internal/metrics"
	"notesapi/internal/server"
	notes_serv "notesapi/internal/service/notes"
	photos_serv "notesapi/internal/service/photos"
	users_serv "notesapi/internal/service/users"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := runMigrations(cfg.ServerConfig.MigrationsPath, cfg.DSN()); err != nil {
		logger.Fatal().Err(err).Msg("migration error")
	}

	db, err := database.New(cfg.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	metrics.Init()

	usersServ := users_serv.NewDefaultService(repositories.NewUserRepository(db.DB()), logger)
	notesServ := notes_serv.NewDefaultService(repositories.NewNoteRepository(db.DB()), logger)
	photosServ := photos_serv.NewDefaultService(repositories.NewPhotoRepository(db.DB()), logger)

	srv := server.New(cfg.ServerConfig, db, usersServ, notesServ, photosServ)
	srv.RegisterFiberRoutes()

	go func() {
		if err := srv.Listen(":" + cfg.ServerConfig.Port); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logger.Info().Str("port", cfg.ServerConfig.Port).Msg("notes api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

func runMigrations(sourceURL, dbURL string) error {
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
