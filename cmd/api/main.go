// Package main is the entry point for the curio API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curio-svc/curio/internal/config"
	"github.com/curio-svc/curio/internal/database"
	"github.com/curio-svc/curio/internal/handler"
	loggerPkg "github.com/curio-svc/curio/internal/logger"
	"github.com/curio-svc/curio/internal/middleware"
	"github.com/curio-svc/curio/internal/repository"
	"github.com/curio-svc/curio/internal/router"
	"github.com/curio-svc/curio/internal/server"
	"github.com/curio-svc/curio/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// No logger yet; write to stderr and exit.
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := loggerPkg.New(cfg.Primary.Env)

	// Bring the schema up to date before serving traffic.
	if err := database.Migrate(context.Background(), logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	r := router.New(middlewares, handlers)
	s.SetupHTTPServer(r)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
