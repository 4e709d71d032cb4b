// Package main is the entry point for the flight search engine service.
//
//	@title						Flight Search Engine API
//	@version					1.0.0
//	@description				A flight search service that normalizes upstream flight offers into canonical results with filtering, sorting, and hourly price trends.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/luckylamd/flight-search-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/luckylamd/flight-search-engine/docs"

	flighthttp "github.com/luckylamd/flight-search-engine/internal/adapter/http"
	"github.com/luckylamd/flight-search-engine/internal/adapter/http/middleware"
	"github.com/luckylamd/flight-search-engine/internal/adapter/provider/amadeus"
	"github.com/luckylamd/flight-search-engine/internal/config"
	"github.com/luckylamd/flight-search-engine/internal/infrastructure/logger"
	"github.com/luckylamd/flight-search-engine/internal/settings"
	"github.com/luckylamd/flight-search-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-search-engine",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := settings.Open(cfg.Settings.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open settings store")
	}
	defer store.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg, store, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the provider, use case, and handlers into the Echo
// instance.
func setupRoutes(e *echo.Echo, cfg *config.Config, store *settings.Store, log *logger.Logger) {
	provider := amadeus.NewClient(amadeus.Config{
		BaseURL:    cfg.Amadeus.BaseURL,
		APIKey:     cfg.Amadeus.APIKey,
		APISecret:  cfg.Amadeus.APISecret,
		MaxResults: cfg.Amadeus.MaxResults,
		HTTPClient: &http.Client{Timeout: cfg.Amadeus.Timeout},
	}, log.Logger)

	flightUseCase := usecase.NewFlightSearchUseCase(provider, nil)

	flightHandler := flighthttp.NewFlightHandler(flightUseCase)
	settingsHandler := flighthttp.NewSettingsHandler(store)

	flighthttp.RegisterRoutes(e, flightHandler, settingsHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
