// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, flights *FlightHandler, settings *SettingsHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", flights.Health)

	api := e.Group("/api/v1")

	f := api.Group("/flights")
	f.GET("/search", flights.SearchFlights)
	f.GET("/chart", flights.Chart)

	api.GET("/settings", settings.GetSettings)
	api.PUT("/settings", settings.UpdateSettings)
}
