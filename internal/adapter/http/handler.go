// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luckylamd/flight-search-engine/internal/adapter/http/response"
	"github.com/luckylamd/flight-search-engine/internal/chart"
	"github.com/luckylamd/flight-search-engine/internal/domain"
	"github.com/luckylamd/flight-search-engine/internal/i18n"
	"github.com/luckylamd/flight-search-engine/internal/settings"
	"github.com/luckylamd/flight-search-engine/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for one-way flights and return filtered, sorted results with an hourly price series
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param adults query int false "Number of adult passengers (1-9)"
// @Param stops query int false "Stop filter: 0 direct, 1 one stop, 2 two or more"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param airlines query string false "Comma-separated airline names"
// @Param sortBy query string false "Sort order: bestValue, cheapest, fastest, fewestStops"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream provider error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// Chart handles GET /api/v1/flights/chart
//
// It runs the same search as SearchFlights and renders the hourly price
// series as a PNG bar chart.
//
// @Summary Render hourly price chart
// @Description Render the average departure-hour price series for a search as a PNG chart
// @Tags flights
// @Produce png
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param adults query int false "Number of adult passengers (1-9)"
// @Param stops query int false "Stop filter: 0 direct, 1 one stop, 2 two or more"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param airlines query string false "Comma-separated airline names"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream provider error"
// @Router /api/v1/flights/chart [get]
func (h *FlightHandler) Chart(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	title := criteria.Origin + " → " + criteria.Destination + " " + criteria.DepartureDate
	png, err := chart.RenderHourlyPrices(result.HourlyPrices, title)
	if err != nil {
		return response.InternalServerError(c)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	// Timeouts and cancellations first: a provider failure caused by a
	// deadline should report as a timeout, not an upstream error.
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrProviderUnavailable) {
		return response.BadGateway(c, err.Error())
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new SettingsHandler backed by the given store.
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// SettingsResponse represents the settings payload returned to clients.
type SettingsResponse struct {
	Language string            `json:"language"`
	Labels   map[string]string `json:"labels"`
}

// UpdateSettingsRequest represents the request body for updating settings.
type UpdateSettingsRequest struct {
	Language string `json:"language"`
}

// GetSettings handles GET /api/v1/settings
//
// @Summary Get user settings
// @Description Return the persisted UI language and its localized labels
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	lang, err := h.store.Language(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c)
	}
	return response.OK(c, &SettingsResponse{
		Language: lang,
		Labels:   i18n.For(lang),
	})
}

// UpdateSettings handles PUT /api/v1/settings
//
// @Summary Update user settings
// @Description Persist the UI language
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if !i18n.IsSupported(req.Language) {
		return response.ValidationErrorWithMessage(c, "language must be one of: "+i18n.SupportedList())
	}

	if err := h.store.SetLanguage(c.Request().Context(), req.Language); err != nil {
		return response.InternalServerError(c)
	}

	return response.OK(c, &SettingsResponse{
		Language: req.Language,
		Labels:   i18n.For(req.Language),
	})
}
