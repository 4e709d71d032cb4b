// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/luckylamd/flight-search-engine/internal/domain"
	"github.com/luckylamd/flight-search-engine/internal/usecase"
)

// SearchFlightsRequest represents the query parameters for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `query:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// Adults is the number of adult passengers (defaults to 1)
	Adults int `query:"adults"`

	// Stops filters by stop count: 0 = direct, 1 = one stop, 2 = two or more
	Stops *int `query:"stops"`

	// MinPrice filters out flights cheaper than this amount (inclusive)
	MinPrice *float64 `query:"minPrice"`

	// MaxPrice filters out flights more expensive than this amount (inclusive)
	MaxPrice *float64 `query:"maxPrice"`

	// Airlines is a comma-separated list of airline names or codes to keep
	Airlines string `query:"airlines"`

	// SortBy specifies how to sort results: bestValue, cheapest, fastest, fewestStops
	SortBy string `query:"sortBy"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Missing adults defaults to 1 rather than failing.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDepartureDate(errs)
	r.validateAdults(errs)
	r.validateStops(errs)
	r.validatePriceRange(errs)
	r.validateSortBy(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(strings.TrimSpace(r.Origin))
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin // Normalize to uppercase
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(strings.TrimSpace(r.Destination))
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest // Normalize to uppercase
}

func (r *SearchFlightsRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchFlightsRequest) validateDepartureDate(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}

	if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}
}

func (r *SearchFlightsRequest) validateAdults(errs *ValidationErrors) {
	if r.Adults == 0 {
		r.Adults = 1
		return
	}
	if r.Adults < 1 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if r.Adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
}

func (r *SearchFlightsRequest) validateStops(errs *ValidationErrors) {
	if r.Stops == nil {
		return
	}
	if *r.Stops < 0 || *r.Stops > domain.StopsTwoPlus {
		errs.Add("stops", fmt.Sprintf("stops must be between 0 and %d", domain.StopsTwoPlus))
	}
}

func (r *SearchFlightsRequest) validatePriceRange(errs *ValidationErrors) {
	if r.MinPrice != nil && *r.MinPrice < 0 {
		errs.Add("minPrice", "minPrice must be a non-negative number")
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("maxPrice", "maxPrice must be a non-negative number")
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		errs.Add("minPrice", "minPrice must be less than or equal to maxPrice")
	}
}

func (r *SearchFlightsRequest) validateSortBy(errs *ValidationErrors) {
	if r.SortBy == "" {
		return
	}
	if !domain.SortOption(r.SortBy).IsValid() {
		errs.Add("sortBy", "sortBy must be one of: bestValue, cheapest, fastest, fewestStops")
	}
}

// ToDomainCriteria converts the validated request into search criteria.
func ToDomainCriteria(r *SearchFlightsRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		Adults:        r.Adults,
	}
	criteria.SetDefaults()
	return criteria
}

// ToSearchOptions converts the validated request into filter and sort
// options. Filters are nil when no filter parameter was supplied.
func ToSearchOptions(r *SearchFlightsRequest) usecase.SearchOptions {
	opts := usecase.SearchOptions{
		SortBy: domain.ParseSortOption(r.SortBy),
	}

	airlines := splitAirlines(r.Airlines)
	if r.Stops == nil && r.MinPrice == nil && r.MaxPrice == nil && len(airlines) == 0 {
		return opts
	}

	filters := &domain.FilterOptions{
		Stops:    r.Stops,
		Airlines: airlines,
	}
	if r.MinPrice != nil || r.MaxPrice != nil {
		min := 0.0
		if r.MinPrice != nil {
			min = *r.MinPrice
		}
		max := math.MaxFloat64
		if r.MaxPrice != nil {
			max = *r.MaxPrice
		}
		filters.PriceRange = &domain.PriceRange{Min: min, Max: max}
	}
	opts.Filters = filters
	return opts
}

// splitAirlines parses a comma-separated airline list, dropping empty
// entries.
func splitAirlines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	airlines := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			airlines = append(airlines, trimmed)
		}
	}
	return airlines
}
