package domain

import "errors"

// Sentinel errors shared across layers. Callers match them with errors.Is
// after layers have wrapped them with additional context.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable indicates the upstream flight-data provider
	// could not be reached or rejected the request. The upstream message
	// is carried opaquely in the wrapping error.
	ErrProviderUnavailable = errors.New("flight provider unavailable")
)
