package domain

import "context"

// SearchResult is the normalized output of one provider search: the
// canonical flight list plus the baseline hourly price series computed
// over the full, unfiltered set.
type SearchResult struct {
	Flights      []Flight           `json:"flights"`
	HourlyPrices []HourlyPricePoint `json:"hourlyPrices"`
}

// FlightProvider is the port to an upstream flight-data source. A provider
// returns already-normalized results or an error; it performs no retries
// and no caching.
type FlightProvider interface {
	// Name returns the unique provider identifier.
	Name() string

	// Search queries the upstream source for the given criteria.
	Search(ctx context.Context, criteria SearchCriteria) (*SearchResult, error)
}
