package usecase

import (
	"context"

	"github.com/luckylamd/flight-search-engine/internal/domain"
	"github.com/luckylamd/flight-search-engine/internal/infrastructure/timeutil"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search queries the upstream provider and returns the filtered,
	// sorted, and re-bucketed result set.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)
}

// SearchOptions contains the optional processing parameters for a search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: best value)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortBestValue,
	}
}

// flightSearchUseCase implements FlightSearchUseCase against a single
// upstream provider. Every derivation is recomputed from scratch per
// request; nothing is cached or shared across requests.
type flightSearchUseCase struct {
	provider domain.FlightProvider
	clock    timeutil.Clock
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by the given
// provider. A nil clock defaults to the system clock.
func NewFlightSearchUseCase(provider domain.FlightProvider, clock timeutil.Clock) FlightSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &flightSearchUseCase{
		provider: provider,
		clock:    clock,
	}
}

// Search implements FlightSearchUseCase.Search. Upstream errors are
// propagated unchanged; the caller is responsible for user messaging.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	result, err := uc.provider.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	flights := ApplyFiltersAndSort(result.Flights, opts.Filters, opts.SortBy)
	hourly := FilteredHourly(flights, result.HourlyPrices)

	return domain.NewSearchResponse(flights, hourly, domain.SearchMetadata{
		Provider:     uc.provider.Name(),
		SearchTimeMs: uc.clock.Now().Sub(start).Milliseconds(),
	}), nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
