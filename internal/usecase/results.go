// Package usecase contains the business logic for flight search: the
// search orchestration and the result processor that derives the visible
// flight list from filters and sort selections.
package usecase

import (
	"sort"

	"github.com/luckylamd/flight-search-engine/internal/domain"
)

// Value score weights. Price dominates, duration matters, stops are a
// tiebreaker; the weights sum to 1.0.
const (
	weightPrice    = 0.6
	weightDuration = 0.3
	weightStops    = 0.1
)

// ApplyFiltersAndSort derives the visible ordering from the full canonical
// flight list: filtering runs over the list, sorting over the filtered
// subset. Best-value normalization deliberately runs over the FULL
// unfiltered set so the relative value ordering stays stable as filters
// are toggled. Neither input slice is mutated.
func ApplyFiltersAndSort(all []domain.Flight, filters *domain.FilterOptions, sortBy domain.SortOption) []domain.Flight {
	filtered := ApplyFilters(all, filters)
	return SortFlights(filtered, all, sortBy)
}

// ApplyFilters returns a new slice containing only flights that match all
// filter criteria. A nil filter returns the input unchanged.
func ApplyFilters(flights []domain.Flight, opts *domain.FilterOptions) []domain.Flight {
	if opts == nil {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if opts.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}

// SortFlights orders the flights according to the sort option without
// mutating the input. All sorts are stable and ascending; ties keep their
// incoming order, so re-sorting an already sorted list is a no-op.
//
// The full set is consulted only by the best-value sort, which normalizes
// price, duration, and stops over it.
func SortFlights(flights []domain.Flight, all []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) <= 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortBestValue
	}

	switch sortBy {
	case domain.SortCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortFastest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationMinutes() < result[j].DurationMinutes()
		})
	case domain.SortFewestStops:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Stops < result[j].Stops
		})
	case domain.SortBestValue:
		scores := ValueScores(all)
		sort.SliceStable(result, func(i, j int) bool {
			return scores[result[i].ID] < scores[result[j].ID]
		})
	}

	return result
}

// ValueScores computes the composite value score for every flight in the
// set, keyed by flight ID. Each factor is min-max normalized over the
// given set; lower score = better value. A zero-width range contributes 0
// for every flight in that factor.
func ValueScores(flights []domain.Flight) map[string]float64 {
	scores := make(map[string]float64, len(flights))
	if len(flights) == 0 {
		return scores
	}

	minPrice, maxPrice := priceRange(flights)
	minDuration, maxDuration := durationRange(flights)
	maxStops := maxStopsIn(flights)

	for _, f := range flights {
		priceScore := normalize(f.Price, minPrice, maxPrice)
		durationScore := normalize(float64(f.DurationMinutes()), float64(minDuration), float64(maxDuration))
		stopsScore := normalizeStops(f.Stops, maxStops)

		scores[f.ID] = weightPrice*priceScore +
			weightDuration*durationScore +
			weightStops*stopsScore
	}
	return scores
}

// FilteredHourly recomputes the hourly price series over the filtered
// flights. When filtering has eliminated every flight, the last unfiltered
// series is returned instead (or an empty series when none exists), so the
// chart does not collapse to a misleading flat zero line.
func FilteredHourly(filtered []domain.Flight, unfiltered []domain.HourlyPricePoint) []domain.HourlyPricePoint {
	if len(filtered) == 0 {
		if unfiltered == nil {
			return []domain.HourlyPricePoint{}
		}
		return unfiltered
	}
	return domain.BucketHourly(filtered)
}

// normalize min-max scales a value to [0, 1], returning 0 for a zero-width
// range.
func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// normalizeStops scales stops against the set maximum (0 when the whole
// set is nonstop). Unlike the other factors this is not min-max: a direct
// flight always scores 0.
func normalizeStops(stops, maxStops int) float64 {
	if maxStops == 0 {
		return 0
	}
	return float64(stops) / float64(maxStops)
}

func priceRange(flights []domain.Flight) (min, max float64) {
	min, max = flights[0].Price, flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < min {
			min = f.Price
		}
		if f.Price > max {
			max = f.Price
		}
	}
	return min, max
}

func durationRange(flights []domain.Flight) (min, max int) {
	min = flights[0].DurationMinutes()
	max = min
	for _, f := range flights[1:] {
		d := f.DurationMinutes()
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func maxStopsIn(flights []domain.Flight) int {
	max := 0
	for _, f := range flights {
		if f.Stops > max {
			max = f.Stops
		}
	}
	return max
}
