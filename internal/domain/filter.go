package domain

// SortOption defines the available sorting modes for flight results.
type SortOption string

// Available sort options.
const (
	// SortBestValue sorts by the composite value score (default)
	SortBestValue SortOption = "bestValue"

	// SortCheapest sorts by price ascending
	SortCheapest SortOption = "cheapest"

	// SortFastest sorts by total duration ascending
	SortFastest SortOption = "fastest"

	// SortFewestStops sorts by number of stops ascending
	SortFewestStops SortOption = "fewestStops"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortBestValue, SortCheapest, SortFastest, SortFewestStops:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortBestValue if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortBestValue
}

// StopsTwoPlus is the stops filter value that selects "2 or more" stops
// rather than an exact match.
const StopsTwoPlus = 2

// PriceRange is an inclusive [Min, Max] price band.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains checks if a price falls within the range. A nil range matches
// everything.
func (pr *PriceRange) Contains(price float64) bool {
	if pr == nil {
		return true
	}
	return price >= pr.Min && price <= pr.Max
}

// FilterOptions defines the optional filters applied to flight results.
// All filters are independently optional and compose by logical AND.
type FilterOptions struct {
	// Stops: nil = no constraint; 0 and 1 match the stop count exactly;
	// 2 is the "2+" bucket and matches flights with two or more stops.
	Stops *int `json:"stops,omitempty"`

	// PriceRange keeps flights whose price lies inside the inclusive band.
	PriceRange *PriceRange `json:"priceRange,omitempty"`

	// Airlines keeps only flights operated by these carrier codes.
	// An empty list means no constraint.
	Airlines []string `json:"airlines,omitempty"`
}

// MatchesFlight checks if a flight passes all filter criteria.
func (f *FilterOptions) MatchesFlight(flight Flight) bool {
	if f == nil {
		return true
	}

	if f.Stops != nil && !matchesStops(flight.Stops, *f.Stops) {
		return false
	}

	if !f.PriceRange.Contains(flight.Price) {
		return false
	}

	if len(f.Airlines) > 0 && !containsAirline(f.Airlines, flight.Airline) {
		return false
	}

	return true
}

// matchesStops applies the stops filter semantics: exact match below the
// "2+" bucket, at-least match from it onward.
func matchesStops(stops, filter int) bool {
	if filter >= StopsTwoPlus {
		return stops >= StopsTwoPlus
	}
	return stops == filter
}

func containsAirline(airlines []string, code string) bool {
	for _, a := range airlines {
		if a == code {
			return true
		}
	}
	return false
}
