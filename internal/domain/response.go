package domain

// SearchResponse is the processed result of a flight search: the filtered
// and sorted flight list, its hourly price series, and execution metadata.
type SearchResponse struct {
	// Flights is the flight list after filtering and sorting
	Flights []Flight `json:"flights"`

	// HourlyPrices is the 24-bucket hourly series for the visible set
	HourlyPrices []HourlyPricePoint `json:"hourlyPrices"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of flights after filtering
	TotalResults int `json:"totalResults"`

	// Provider identifies the upstream source that served the search
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResponse builds a SearchResponse, normalizing nil slices so the
// JSON contract always carries arrays.
func NewSearchResponse(flights []Flight, hourly []HourlyPricePoint, meta SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	if hourly == nil {
		hourly = []HourlyPricePoint{}
	}
	meta.TotalResults = len(flights)

	return &SearchResponse{
		Flights:      flights,
		HourlyPrices: hourly,
		Metadata:     meta,
	}
}
