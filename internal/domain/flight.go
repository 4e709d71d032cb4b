// Package domain contains the core business entities for the flight search
// service. The canonical flight model is provider-agnostic and display-ready;
// it is the only contract shared between the upstream adapter and the result
// processing layer.
package domain

import "strings"

// FareType classifies the fare brand of an offer.
type FareType string

// Fare type classifications derived from free-text fare-brand strings.
const (
	FareBasicEconomy FareType = "Basic economy"
	FareStandard     FareType = "Standard"
	FareUnknown      FareType = "Unknown"
)

// NormalizeFareType classifies a free-text fare-brand string (e.g.
// "BASIC_ECONOMY", "ECO_FLEX") into one of the three fare types.
func NormalizeFareType(input string) FareType {
	if input == "" {
		return FareUnknown
	}
	s := strings.ToUpper(input)
	switch {
	case strings.Contains(s, "BASIC"):
		return FareBasicEconomy
	case strings.Contains(s, "STANDARD"), strings.Contains(s, "ECONOMY"), strings.Contains(s, "FLEX"):
		return FareStandard
	default:
		return FareUnknown
	}
}

// Segment is one non-stop leg within a canonical flight.
type Segment struct {
	// From is the IATA code of the departure airport
	From string `json:"from"`

	// To is the IATA code of the arrival airport
	To string `json:"to"`

	// DepartAt is the scheduled departure timestamp as reported upstream
	DepartAt string `json:"departAt"`

	// ArriveAt is the scheduled arrival timestamp as reported upstream
	ArriveAt string `json:"arriveAt"`

	// FlightNumber is the marketing flight number, when present
	FlightNumber string `json:"flightNumber,omitempty"`

	// AircraftCode is the IATA equipment code, when present
	AircraftCode string `json:"aircraftCode,omitempty"`

	// LayoverMinutesAfter is the gap between this segment's arrival and the
	// next segment's departure. Set only on non-final segments whose
	// timestamps both parse.
	LayoverMinutesAfter *int `json:"layoverMinutesAfter,omitempty"`
}

// Flight is the normalized, display-ready flight record.
type Flight struct {
	// ID is the upstream offer identifier, unique within one response
	ID string `json:"id"`

	// Price is the total price of the offer
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code (e.g. "USD")
	Currency string `json:"currency"`

	// Airline is the carrier code resolved from the offer
	Airline string `json:"airline"`

	// FlightNumber is the first segment's flight number, when present
	FlightNumber string `json:"flightNumber,omitempty"`

	// Stops is the number of layovers (segment count minus one, min 0)
	Stops int `json:"stops"`

	// StopLocations lists the layover airport codes in segment order.
	// Present only when Stops > 0.
	StopLocations []string `json:"stopLocations,omitempty"`

	// Segments lists the legs of the itinerary in order
	Segments []Segment `json:"segments,omitempty"`

	// Cabin is the cabin of the first fare detail, when present
	Cabin string `json:"cabin,omitempty"`

	// FareType is the classified fare brand, when fare details are present
	FareType FareType `json:"fareType,omitempty"`

	// Duration is the human-readable total trip duration (e.g. "2h 30m")
	Duration string `json:"duration"`

	// Origin is the first segment's departure airport code
	Origin string `json:"origin"`

	// Destination is the last segment's arrival airport code
	Destination string `json:"destination"`

	// DepartureTime is the first segment's departure timestamp
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the last segment's arrival timestamp
	ArrivalTime string `json:"arrivalTime"`
}

// DurationMinutes parses the flight's formatted duration back to total
// minutes. Missing components count as zero.
func (f Flight) DurationMinutes() int {
	return ParseDurationMinutes(f.Duration)
}
