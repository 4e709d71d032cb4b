// Package amadeus adapts the Amadeus Flight Offers Search API to the
// domain flight model. It owns the raw wire types, the authenticated HTTP
// client, and the normalizer that maps raw offers to canonical flights.
package amadeus

import (
	"math"
	"strconv"

	"github.com/luckylamd/flight-search-engine/internal/domain"
)

// Normalize converts raw flight offers into the canonical search result.
// Offers that cannot be normalized (no itinerary, no segments, or a price
// that does not parse to a finite number) are skipped silently. The
// baseline hourly series is computed over all surviving flights.
func Normalize(offers []FlightOffer) *domain.SearchResult {
	flights := make([]domain.Flight, 0, len(offers))
	for _, offer := range offers {
		if f, ok := normalizeOffer(offer); ok {
			flights = append(flights, f)
		}
	}

	return &domain.SearchResult{
		Flights:      flights,
		HourlyPrices: domain.BucketHourly(flights),
	}
}

// normalizeOffer maps a single raw offer to a canonical flight. Only the
// first itinerary is considered; round-trip offers are not supported.
func normalizeOffer(offer FlightOffer) (domain.Flight, bool) {
	if len(offer.Itineraries) == 0 {
		return domain.Flight{}, false
	}
	itinerary := offer.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return domain.Flight{}, false
	}

	price, ok := parsePrice(offer.Price)
	if !ok {
		return domain.Flight{}, false
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	stops := len(itinerary.Segments) - 1
	if stops < 0 {
		stops = 0
	}

	flight := domain.Flight{
		ID:            offer.ID,
		Price:         price,
		Currency:      offer.Price.Currency,
		Airline:       resolveAirline(offer, first),
		FlightNumber:  first.Number,
		Stops:         stops,
		StopLocations: stopLocations(itinerary.Segments),
		Segments:      normalizeSegments(itinerary.Segments),
		Duration:      domain.FormatDurationToken(itinerary.Duration),
		Origin:        first.Departure.IATACode,
		Destination:   last.Arrival.IATACode,
		DepartureTime: first.Departure.At,
		ArrivalTime:   last.Arrival.At,
	}

	if detail, ok := firstFareDetail(offer); ok {
		flight.Cabin = detail.Cabin
		flight.FareType = domain.NormalizeFareType(detail.BrandedFare)
	}

	return flight, true
}

// parsePrice parses the effective offer price, preferring the grand total.
// ok is false when the value is missing, malformed, or non-finite.
func parsePrice(p OfferPrice) (float64, bool) {
	raw := p.GrandTotal
	if raw == "" {
		raw = p.Total
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// resolveAirline picks the carrier identifier: validating airline code
// first, then the first two characters of the first segment's flight
// number, then "Unknown".
func resolveAirline(offer FlightOffer, first OfferSegment) string {
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		return offer.ValidatingAirlineCodes[0]
	}
	if first.Number != "" {
		if len(first.Number) > 2 {
			return first.Number[:2]
		}
		return first.Number
	}
	return "Unknown"
}

// stopLocations collects the layover airports: the arrival airport of
// every segment except the last, in segment order. Returns nil for
// non-stop itineraries.
func stopLocations(segments []OfferSegment) []string {
	if len(segments) <= 1 {
		return nil
	}

	locations := make([]string, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		if seg.Arrival.IATACode != "" {
			locations = append(locations, seg.Arrival.IATACode)
		}
	}
	if len(locations) == 0 {
		return nil
	}
	return locations
}

// normalizeSegments maps raw segments to canonical segments, computing the
// layover gap after each non-final segment whose timestamps parse.
func normalizeSegments(segments []OfferSegment) []domain.Segment {
	result := make([]domain.Segment, len(segments))
	for i, seg := range segments {
		s := domain.Segment{
			From:         seg.Departure.IATACode,
			To:           seg.Arrival.IATACode,
			DepartAt:     seg.Departure.At,
			ArriveAt:     seg.Arrival.At,
			FlightNumber: seg.Number,
		}
		if seg.Aircraft != nil {
			s.AircraftCode = seg.Aircraft.Code
		}
		if i+1 < len(segments) {
			if minutes, ok := layoverMinutes(seg.Arrival.At, segments[i+1].Departure.At); ok {
				s.LayoverMinutesAfter = &minutes
			}
		}
		result[i] = s
	}
	return result
}

// layoverMinutes is the rounded minute gap between an arrival and the next
// departure. ok is false when either timestamp fails to parse.
func layoverMinutes(arriveAt, nextDepartAt string) (int, bool) {
	a, err := domain.ParseTimestamp(arriveAt)
	if err != nil {
		return 0, false
	}
	b, err := domain.ParseTimestamp(nextDepartAt)
	if err != nil {
		return 0, false
	}
	return int(math.Round(b.Sub(a).Minutes())), true
}

// firstFareDetail returns the first traveler pricing's first fare detail.
func firstFareDetail(offer FlightOffer) (FareDetail, bool) {
	if len(offer.TravelerPricings) == 0 {
		return FareDetail{}, false
	}
	details := offer.TravelerPricings[0].FareDetailsBySegment
	if len(details) == 0 {
		return FareDetail{}, false
	}
	return details[0], true
}
