package amadeus

// Raw wire types for the Amadeus Flight Offers Search API. Only the fields
// the normalizer reads are declared; everything else in the upstream
// payload is ignored by the decoder.

// FlightOffer is one priced itinerary option returned by the upstream.
type FlightOffer struct {
	ID                     string            `json:"id"`
	Price                  OfferPrice        `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats,omitempty"`
	Itineraries            []Itinerary       `json:"itineraries"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`
}

// OfferPrice carries the offer totals as decimal strings.
type OfferPrice struct {
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal,omitempty"`
	Currency   string `json:"currency"`
}

// Itinerary is an ordered sequence of segments with a total duration token.
type Itinerary struct {
	Duration string         `json:"duration"`
	Segments []OfferSegment `json:"segments"`
}

// OfferSegment is one non-stop leg of a raw itinerary.
type OfferSegment struct {
	Number    string       `json:"number,omitempty"`
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`
	Aircraft  *Aircraft    `json:"aircraft,omitempty"`
}

// SegmentPoint is a departure or arrival of a raw segment.
type SegmentPoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// Aircraft carries the IATA equipment code.
type Aircraft struct {
	Code string `json:"code,omitempty"`
}

// TravelerPricing carries per-traveler fare metadata.
type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment,omitempty"`
}

// FareDetail carries cabin and fare-brand info for one segment.
type FareDetail struct {
	Cabin       string `json:"cabin,omitempty"`
	BrandedFare string `json:"brandedFare,omitempty"`
}

// searchResponse is the envelope of the flight-offers search endpoint.
type searchResponse struct {
	Data []FlightOffer `json:"data"`
}

// tokenResponse is the OAuth2 client-credentials token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// errorResponse is the upstream error envelope.
type errorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// message extracts the most descriptive error text available.
func (e *errorResponse) message() string {
	if len(e.Errors) > 0 {
		if e.Errors[0].Detail != "" {
			return e.Errors[0].Detail
		}
		return e.Errors[0].Title
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return e.Error
}
