package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckylamd/flight-search-engine/internal/domain"
)

func testCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "NYC",
		Destination:   "LON",
		DepartureDate: "2026-03-01",
		Adults:        1,
	}
}

// newTestServer runs a fake Amadeus API serving the token endpoint and the
// given search handler.
func newTestServer(t *testing.T, search http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "test-token", ExpiresIn: 1799})
	})
	mux.HandleFunc(searchPath, search)
	return httptest.NewServer(mux)
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		APIKey:    "key",
		APISecret: "secret",
	}, zerolog.Nop())
}

func TestClient_Search(t *testing.T) {
	var gotQuery map[string]string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		gotQuery = map[string]string{
			"originLocationCode":      q.Get("originLocationCode"),
			"destinationLocationCode": q.Get("destinationLocationCode"),
			"departureDate":           q.Get("departureDate"),
			"adults":                  q.Get("adults"),
			"max":                     q.Get("max"),
		}
		json.NewEncoder(w).Encode(searchResponse{Data: []FlightOffer{
			{
				ID:                     "1",
				Price:                  OfferPrice{Total: "523.40", Currency: "USD"},
				ValidatingAirlineCodes: []string{"BA"},
				Itineraries: []Itinerary{{
					Duration: "PT7H",
					Segments: []OfferSegment{{
						Number:    "BA178",
						Departure: SegmentPoint{IATACode: "JFK", At: "2026-03-01T08:00:00Z"},
						Arrival:   SegmentPoint{IATACode: "LHR", At: "2026-03-01T15:00:00Z"},
					}},
				}},
			},
		}})
	})
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), testCriteria())

	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "BA", result.Flights[0].Airline)
	assert.Len(t, result.HourlyPrices, domain.HourBuckets)

	assert.Equal(t, map[string]string{
		"originLocationCode":      "NYC",
		"destinationLocationCode": "LON",
		"departureDate":           "2026-03-01",
		"adults":                  "1",
		"max":                     "50",
	}, gotQuery)
}

func TestClient_Search_ReusesToken(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "test-token", ExpiresIn: 1799})
	})
	mux.HandleFunc(searchPath, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.Search(context.Background(), testCriteria())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, tokenCalls)
}

func TestClient_Search_UpstreamErrorIsOpaque(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{
				"status": 400,
				"title":  "INVALID DATE",
				"detail": "Date/Time is in the past",
			}},
		})
	})
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), testCriteria())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.ErrorContains(t, err, "Date/Time is in the past")
}

func TestClient_Search_TokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_client",
			"error_description": "Client credentials are invalid",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), testCriteria())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.ErrorContains(t, err, "Client credentials are invalid")
}

func TestClient_Search_ConnectionRefused(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // immediately, so the port refuses connections

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), testCriteria())

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClient_MaxResultsConfigurable(t *testing.T) {
	var gotMax string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("max")
		json.NewEncoder(w).Encode(searchResponse{})
	})
	defer server.Close()

	client := NewClient(Config{
		BaseURL:    server.URL,
		APIKey:     "key",
		APISecret:  "secret",
		MaxResults: 20,
	}, zerolog.Nop())

	_, err := client.Search(context.Background(), testCriteria())
	require.NoError(t, err)
	assert.Equal(t, "20", gotMax)
}
