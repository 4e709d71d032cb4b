package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/luckylamd/flight-search-engine/internal/domain"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// API paths relative to the base URL.
const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"
)

// DefaultMaxResults is the upstream result cap applied when none is
// configured.
const DefaultMaxResults = 50

// tokenExpirySlack is subtracted from the reported token lifetime so a
// token is refreshed before it can expire mid-request.
const tokenExpirySlack = 30 * time.Second

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://test.api.amadeus.com"
	BaseURL string

	// APIKey and APISecret are the OAuth2 client credentials
	APIKey    string
	APISecret string

	// MaxResults caps the number of offers requested upstream
	MaxResults int

	// HTTPClient overrides the default http.Client (used in tests)
	HTTPClient *http.Client
}

// Client is the authenticated Amadeus Flight Offers Search client. It
// implements domain.FlightProvider: one search call per request, no
// retries, no caching of results. Only the OAuth2 token is reused across
// calls, for its reported lifetime.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	maxResults int
	httpClient *http.Client
	log        zerolog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a new Amadeus client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		maxResults: maxResults,
		httpClient: httpClient,
		log:        log.With().Str("provider", ProviderName).Logger(),
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Search queries the flight-offers endpoint for the given criteria and
// returns the normalized result. Upstream failures are wrapped in
// domain.ErrProviderUnavailable with the upstream message carried opaquely.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", criteria.Origin)
	query.Set("destinationLocationCode", criteria.Destination)
	query.Set("departureDate", criteria.DepartureDate)
	query.Set("adults", strconv.Itoa(criteria.Adults))
	query.Set("max", strconv.Itoa(c.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build search request: %v", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, decodeUpstreamError(resp))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrProviderUnavailable, err)
	}

	result := Normalize(payload.Data)
	c.log.Debug().
		Int("offers", len(payload.Data)).
		Int("flights", len(result.Flights)).
		Msg("Normalized flight offers")

	return result, nil
}

// token returns a valid access token, fetching a new one when the cached
// token is missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build token request: %v", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, decodeUpstreamError(resp))
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", domain.ErrProviderUnavailable, err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", domain.ErrProviderUnavailable)
	}

	c.accessToken = payload.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpirySlack)

	c.log.Debug().Int("expires_in", payload.ExpiresIn).Msg("Fetched access token")
	return c.accessToken, nil
}

// decodeUpstreamError extracts a descriptive message from an upstream
// error body, falling back to the HTTP status.
func decodeUpstreamError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if msg := payload.message(); msg != "" {
			return msg
		}
	}
	return resp.Status
}

// Ensure Client implements the provider port at compile time.
var _ domain.FlightProvider = (*Client)(nil)
