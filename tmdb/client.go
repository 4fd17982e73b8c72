package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// ImageBaseURL resolves relative poster/profile paths at the w500 size.
	ImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new TMDB client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// get performs a GET request against the API. The API key is injected as
// the first query parameter and never logged; callers pass only their own
// parameters. Any 2xx status returns the raw body; non-2xx statuses map to
// *APIError, network failures to a wrapped request error. Exactly one
// attempt per call, no retries.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("Making TMDB API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, api_key included;
		// keep only the transport cause and name the endpoint instead
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("request failed: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromBody(resp.StatusCode, body)
	}

	return body, nil
}

// GetListing fetches one listing endpoint (e.g. /movie/popular) with the
// given query parameters and returns the decoded result rows.
func (c *Client) GetListing(ctx context.Context, endpoint string, params url.Values) ([]Record, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	results, err := DecodeListing(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("count", len(results)).
		Msg("Retrieved listing from TMDB")

	return results, nil
}

// ImageURL resolves a relative image path against the image base URL.
// Returns the empty string for a nil path.
func ImageURL(path *string) string {
	if path == nil {
		return ""
	}
	return ImageBaseURL + *path
}
