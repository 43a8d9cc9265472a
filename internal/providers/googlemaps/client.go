package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"outing-advisor/internal/types"
)

// API Docs: https://developers.google.com/maps/documentation/geocoding/requests-geocoding
// and https://developers.google.com/maps/documentation/directions/get-directions
const (
	defaultBaseURL = "https://maps.googleapis.com"

	geocodePath    = "/maps/api/geocode/json"
	directionsPath = "/maps/api/directions/json"
)

const providerName = "google maps"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

// Geocode looks up the given address and returns the raw API response.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeAPIResponse, error) {
	q := url.Values{}
	q.Set("address", address)

	var apiResp GeocodeAPIResponse
	if err := c.get(ctx, geocodePath, q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// Directions requests driving directions with departure time set to now,
// which makes the returned durations traffic-aware.
func (c *Client) Directions(ctx context.Context, origin, destination string) (*DirectionsAPIResponse, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", "driving")
	q.Set("departure_time", "now")

	var apiResp DirectionsAPIResponse
	if err := c.get(ctx, directionsPath, q, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// get performs a GET against the given API path. The API key is appended
// to the query here and must never appear in returned errors.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &types.UpstreamError{Provider: providerName, Err: redactTransportError(err, path)}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &types.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.UpstreamError{
			Provider: providerName,
			Err:      fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

// redactTransportError rebuilds a transport failure without the request
// URL. url.Error prints the full URL, which carries the key query
// parameter and must never reach error text or logs.
func redactTransportError(err error, path string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %w", urlErr.Op, path, urlErr.Err)
	}
	return err
}
