package openweather

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

// API Docs: https://openweathermap.org/current and https://openweathermap.org/forecast5
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=35.68&lon=139.76&units=metric&lang=en
const (
	defaultBaseURL = "https://api.openweathermap.org"

	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"
)

const providerName = "openweathermap"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	lang       string
}

func NewClient(apiKey, units, lang string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		units:      units,
		lang:       lang,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, units, lang, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, units, lang, timeout)
	c.baseURL = baseURL
	return c
}

// GetCurrent fetches current conditions at the given coordinate.
func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	var apiResp CurrentAPIResponse
	if err := c.get(ctx, currentPath, latitude, longitude, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetForecast fetches the 5-day/3-hour forecast at the given coordinate.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(ctx, forecastPath, latitude, longitude, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// get performs a GET against the given API path. The appid parameter is
// attached here and must never appear in returned errors or logs.
func (c *Client) get(ctx context.Context, path string, latitude, longitude float64, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", c.units)
	q.Set("lang", c.lang)
	q.Set("appid", c.apiKey)
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
// URL. url.Error prints the full URL, which carries the appid query
// parameter and must never reach error text or logs.
func redactTransportError(err error, path string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %w", urlErr.Op, path, urlErr.Err)
	}
	return err
}
