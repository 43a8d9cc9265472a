package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"outing-advisor/internal/types"
)

const testAPIKey = "test-owm-key-1234"

func TestClient_GetCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != currentPath {
			t.Errorf("path = %s, want %s", r.URL.Path, currentPath)
		}
		q := r.URL.Query()
		if q.Get("units") != "metric" {
			t.Errorf("units = %q, want metric", q.Get("units"))
		}
		if q.Get("lang") != "en" {
			t.Errorf("lang = %q, want en", q.Get("lang"))
		}
		if q.Get("appid") != testAPIKey {
			t.Errorf("appid = %q", q.Get("appid"))
		}
		if q.Get("lat") == "" || q.Get("lon") == "" {
			t.Error("lat/lon missing from query")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
			"main": {"temp": 22.4, "feels_like": 21.9, "humidity": 48},
			"wind": {"speed": 3.1, "deg": 180},
			"name": "Chiyoda"
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testAPIKey, "metric", "en", server.URL, 5*time.Second)
	resp, err := client.GetCurrent(context.Background(), 35.681236, 139.767125)
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error: %v", err)
	}

	if len(resp.Weather) != 1 || resp.Weather[0].ID != 800 {
		t.Errorf("weather = %+v", resp.Weather)
	}
	if resp.Main.Temp != 22.4 {
		t.Errorf("temp = %v, want 22.4", resp.Main.Temp)
	}
	if resp.Wind.Speed != 3.1 {
		t.Errorf("wind speed = %v, want 3.1", resp.Wind.Speed)
	}
}

func TestClient_GetForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != forecastPath {
			t.Errorf("path = %s, want %s", r.URL.Path, forecastPath)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cnt": 2,
			"list": [
				{
					"dt": 1749556800,
					"main": {"temp": 24.0, "humidity": 50},
					"weather": [{"id": 800, "description": "clear sky"}],
					"wind": {"speed": 2.5}
				},
				{
					"dt": 1749567600,
					"main": {"temp": 21.5, "humidity": 62},
					"weather": [{"id": 500, "description": "light rain"}],
					"wind": {"speed": 4.0}
				}
			],
			"city": {"name": "Chiyoda", "timezone": 32400}
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testAPIKey, "metric", "en", server.URL, 5*time.Second)
	resp, err := client.GetForecast(context.Background(), 35.681236, 139.767125)
	if err != nil {
		t.Fatalf("GetForecast() unexpected error: %v", err)
	}

	if len(resp.List) != 2 {
		t.Fatalf("list = %d entries, want 2", len(resp.List))
	}
	if resp.List[0].Dt != 1749556800 {
		t.Errorf("dt = %d", resp.List[0].Dt)
	}
	if resp.List[1].Weather[0].ID != 500 {
		t.Errorf("second entry weather = %+v", resp.List[1].Weather)
	}
}

func TestClient_Get_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key."}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testAPIKey, "metric", "en", server.URL, 5*time.Second)
	_, err := client.GetCurrent(context.Background(), 35.68, 139.76)
	if err == nil {
		t.Fatal("GetCurrent() expected error")
	}

	var upstream *types.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %T, want *types.UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", upstream.StatusCode)
	}
	if strings.Contains(err.Error(), testAPIKey) {
		t.Errorf("error text leaks the api key: %v", err)
	}
}

func TestClient_Get_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse all connections

	client := NewClientWithBaseURL(testAPIKey, "metric", "en", server.URL, 2*time.Second)
	_, err := client.GetForecast(context.Background(), 35.68, 139.76)
	if err == nil {
		t.Fatal("GetForecast() expected error")
	}

	var upstream *types.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %T, want *types.UpstreamError", err)
	}
	// the transport error must carry the path but not the full request
	// URL, whose query string holds the appid
	if strings.Contains(err.Error(), testAPIKey) {
		t.Errorf("error text leaks the api key: %v", err)
	}
	if strings.Contains(err.Error(), server.URL) {
		t.Errorf("error text carries the request URL: %v", err)
	}
	if !strings.Contains(err.Error(), forecastPath) {
		t.Errorf("error text lost the request path: %v", err)
	}
}
