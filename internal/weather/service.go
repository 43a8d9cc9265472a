package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"outing-advisor/internal/providers/openweather"
	"outing-advisor/internal/types"
)

// Service fetches current conditions and raw forecast samples for a
// coordinate
type Service interface {
	// GetCurrent fetches a snapshot of current conditions
	GetCurrent(ctx context.Context, coords types.Coords) (*types.WeatherSnapshot, error)
	// GetForecast fetches the raw 3-hour-resolution forecast samples in
	// chronological order
	GetForecast(ctx context.Context, coords types.Coords) ([]types.ForecastSample, error)
}

// ConditionsProvider defines the interface for weather data providers
type ConditionsProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openweather.CurrentAPIResponse, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweather.ForecastAPIResponse, error)
}

// weatherService implements the Service interface
type weatherService struct {
	provider ConditionsProvider
	logger   *slog.Logger
}

// NewWeatherService creates a new weather service with the real provider client
func NewWeatherService(provider *openweather.Client, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(provider, logger)
}

// NewWeatherServiceWithProvider creates a new weather service with a custom provider
// This is useful for testing with mock providers
func NewWeatherServiceWithProvider(provider ConditionsProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetCurrent(ctx context.Context, coords types.Coords) (*types.WeatherSnapshot, error) {
	apiResp, err := s.provider.GetCurrent(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get current weather",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return translateCurrent(apiResp)
}

func (s *weatherService) GetForecast(ctx context.Context, coords types.Coords) ([]types.ForecastSample, error) {
	apiResp, err := s.provider.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get forecast",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return translateForecast(apiResp)
}

// translateCurrent converts a current-weather response to the domain snapshot
func translateCurrent(resp *openweather.CurrentAPIResponse) (*types.WeatherSnapshot, error) {
	if resp == nil {
		return nil, fmt.Errorf("current weather response is nil")
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("current weather response has no weather entry")
	}

	return &types.WeatherSnapshot{
		Description:   resp.Weather[0].Description,
		ConditionCode: types.ConditionCode(resp.Weather[0].ID),
		TemperatureC:  resp.Main.Temp,
		HumidityPct:   float64(resp.Main.Humidity),
		WindSpeedMps:  resp.Wind.Speed,
	}, nil
}

// translateForecast converts a forecast response to domain samples,
// preserving the provider's chronological order
func translateForecast(resp *openweather.ForecastAPIResponse) ([]types.ForecastSample, error) {
	if resp == nil {
		return nil, fmt.Errorf("forecast response is nil")
	}

	samples := make([]types.ForecastSample, 0, len(resp.List))
	for i, item := range resp.List {
		if len(item.Weather) == 0 {
			return nil, fmt.Errorf("forecast entry %d has no weather entry", i)
		}
		samples = append(samples, types.ForecastSample{
			Timestamp:     time.Unix(item.Dt, 0).UTC(),
			Description:   item.Weather[0].Description,
			ConditionCode: types.ConditionCode(item.Weather[0].ID),
			TemperatureC:  item.Main.Temp,
			HumidityPct:   float64(item.Main.Humidity),
			WindSpeedMps:  item.Wind.Speed,
		})
	}
	return samples, nil
}
