package location

import (
	"context"
	"fmt"
	"log/slog"

	"outing-advisor/internal/providers/googlemaps"
	"outing-advisor/internal/types"
)

// Service resolves free-form addresses to coordinates
type Service interface {
	// Resolve looks up the first geocoding match for the given address
	Resolve(ctx context.Context, address string) (types.Coords, error)
}

// GeocodeProvider defines the interface for geocoding data providers
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (*googlemaps.GeocodeAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service with the real provider client
func NewLocationService(provider *googlemaps.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(provider, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve geocodes one address and returns the first match's coordinate.
// A stable provider returns the same coordinate for the same address.
func (s *locationService) Resolve(ctx context.Context, address string) (types.Coords, error) {
	apiResp, err := s.geocodeProvider.Geocode(ctx, address)
	if err != nil {
		s.logger.Error("failed to geocode address", "address", address, "error", err)
		return types.Coords{}, fmt.Errorf("failed to geocode %q: %w", address, err)
	}

	if len(apiResp.Results) == 0 {
		s.logger.Warn("no geocoding results", "address", address, "status", apiResp.Status)
		return types.Coords{}, &types.NotFoundError{Address: address}
	}

	loc := apiResp.Results[0].Geometry.Location

	s.logger.Debug("resolved address",
		"address", address,
		"latitude", loc.Lat,
		"longitude", loc.Lng,
	)

	return types.NewCoords(loc.Lat, loc.Lng), nil
}
