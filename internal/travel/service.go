package travel

import (
	"context"
	"fmt"
	"log/slog"

	"outing-advisor/internal/providers/googlemaps"
	"outing-advisor/internal/types"
)

// Service estimates traffic-aware driving travel between two addresses
type Service interface {
	// GetEstimate requests driving directions departing now and returns
	// the first route's first leg
	GetEstimate(ctx context.Context, originAddress, destinationAddress string) (*types.TravelEstimate, error)
}

// DirectionsProvider defines the interface for directions data providers
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination string) (*googlemaps.DirectionsAPIResponse, error)
}

// travelService implements the Service interface
type travelService struct {
	provider DirectionsProvider
	logger   *slog.Logger
}

// NewTravelService creates a new travel service with the real provider client
func NewTravelService(provider *googlemaps.Client, logger *slog.Logger) Service {
	return NewTravelServiceWithProvider(provider, logger)
}

// NewTravelServiceWithProvider creates a new travel service with a custom provider
// This is useful for testing with mock providers
func NewTravelServiceWithProvider(provider DirectionsProvider, logger *slog.Logger) Service {
	return &travelService{
		provider: provider,
		logger:   logger.With("component", "travel-service"),
	}
}

func (s *travelService) GetEstimate(ctx context.Context, originAddress, destinationAddress string) (*types.TravelEstimate, error) {
	apiResp, err := s.provider.Directions(ctx, originAddress, destinationAddress)
	if err != nil {
		s.logger.Error("failed to get directions",
			"origin", originAddress,
			"destination", destinationAddress,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get directions: %w", err)
	}

	if len(apiResp.Routes) == 0 {
		s.logger.Warn("no routes returned",
			"origin", originAddress,
			"destination", destinationAddress,
			"status", apiResp.Status,
		)
		return nil, &types.RouteNotFoundError{Origin: originAddress, Destination: destinationAddress}
	}

	if len(apiResp.Routes[0].Legs) == 0 {
		return nil, fmt.Errorf("route has no legs from %q to %q", originAddress, destinationAddress)
	}

	leg := apiResp.Routes[0].Legs[0]

	// duration_in_traffic is only present for departure_time requests;
	// fall back to the nominal duration if the provider omitted it
	inTraffic := leg.DurationInTraffic.Text
	if inTraffic == "" {
		inTraffic = leg.Duration.Text
	}

	return &types.TravelEstimate{
		DistanceText:          leg.Distance.Text,
		DurationText:          leg.Duration.Text,
		DurationInTrafficText: inTraffic,
	}, nil
}
