package location

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"outing-advisor/internal/providers/googlemaps"
	"outing-advisor/internal/types"
)

// Mock provider for testing

type mockGeocodeProvider struct {
	response *googlemaps.GeocodeAPIResponse
	err      error
	calls    int
}

func (m *mockGeocodeProvider) Geocode(_ context.Context, _ string) (*googlemaps.GeocodeAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

func geocodeResponse(lat, lng float64) *googlemaps.GeocodeAPIResponse {
	resp := &googlemaps.GeocodeAPIResponse{Status: "OK"}
	resp.Results = make([]struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	}, 1)
	resp.Results[0].Geometry.Location.Lat = lat
	resp.Results[0].Geometry.Location.Lng = lng
	return resp
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		response    *googlemaps.GeocodeAPIResponse
		providerErr error
		want        types.Coords
		wantErr     bool
		errContains string
		notFound    bool
	}{
		{
			name:     "first match wins",
			address:  "Tokyo Station",
			response: geocodeResponse(35.681236, 139.767125),
			want:     types.NewCoords(35.681236, 139.767125),
		},
		{
			name:        "zero results is a not-found error",
			address:     "nowhere at all",
			response:    &googlemaps.GeocodeAPIResponse{Status: "ZERO_RESULTS"},
			wantErr:     true,
			notFound:    true,
			errContains: "not found",
		},
		{
			name:        "provider error is wrapped",
			address:     "Tokyo Station",
			providerErr: errors.New("connection refused"),
			wantErr:     true,
			errContains: "failed to geocode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{response: tt.response, err: tt.providerErr}
			svc := NewLocationServiceWithProvider(provider, slog.Default())

			got, err := svc.Resolve(context.Background(), tt.address)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Resolve() expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errContains)
				}
				if tt.notFound {
					var notFound *types.NotFoundError
					if !errors.As(err, &notFound) {
						t.Errorf("error = %T, want *types.NotFoundError", err)
					} else if notFound.Address != tt.address {
						t.Errorf("NotFoundError.Address = %q, want %q", notFound.Address, tt.address)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocationService_Resolve_Deterministic(t *testing.T) {
	provider := &mockGeocodeProvider{response: geocodeResponse(35.681236, 139.767125)}
	svc := NewLocationServiceWithProvider(provider, slog.Default())

	first, err := svc.Resolve(context.Background(), "Tokyo Station")
	if err != nil {
		t.Fatalf("first Resolve() error: %v", err)
	}
	second, err := svc.Resolve(context.Background(), "Tokyo Station")
	if err != nil {
		t.Fatalf("second Resolve() error: %v", err)
	}

	if first != second {
		t.Errorf("Resolve() not deterministic: %+v then %+v", first, second)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (no caching)", provider.calls)
	}
}
