package advisor

import (
	"context"

	"outing-advisor/internal/types"
)

// Input bundles all retrieved facts an engine reasons over.
type Input struct {
	Current            *types.WeatherSnapshot
	Window             types.ForecastWindow
	Travel             *types.TravelEstimate
	Purpose            string
	AdditionalQuestion string
}

// Engine produces the recommendation narrative from retrieved facts.
// Implementations are interchangeable: a deterministic rule set or a
// delegated reasoning service.
//
// The returned Recommendation is always usable. The delegated engine
// reports its failures through the error value while still returning a
// fixed fallback narrative; see DelegatedEngine.
type Engine interface {
	Recommend(ctx context.Context, input Input) (types.Recommendation, error)
}
