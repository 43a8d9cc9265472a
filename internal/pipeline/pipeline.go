package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"outing-advisor/internal/advisor"
	"outing-advisor/internal/forecast"
	"outing-advisor/internal/location"
	"outing-advisor/internal/timezone"
	"outing-advisor/internal/travel"
	"outing-advisor/internal/types"
	"outing-advisor/internal/weather"
)

// Mode selects the pipeline's failure policy.
type Mode string

const (
	// ModeFailFast aborts remaining stages on the first failure. This is
	// the default: no stage may silently substitute empty data, because a
	// recommendation computed from incomplete inputs is worse than none.
	ModeFailFast Mode = "fail-fast"
	// ModeBestEffort collects whatever succeeded and marks absent fields
	// explicitly on the output. Opt-in via configuration.
	ModeBestEffort Mode = "best-effort"
)

// Options configures one pipeline instance.
type Options struct {
	Mode Mode
	// CallTimeout bounds each external call. Zero means no per-call bound
	// beyond the request context.
	CallTimeout time.Duration
	Window      forecast.WindowOptions
}

// Output bundles every intermediate result plus the recommendation so a
// caller can render each section independently of whether the
// recommendation step succeeded.
type Output struct {
	OriginCoords      *types.Coords          `json:"originCoords,omitempty"`
	DestinationCoords *types.Coords          `json:"destinationCoords,omitempty"`
	Current           *types.WeatherSnapshot `json:"current,omitempty"`
	Window            types.ForecastWindow   `json:"window,omitempty"`
	Travel            *types.TravelEstimate  `json:"travel,omitempty"`
	Recommendation    *types.Recommendation  `json:"recommendation,omitempty"`

	// Missing lists stages whose data is absent from this output. Only
	// populated in best-effort mode; fail-fast never returns partial data.
	Missing []Stage `json:"missing,omitempty"`
	// Failures carries the per-stage errors behind Missing.
	Failures []StageFailure `json:"failures,omitempty"`
	// ReasoningAuthError is set when the reasoning service rejected the
	// caller's credentials. The rest of the output remains valid; the
	// caller should prompt for new credentials.
	ReasoningAuthError string `json:"reasoningAuthError,omitempty"`
}

// Pipeline composes resolution, weather, travel, windowing and
// recommendation into one request/response cycle. All entities it
// produces are request-scoped; nothing persists across runs.
type Pipeline struct {
	locations location.Service
	weather   weather.Service
	travel    travel.Service
	timezones timezone.Service
	engine    advisor.Engine
	opts      Options
	logger    *slog.Logger

	now func() time.Time
}

func New(
	locations location.Service,
	weatherSvc weather.Service,
	travelSvc travel.Service,
	timezones timezone.Service,
	engine advisor.Engine,
	opts Options,
	logger *slog.Logger,
) *Pipeline {
	if opts.Mode == "" {
		opts.Mode = ModeFailFast
	}
	return &Pipeline{
		locations: locations,
		weather:   weatherSvc,
		travel:    travelSvc,
		timezones: timezones,
		engine:    engine,
		opts:      opts,
		logger:    logger.With("component", "pipeline"),
		now:       time.Now,
	}
}

// Run executes one advisory cycle for the given query.
//
// The three independent fetch groups run concurrently: origin resolution
// followed by the two weather calls (which need the origin coordinate),
// destination resolution, and the travel estimate (which uses the raw
// address strings, not resolved coordinates). The recommendation step
// waits for all of them.
func (p *Pipeline) Run(ctx context.Context, query types.OutingQuery) (*Output, error) {
	if p.opts.Mode == ModeBestEffort {
		return p.runBestEffort(ctx, query), nil
	}
	return p.runFailFast(ctx, query)
}

func (p *Pipeline) runFailFast(ctx context.Context, query types.OutingQuery) (*Output, error) {
	var (
		origin   types.Coords
		dest     types.Coords
		current  *types.WeatherSnapshot
		samples  []types.ForecastSample
		estimate *types.TravelEstimate
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		coords, err := p.resolve(gctx, query.OriginAddress)
		if err != nil {
			return &StageError{Stage: StageResolveOrigin, Err: err}
		}
		origin = coords

		// current and forecast only depend on the origin coordinate and
		// run concurrently with each other
		wg, wctx := errgroup.WithContext(gctx)
		wg.Go(func() error {
			snap, err := p.getCurrent(wctx, origin)
			if err != nil {
				return &StageError{Stage: StageCurrentWeather, Err: err}
			}
			current = snap
			return nil
		})
		wg.Go(func() error {
			raw, err := p.getForecast(wctx, origin)
			if err != nil {
				return &StageError{Stage: StageForecast, Err: err}
			}
			samples = raw
			return nil
		})
		return wg.Wait()
	})

	g.Go(func() error {
		coords, err := p.resolve(gctx, query.DestinationAddress)
		if err != nil {
			return &StageError{Stage: StageResolveDestination, Err: err}
		}
		dest = coords
		return nil
	})

	g.Go(func() error {
		est, err := p.getEstimate(gctx, query.OriginAddress, query.DestinationAddress)
		if err != nil {
			return &StageError{Stage: StageTravel, Err: err}
		}
		estimate = est
		return nil
	})

	if err := g.Wait(); err != nil {
		p.logger.Error("pipeline stage failed", "error", err)
		return nil, err
	}

	out := &Output{
		OriginCoords:      &origin,
		DestinationCoords: &dest,
		Current:           current,
		Travel:            estimate,
	}
	out.Window = p.window(samples, origin)

	p.recommend(ctx, query, out)
	return out, nil
}

func (p *Pipeline) runBestEffort(ctx context.Context, query types.OutingQuery) *Output {
	out := &Output{}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		origin   *types.Coords
		samples  []types.ForecastSample
		haveOrig bool
	)

	fail := func(stage Stage, err error) {
		mu.Lock()
		defer mu.Unlock()
		out.Missing = append(out.Missing, stage)
		out.Failures = append(out.Failures, StageFailure{Stage: stage, Error: err.Error()})
		p.logger.Warn("pipeline stage failed", "stage", string(stage), "error", err)
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		coords, err := p.resolve(ctx, query.OriginAddress)
		if err != nil {
			fail(StageResolveOrigin, err)
			// weather depends on the origin coordinate
			fail(StageCurrentWeather, err)
			fail(StageForecast, err)
			return
		}
		origin = &coords
		haveOrig = true

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			snap, err := p.getCurrent(ctx, coords)
			if err != nil {
				fail(StageCurrentWeather, err)
				return
			}
			out.Current = snap
		}()
		go func() {
			defer inner.Done()
			raw, err := p.getForecast(ctx, coords)
			if err != nil {
				fail(StageForecast, err)
				return
			}
			samples = raw
		}()
		inner.Wait()
	}()
	go func() {
		defer wg.Done()
		coords, err := p.resolve(ctx, query.DestinationAddress)
		if err != nil {
			fail(StageResolveDestination, err)
			return
		}
		out.DestinationCoords = &coords
	}()

	go func() {
		defer wg.Done()
		est, err := p.getEstimate(ctx, query.OriginAddress, query.DestinationAddress)
		if err != nil {
			fail(StageTravel, err)
			return
		}
		out.Travel = est
	}()

	wg.Wait()

	out.OriginCoords = origin
	if haveOrig && samples != nil {
		out.Window = p.window(samples, *origin)
	}

	// the recommendation strictly depends on all three fetch groups
	if out.Current == nil || out.Window == nil || out.Travel == nil {
		out.Missing = append(out.Missing, StageRecommendation)
		return out
	}

	p.recommend(ctx, query, out)
	return out
}

// window reduces the raw samples in the origin's local time so the
// reference hour means local noon, not server noon. Timezone lookup
// failures degrade to UTC rather than losing the window.
func (p *Pipeline) window(samples []types.ForecastSample, origin types.Coords) types.ForecastWindow {
	loc, err := p.timezones.GetLocation(origin)
	if err != nil {
		p.logger.Warn("timezone lookup failed, windowing in UTC",
			"latitude", origin.Latitude,
			"longitude", origin.Longitude,
			"error", err,
		)
		loc = time.UTC
	}
	return forecast.Window(samples, p.opts.Window, p.now(), loc)
}

// recommend invokes the configured engine and records its outcome on the
// output. Reasoning failures are absorbed here: the engine already
// returned a usable fallback narrative, and an authentication failure is
// surfaced separately so the caller can prompt for new credentials
// without losing the weather and travel facts.
func (p *Pipeline) recommend(ctx context.Context, query types.OutingQuery, out *Output) {
	rec, err := p.engine.Recommend(ctx, advisor.Input{
		Current:            out.Current,
		Window:             out.Window,
		Travel:             out.Travel,
		Purpose:            query.Purpose,
		AdditionalQuestion: query.AdditionalQuestion,
	})
	out.Recommendation = &rec

	if err == nil {
		return
	}

	var authErr *types.AuthenticationError
	if errors.As(err, &authErr) {
		out.ReasoningAuthError = authErr.Error()
		return
	}
	p.logger.Warn("recommendation degraded to fallback", "error", err)
}

func (p *Pipeline) resolve(ctx context.Context, address string) (types.Coords, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()
	return p.locations.Resolve(ctx, address)
}

func (p *Pipeline) getCurrent(ctx context.Context, coords types.Coords) (*types.WeatherSnapshot, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()
	return p.weather.GetCurrent(ctx, coords)
}

func (p *Pipeline) getForecast(ctx context.Context, coords types.Coords) ([]types.ForecastSample, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()
	return p.weather.GetForecast(ctx, coords)
}

func (p *Pipeline) getEstimate(ctx context.Context, origin, destination string) (*types.TravelEstimate, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()
	return p.travel.GetEstimate(ctx, origin, destination)
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.opts.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.opts.CallTimeout)
}
