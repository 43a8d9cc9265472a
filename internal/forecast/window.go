package forecast

import (
	"time"

	"outing-advisor/internal/types"
)

// WindowOptions controls how raw samples are reduced to a decision window.
type WindowOptions struct {
	// ReferenceHour is the local hour of day each kept sample must decode to
	ReferenceHour int
	// MaxDays bounds the window length
	MaxDays int
	// ExcludeToday drops samples dated today, so the window always starts
	// tomorrow. When false, today is kept if it has a reference-hour sample.
	ExcludeToday bool
}

// Window reduces chronologically-ordered forecast samples to at most
// MaxDays entries, one per calendar date, each sampled at the reference
// hour in the given location's local time. Output preserves input order;
// dates are strictly increasing. The transformation is pure and carries
// no state between calls.
func Window(samples []types.ForecastSample, opts WindowOptions, now time.Time, loc *time.Location) types.ForecastWindow {
	if loc == nil {
		loc = time.UTC
	}

	today := dateOf(now.In(loc))

	window := make(types.ForecastWindow, 0, opts.MaxDays)
	var lastDate time.Time

	for _, sample := range samples {
		if len(window) >= opts.MaxDays {
			break
		}

		local := sample.Timestamp.In(loc)
		if local.Hour() != opts.ReferenceHour {
			continue
		}

		date := dateOf(local)
		if opts.ExcludeToday && !date.After(today) {
			continue
		}
		// one entry per date, ascending
		if !lastDate.IsZero() && !date.After(lastDate) {
			continue
		}

		window = append(window, types.ForecastDay{
			Date:          date,
			Description:   sample.Description,
			ConditionCode: sample.ConditionCode,
			TemperatureC:  sample.TemperatureC,
			HumidityPct:   sample.HumidityPct,
			WindSpeedMps:  sample.WindSpeedMps,
		})
		lastDate = date
	}

	return window
}

// dateOf truncates a local time to its calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
