package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"outing-advisor/internal/types"
)

// RuleBasedEngine classifies suitability deterministically, with no
// external calls.
//
// Today is considered suitable when the current condition code is at or
// above FavorableCodeMin. The default of 800 follows the provider's code
// groups: 800 is clear sky and 80x are cloud variants, while codes below
// 800 are storm, precipitation and atmospheric-obstruction categories.
type RuleBasedEngine struct {
	favorableCodeMin  types.ConditionCode
	favorableKeywords []string
	logger            *slog.Logger
}

// NewRuleBasedEngine creates a rule-based engine. Keywords are matched
// case-insensitively against forecast-day descriptions.
func NewRuleBasedEngine(favorableCodeMin types.ConditionCode, favorableKeywords []string, logger *slog.Logger) *RuleBasedEngine {
	lowered := make([]string, len(favorableKeywords))
	for i, kw := range favorableKeywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &RuleBasedEngine{
		favorableCodeMin:  favorableCodeMin,
		favorableKeywords: lowered,
		logger:            logger.With("component", "rule-based-engine"),
	}
}

// Recommend assembles a four-part narrative: today's suitability, the best
// alternative day, the expected weather impact on the stated purpose, and
// timing advice from the traffic-aware duration. The caller's additional
// question is echoed verbatim at the end.
func (e *RuleBasedEngine) Recommend(_ context.Context, input Input) (types.Recommendation, error) {
	var b strings.Builder

	todaySuitable := input.Current.ConditionCode >= e.favorableCodeMin

	b.WriteString("1. Should you go today?\n")
	if todaySuitable {
		fmt.Fprintf(&b, "Today looks suitable for going out: conditions are %q (%s) at %.1f°C.\n",
			input.Current.Description, input.Current.ConditionCode.Group(), input.Current.TemperatureC)
	} else {
		fmt.Fprintf(&b, "Today calls for caution: conditions are %q (%s), so consider another day.\n",
			input.Current.Description, input.Current.ConditionCode.Group())
	}

	b.WriteString("\n2. Best alternative day:\n")
	if len(input.Window) == 0 {
		b.WriteString("No forecast days are available to compare.\n")
	} else {
		best, matched := e.selectBestDay(input.Window)
		if matched {
			fmt.Fprintf(&b, "%s looks best: %s, %.1f°C, humidity %.0f%%, wind %.1f m/s.\n",
				best.DateString(), best.Description, best.TemperatureC, best.HumidityPct, best.WindSpeedMps)
		} else {
			fmt.Fprintf(&b, "No forecast day clearly matches favorable weather; the nearest option is %s (%s, %.1f°C).\n",
				best.DateString(), best.Description, best.TemperatureC)
		}
	}

	b.WriteString("\n3. Expected weather impact on your plans:\n")
	fmt.Fprintf(&b, "For %q, expect %s conditions with humidity %.0f%% and wind %.1f m/s; plan accordingly.\n",
		input.Purpose, input.Current.ConditionCode.Group(), input.Current.HumidityPct, input.Current.WindSpeedMps)

	b.WriteString("\n4. Timing advice:\n")
	if input.Travel.DurationInTrafficText != input.Travel.DurationText {
		fmt.Fprintf(&b, "The trip covers %s and currently takes %s in traffic (vs. %s nominal), so leaving outside peak hours will save time.\n",
			input.Travel.DistanceText, input.Travel.DurationInTrafficText, input.Travel.DurationText)
	} else {
		fmt.Fprintf(&b, "The trip covers %s and takes about %s; traffic is not adding delay right now.\n",
			input.Travel.DistanceText, input.Travel.DurationText)
	}

	if input.AdditionalQuestion != "" {
		fmt.Fprintf(&b, "\nYour additional question: %s\nThe data above is the best basis we have for answering it.\n",
			input.AdditionalQuestion)
	}

	return types.Recommendation{NarrativeText: b.String()}, nil
}

// selectBestDay returns the first window entry whose description contains
// a favorable keyword. When nothing matches it falls back to the first
// entry in window order; that fallback is deliberate, long-standing
// behavior, not an error.
func (e *RuleBasedEngine) selectBestDay(window types.ForecastWindow) (types.ForecastDay, bool) {
	for _, day := range window {
		desc := strings.ToLower(day.Description)
		for _, kw := range e.favorableKeywords {
			if strings.Contains(desc, kw) {
				return day, true
			}
		}
	}
	return window[0], false
}
