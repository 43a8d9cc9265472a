package advisor

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"outing-advisor/internal/types"
)

var defaultKeywords = []string{"clear", "sun", "few clouds"}

func sampleInput(code types.ConditionCode, window types.ForecastWindow) Input {
	return Input{
		Current: &types.WeatherSnapshot{
			Description:   "test conditions",
			ConditionCode: code,
			TemperatureC:  19.0,
			HumidityPct:   60,
			WindSpeedMps:  3.0,
		},
		Window: window,
		Travel: &types.TravelEstimate{
			DistanceText:          "31.1 km",
			DurationText:          "42 mins",
			DurationInTrafficText: "55 mins",
		},
		Purpose: "sightseeing",
	}
}

func day(date string, description string) types.ForecastDay {
	d, _ := time.Parse("2006-01-02", date)
	return types.ForecastDay{Date: d, Description: description, TemperatureC: 20, HumidityPct: 50, WindSpeedMps: 2}
}

func TestRuleBasedEngine_TodaySuitability(t *testing.T) {
	tests := []struct {
		name         string
		code         types.ConditionCode
		wantSuitable bool
	}{
		{"clear sky is suitable", 800, true},
		{"scattered clouds is suitable", 802, true},
		{"light rain requires caution", 500, false},
		{"thunderstorm requires caution", 211, false},
		{"just below threshold requires caution", 799, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewRuleBasedEngine(800, defaultKeywords, slog.Default())
			window := types.ForecastWindow{day("2025-06-11", "clear sky")}

			rec, err := engine.Recommend(context.Background(), sampleInput(tt.code, window))
			if err != nil {
				t.Fatalf("Recommend() unexpected error: %v", err)
			}

			suitable := strings.Contains(rec.NarrativeText, "looks suitable")
			caution := strings.Contains(rec.NarrativeText, "calls for caution")
			if tt.wantSuitable && !suitable {
				t.Errorf("narrative does not mark today suitable:\n%s", rec.NarrativeText)
			}
			if !tt.wantSuitable && !caution {
				t.Errorf("narrative does not mark today as requiring caution:\n%s", rec.NarrativeText)
			}
		})
	}
}

func TestRuleBasedEngine_BestDaySelection(t *testing.T) {
	tests := []struct {
		name     string
		window   types.ForecastWindow
		wantDate string
	}{
		{
			name: "first keyword match wins",
			window: types.ForecastWindow{
				day("2025-06-11", "heavy rain"),
				day("2025-06-12", "clear sky"),
				day("2025-06-13", "sunny"),
			},
			wantDate: "2025-06-12",
		},
		{
			name: "no match falls back to first entry",
			window: types.ForecastWindow{
				day("2025-06-11", "heavy rain"),
				day("2025-06-12", "thunderstorm"),
				day("2025-06-13", "snow"),
			},
			wantDate: "2025-06-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewRuleBasedEngine(800, defaultKeywords, slog.Default())

			rec, err := engine.Recommend(context.Background(), sampleInput(800, tt.window))
			if err != nil {
				t.Fatalf("Recommend() unexpected error: %v", err)
			}
			if !strings.Contains(rec.NarrativeText, tt.wantDate) {
				t.Errorf("narrative does not name %s as best day:\n%s", tt.wantDate, rec.NarrativeText)
			}
		})
	}
}

func TestRuleBasedEngine_NarrativeParts(t *testing.T) {
	engine := NewRuleBasedEngine(800, defaultKeywords, slog.Default())
	input := sampleInput(800, types.ForecastWindow{day("2025-06-11", "clear sky")})
	input.AdditionalQuestion = "Is an umbrella worth bringing?"

	rec, err := engine.Recommend(context.Background(), input)
	if err != nil {
		t.Fatalf("Recommend() unexpected error: %v", err)
	}

	for _, part := range []string{"1.", "2.", "3.", "4."} {
		if !strings.Contains(rec.NarrativeText, part) {
			t.Errorf("narrative missing part %q:\n%s", part, rec.NarrativeText)
		}
	}
	// the additional question is echoed verbatim
	if !strings.Contains(rec.NarrativeText, "Is an umbrella worth bringing?") {
		t.Errorf("narrative does not echo the additional question:\n%s", rec.NarrativeText)
	}
	// timing advice reflects the traffic-aware duration
	if !strings.Contains(rec.NarrativeText, "55 mins") {
		t.Errorf("narrative does not use the traffic-aware duration:\n%s", rec.NarrativeText)
	}
}

func TestRuleBasedEngine_EmptyWindow(t *testing.T) {
	engine := NewRuleBasedEngine(800, defaultKeywords, slog.Default())

	rec, err := engine.Recommend(context.Background(), sampleInput(800, nil))
	if err != nil {
		t.Fatalf("Recommend() unexpected error: %v", err)
	}
	if !strings.Contains(rec.NarrativeText, "No forecast days") {
		t.Errorf("narrative does not handle the empty window:\n%s", rec.NarrativeText)
	}
}
