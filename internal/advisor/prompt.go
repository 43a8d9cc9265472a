package advisor

import (
	"fmt"
	"strings"
)

// buildPrompt serializes every retrieved fact into one structured
// natural-language request for the reasoning service.
func buildPrompt(input Input) string {
	var b strings.Builder

	b.WriteString("You are an outing-decision assistant. Based on the information below, decide whether the user should travel to their destination now, on a later day, or not at all, and explain why.\n\n")

	fmt.Fprintf(&b, "Purpose of the outing: %s\n\n", input.Purpose)

	b.WriteString("Current weather at the origin:\n")
	fmt.Fprintf(&b, "- Conditions: %s\n", input.Current.Description)
	fmt.Fprintf(&b, "- Temperature: %.1f°C\n", input.Current.TemperatureC)
	fmt.Fprintf(&b, "- Humidity: %.0f%%\n", input.Current.HumidityPct)
	fmt.Fprintf(&b, "- Wind speed: %.1f m/s\n\n", input.Current.WindSpeedMps)

	b.WriteString("Forecast for the coming days:\n")
	for _, day := range input.Window {
		fmt.Fprintf(&b, "- %s: %s, %.1f°C, humidity %.0f%%, wind %.1f m/s\n",
			day.DateString(), day.Description, day.TemperatureC, day.HumidityPct, day.WindSpeedMps)
	}
	b.WriteString("\n")

	b.WriteString("Travel information (driving, departing now):\n")
	fmt.Fprintf(&b, "- Distance: %s\n", input.Travel.DistanceText)
	fmt.Fprintf(&b, "- Nominal duration: %s\n", input.Travel.DurationText)
	fmt.Fprintf(&b, "- Duration in current traffic: %s\n\n", input.Travel.DurationInTrafficText)

	b.WriteString("Answer each of the following explicitly:\n")
	b.WriteString("1. Should the user go today, or on another day? Explain your reasoning.\n")
	b.WriteString("2. If another day is better, which day in the forecast is best, and why?\n")
	b.WriteString("3. How will current and upcoming weather affect the stated purpose of the outing?\n")
	b.WriteString("4. Given the travel time and traffic conditions, what timing advice do you have?\n")

	if input.AdditionalQuestion != "" {
		fmt.Fprintf(&b, "\nAdditional question: %s\nAnswer this as well, citing the data above specifically.\n", input.AdditionalQuestion)
	}

	b.WriteString("\nKeep the answer concise and clearly separated per question.\n")

	return b.String()
}
