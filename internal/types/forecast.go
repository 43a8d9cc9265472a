package types

import "time"

// ForecastSample is one raw 3-hour-resolution forecast reading. The
// provider supplies roughly 40 samples spanning 5 days, in chronological
// order.
type ForecastSample struct {
	Timestamp     time.Time     `json:"timestamp"`
	Description   string        `json:"description"`
	ConditionCode ConditionCode `json:"conditionCode"`
	TemperatureC  float64       `json:"temperatureC"`
	HumidityPct   float64       `json:"humidityPct"`
	WindSpeedMps  float64       `json:"windSpeedMps"`
}

// ForecastDay is one decision-window entry, sampled at a fixed reference
// hour of its date.
type ForecastDay struct {
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	ConditionCode ConditionCode `json:"conditionCode"`
	TemperatureC  float64       `json:"temperatureC"`
	HumidityPct   float64       `json:"humidityPct"`
	WindSpeedMps  float64       `json:"windSpeedMps"`
}

// DateString formats the entry date as YYYY-MM-DD.
func (d ForecastDay) DateString() string {
	return d.Date.Format("2006-01-02")
}

// ForecastWindow is the bounded, one-sample-per-day decision window.
// Dates are strictly increasing.
type ForecastWindow []ForecastDay
