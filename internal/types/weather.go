package types

// ConditionCode represents an OpenWeatherMap condition code
type ConditionCode int

// Condition code group boundaries. Codes below 800 denote precipitation,
// atmospheric obstruction or storm categories; 800 is clear sky; codes
// above 800 are cloud variants.
const (
	GroupThunderstormMin ConditionCode = 200
	GroupDrizzleMin      ConditionCode = 300
	GroupRainMin         ConditionCode = 500
	GroupSnowMin         ConditionCode = 600
	GroupAtmosphereMin   ConditionCode = 700
	CodeClearSky         ConditionCode = 800
	GroupCloudsMin       ConditionCode = 801
)

// Group returns a coarse human-readable category for the code.
func (c ConditionCode) Group() string {
	switch {
	case c >= GroupThunderstormMin && c < GroupDrizzleMin:
		return "thunderstorm"
	case c >= GroupDrizzleMin && c < GroupRainMin:
		return "drizzle"
	case c >= GroupRainMin && c < GroupSnowMin:
		return "rain"
	case c >= GroupSnowMin && c < GroupAtmosphereMin:
		return "snow"
	case c >= GroupAtmosphereMin && c < CodeClearSky:
		return "atmosphere"
	case c == CodeClearSky:
		return "clear"
	case c > CodeClearSky:
		return "clouds"
	default:
		return "unknown"
	}
}

// WeatherSnapshot represents current conditions at a coordinate
type WeatherSnapshot struct {
	Description   string        `json:"description"`
	ConditionCode ConditionCode `json:"conditionCode"`
	TemperatureC  float64       `json:"temperatureC"`
	HumidityPct   float64       `json:"humidityPct"`
	WindSpeedMps  float64       `json:"windSpeedMps"`
}
