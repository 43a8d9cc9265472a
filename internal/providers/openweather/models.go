package openweather

// WeatherEntry is the shared weather descriptor embedded in both the
// current-weather and forecast payloads.
type WeatherEntry struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainEntry carries the temperature and humidity block.
type MainEntry struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// WindEntry carries the wind block.
type WindEntry struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// CurrentAPIResponse is the /data/2.5/weather response.
type CurrentAPIResponse struct {
	Weather []WeatherEntry `json:"weather"`
	Main    MainEntry      `json:"main"`
	Wind    WindEntry      `json:"wind"`
	Name    string         `json:"name"`
}

// ForecastAPIResponse is the /data/2.5/forecast response: 3-hour
// resolution samples spanning 5 days, around 40 entries.
type ForecastAPIResponse struct {
	Cnt  int `json:"cnt"`
	List []struct {
		Dt      int64          `json:"dt"`
		Main    MainEntry      `json:"main"`
		Weather []WeatherEntry `json:"weather"`
		Wind    WindEntry      `json:"wind"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}
