package googlemaps

// GeocodeAPIResponse is the Geocoding API response envelope.
type GeocodeAPIResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

// TextValue is the distance/duration representation used throughout the
// Directions API: a human-readable text plus a numeric value.
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// DirectionsAPIResponse is the Directions API response envelope. Only the
// first route's first leg is consumed.
type DirectionsAPIResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Summary string `json:"summary"`
		Legs    []struct {
			Distance          TextValue `json:"distance"`
			Duration          TextValue `json:"duration"`
			DurationInTraffic TextValue `json:"duration_in_traffic"`
			StartAddress      string    `json:"start_address"`
			EndAddress        string    `json:"end_address"`
		} `json:"legs"`
	} `json:"routes"`
	ErrorMessage string `json:"error_message"`
}
