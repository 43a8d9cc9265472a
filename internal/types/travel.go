package types

// TravelEstimate holds the human-readable route metrics returned by the
// directions provider. DurationInTrafficText is adjusted for congestion
// at the requested departure time.
type TravelEstimate struct {
	DistanceText          string `json:"distanceText"`
	DurationText          string `json:"durationText"`
	DurationInTrafficText string `json:"durationInTrafficText"`
}
