package pipeline

import "fmt"

// Stage identifies which pipeline step failed.
type Stage string

const (
	StageResolveOrigin      Stage = "resolve-origin"
	StageResolveDestination Stage = "resolve-destination"
	StageCurrentWeather     Stage = "current-weather"
	StageForecast           Stage = "forecast"
	StageTravel             Stage = "travel"
	StageRecommendation     Stage = "recommendation"
)

// StageError tags a failure with the stage it occurred in. Stage failures
// are never reported as unstructured crashes; callers can classify the
// wrapped error with errors.As.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageFailure is the serializable form of a stage failure, reported on
// best-effort outputs.
type StageFailure struct {
	Stage Stage  `json:"stage"`
	Error string `json:"error"`
}
