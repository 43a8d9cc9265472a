package types

import "fmt"

// NotFoundError reports that an address produced zero geocoding results.
// Non-retryable; surfaced verbatim to the caller.
type NotFoundError struct {
	Address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("address not found: %q", e.Address)
}

// RouteNotFoundError reports that the directions provider returned no
// route between the two addresses.
type RouteNotFoundError struct {
	Origin      string
	Destination string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route found from %q to %q", e.Origin, e.Destination)
}

// UpstreamError reports a transport or HTTP failure from an external
// provider. Retryable by caller policy, not by the pipeline. Body carries
// the raw provider response when one was available.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ReasoningServiceError reports a failure of the delegated reasoning
// call. Always recovered locally into a fallback narrative; never aborts
// the pipeline.
type ReasoningServiceError struct {
	Err error
}

func (e *ReasoningServiceError) Error() string {
	return fmt.Sprintf("reasoning service failed: %v", e.Err)
}

func (e *ReasoningServiceError) Unwrap() error {
	return e.Err
}

// AuthenticationError reports invalid credentials for the reasoning
// service. Fatal to that call and surfaced distinctly so the caller can
// prompt for new credentials, but it does not invalidate the weather and
// travel data already computed.
type AuthenticationError struct {
	Provider string
	Message  string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s authentication failed: %s", e.Provider, e.Message)
}
