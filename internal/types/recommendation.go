package types

// Recommendation is the final narrative output of an engine. Constructed
// once, never mutated.
type Recommendation struct {
	NarrativeText string `json:"narrativeText"`
}
