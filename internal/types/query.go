package types

// OutingQuery is the caller's input to one advisory run. It is never
// mutated by the pipeline.
type OutingQuery struct {
	OriginAddress      string `json:"originAddress"`
	DestinationAddress string `json:"destinationAddress"`
	Purpose            string `json:"purpose"`
	AdditionalQuestion string `json:"additionalQuestion"`
}
