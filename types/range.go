package types

// Range is a half-open offset interval [Start, End) within a total.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Configuration describes one way of cutting a total into equal batches of a
// fixed size with an unassigned remainder.
type Configuration struct {
	// Batches is the number of full batches (total / BatchSize).
	Batches int `json:"batches" yaml:"batches"`

	// BatchSize is the size of every batch.
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Remainder is total % BatchSize.
	Remainder int `json:"remainder" yaml:"remainder"`
}
