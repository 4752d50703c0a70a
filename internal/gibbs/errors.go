package gibbs

import "fmt"

// SearchError is the base error type for motif search operations.
type SearchError interface {
	error
	IsSearchError()
}

// InvalidConfigError is returned when a search configuration parameter
// is out of range.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) IsSearchError() {}

// InvalidInputError is returned when a sequence set violates the
// sampler's input requirements.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func (e *InvalidInputError) IsSearchError() {}
