package builder

import "fmt"

// DataError is returned when a suite source cannot be parsed.
type DataError struct {
	Source string
	Err    error
}

// Error implements the error interface for DataError.
func (e *DataError) Error() string {
	return fmt.Sprintf("Parsing '%s' failed: %v", e.Source, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *DataError) Unwrap() error {
	return e.Err
}
