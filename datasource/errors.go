package datasource

import "fmt"

// TransportError indicates that no response was received from the forecast API.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no response from forecast API: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError indicates that the forecast API responded with an error status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// DecodeError indicates a response body that could not be parsed as JSON.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response: %v (body: %s)", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StructureError indicates a parsed response whose daily section is missing
// or does not have the expected series.
type StructureError struct {
	Err  error
	Body string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unexpected forecast structure: %v (body: %s)", e.Err, e.Body)
}

func (e *StructureError) Unwrap() error { return e.Err }
