// Package ingestion retrieves raw profile material from the upstream service.
package ingestion

import (
	"errors"
	"fmt"
)

// ErrMissingIdentifier is returned when no profile identifier was supplied.
var ErrMissingIdentifier = errors.New("missing username")

// UpstreamFetchError means the upstream could not supply the data the pipeline needs.
// StatusCode is zero when no HTTP response was received.
type UpstreamFetchError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamFetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream fetch failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream fetch failed: %s", e.Message)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Cause
}

// UpstreamParseError means a structured payload was not valid JSON or had the wrong shape.
// It never leaves this package: the affected half degrades to an empty list.
type UpstreamParseError struct {
	Half    string
	Message string
	Cause   error
}

func (e *UpstreamParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream parse error (%s): %s: %v", e.Half, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream parse error (%s): %s", e.Half, e.Message)
}

func (e *UpstreamParseError) Unwrap() error {
	return e.Cause
}
