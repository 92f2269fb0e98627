package planner

import (
	"errors"
	"fmt"
)

// ErrEmptyStatement indicates the project statement was empty or
// whitespace-only. It is returned before any network activity happens.
var ErrEmptyStatement = errors.New("project statement is empty")

// TransportError indicates the service answered with a non-success HTTP
// status. The response body is never streamed in this case.
type TransportError struct {
	Code int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("planning service returned status %d", e.Code)
}

// ConnectError indicates a network-level failure before the stream could
// be opened (connection refused, DNS failure, and similar).
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("could not reach planning service: %v", e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
