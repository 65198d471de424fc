package entities

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when no card or subtask matches the required predicate.
	ErrNotFound = errors.New("not found")

	// ErrMalformedCounter is returned for counter text that is not "<completed> of <total> subtasks".
	ErrMalformedCounter = errors.New("malformed subtask counter")
)

// AssertionError is an expectation about observed DOM state that did not hold.
type AssertionError struct {
	Message string
	Cause   error
}

// NewAssertionError wraps cause with the human readable expectation message
func NewAssertionError(message string, cause error) *AssertionError {
	return &AssertionError{Message: message, Cause: cause}
}

func (e *AssertionError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AssertionError) Unwrap() error {
	return e.Cause
}
