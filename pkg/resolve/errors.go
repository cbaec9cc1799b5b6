package resolve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPropertyAssignment reports that the environment rejected a
	// write, or that a value cannot be converted to the text an identifier,
	// content or for entry needs.
	ErrInvalidPropertyAssignment = errors.New("invalid property assignment")

	// ErrMalformedClassValue reports a class value that is neither a string
	// nor a sequence of strings. Passing one is a caller error; it is
	// reported instead of being coerced.
	ErrMalformedClassValue = errors.New("malformed class value")
)

// AssignmentError describes the entry that stopped Apply.
type AssignmentError struct {
	// Index is the position of the failing entry.
	Index int
	// Key is the entry key as the caller wrote it.
	Key    string
	Action Action
	// Kind is ErrInvalidPropertyAssignment or ErrMalformedClassValue.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *AssignmentError) Error() string {
	msg := fmt.Sprintf("resolve: entry %d %q (%s): %v", e.Index, e.Key, e.Action, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *AssignmentError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
