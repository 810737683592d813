package pipei

import (
	"errors"
	"fmt"
)

// ErrConsumed is reported when a single-call closure is called again.
var ErrConsumed = errors.New("pipei: closure already consumed")

// ConsumedError is the panic value raised when a single-call closure
// (PipeOnceN or TapN) is invoked a second time. The receiver was handed to
// the first call and is no longer held by the closure.
type ConsumedError struct {
	arity     int
	mode      ReceiverMode
	semantics CallSemantics
}

// Error returns the error string.
func (e *ConsumedError) Error() string {
	return fmt.Sprintf("pipei: %s closure of arity %d (%s receiver) called more than once",
		e.semantics, e.arity, e.mode)
}

// Is reports whether the target error matches ConsumedError.
// This allows errors.Is(consumedErr, ErrConsumed) to return true.
func (e *ConsumedError) Is(err error) bool {
	return err == ErrConsumed
}

// Arity returns the number of trailing arguments of the closure.
func (e *ConsumedError) Arity() int {
	return e.arity
}

// Mode returns the receiver mode of the closure.
func (e *ConsumedError) Mode() ReceiverMode {
	return e.mode
}

// Semantics returns the call semantics of the closure.
func (e *ConsumedError) Semantics() CallSemantics {
	return e.semantics
}

// NewConsumedError returns a new ConsumedError for a closure of the given shape.
func NewConsumedError(arity int, mode ReceiverMode, semantics CallSemantics) *ConsumedError {
	return &ConsumedError{arity: arity, mode: mode, semantics: semantics}
}

// IsConsumed returns true if the error is a ConsumedError.
func IsConsumed(err error) bool {
	if err == nil {
		return false
	}
	var e *ConsumedError
	return errors.As(err, &e) || errors.Is(err, ErrConsumed)
}
