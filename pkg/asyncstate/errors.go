package asyncstate

import (
	"errors"
	"fmt"
)

// ErrStoreReleased is returned by every operation on a released store.
// Callers holding a torn-down store must treat it as a no-op, not a crash.
var ErrStoreReleased = errors.New("asyncstate: store is released")

// InvalidTransitionError indicates an attempt to move the store along an edge
// that is not part of the transition graph, for example Loading while already
// Loading. It marks a programming error on the caller's side; the store state
// is left untouched.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("asyncstate: invalid transition from '%s' to '%s'", e.From, e.To)
}

func newInvalidTransition(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
