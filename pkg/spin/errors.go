package spin

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by a PickIndex given a non-positive item
// count. The coordinator surfaces it as a Failure state, never as a returned
// error.
var ErrInvalidArgument = errors.New("spin: item count must be positive")

// ComputationError wraps an opaque failure raised by the settling or compute
// step of a spin.
type ComputationError struct {
	Cause error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("spin: computation failed: %v", e.Cause)
}

func (e *ComputationError) Unwrap() error {
	return e.Cause
}

// IsComputationError reports whether err is a ComputationError.
func IsComputationError(err error) bool {
	var e *ComputationError
	return errors.As(err, &e)
}
