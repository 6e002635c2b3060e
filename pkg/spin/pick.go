package spin

import (
	"fmt"
	"math/rand/v2"
)

// PickIndex selects a winning index in [0, n). It must fail with
// ErrInvalidArgument when n is not positive. The coordinator takes it as an
// injected dependency so tests can substitute a deterministic pick.
type PickIndex func(n int) (int, error)

// DefaultPickIndex picks uniformly from [0, n) using math/rand/v2.
func DefaultPickIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidArgument, n)
	}
	return rand.IntN(n), nil
}
