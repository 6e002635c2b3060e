package async

import (
	"context"
	"time"
)

// Future represents the eventual result of a computation started with Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go runs fn in its own goroutine and returns a Future settling with fn's
// result. If ctx is already done when Go is called, fn is never invoked and
// the future settles with ctx.Err().
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the future settles and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is Await bounded by d. If the future has not settled in
// time it returns ErrAwaitTimeout; the computation itself keeps running.
func (f *Future[T]) AwaitWithTimeout(d time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(d):
		var zero T
		return zero, ErrAwaitTimeout
	}
}

// Done returns a channel closed when the future settles, for use in select
// statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports without blocking whether the future has settled.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
