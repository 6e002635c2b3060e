// Package async provides a small generic helper for running a computation in
// its own goroutine and waiting for it to settle.
//
// Go starts the supplied function and immediately returns a Future. The caller
// can block with Await, bound the wait with AwaitWithTimeout, select on Done,
// or poll IsComplete. A context that is already done when Go is called settles
// the future with the context error without running the function at all.
//
//	fut := async.Go(ctx, func(ctx context.Context) (int, error) {
//	    time.Sleep(settle)
//	    return pick(n)
//	})
//	v, err := fut.Await()
//
// A Future settles exactly once and the settled result never changes, so it is
// safe to Await from multiple goroutines.
package async
