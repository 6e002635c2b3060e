// Package spin coordinates a single asynchronous spin operation: running a
// delayed index pick, tracking its lifecycle in an observable store, and
// forwarding each settled result to exactly one downstream consumer.
//
// # Architecture
//
// Three pieces cooperate around an asyncstate.Store[int]:
//
//   - Coordinator owns the store and drives it. Spin moves the store to
//     Loading, waits out the settle interval (a stand-in for a provider
//     call), runs the injected PickIndex and settles the store with Success
//     or Failure. The Loading guard rejects overlapping spins, so a second
//     Spin while one is in flight is a no-op rather than a queued retry.
//   - Bridge subscribes to the store and, on each Loading to Success
//     transition, publishes the winning index once into a broadcast.Channel;
//     on Failure it hands the error to a Reporter. It is pure glue with no
//     state of its own.
//   - Reporter is the seam to error presentation; LogReporter and
//     NoopReporter are provided.
//
// The channel's lifecycle is independent of the store's: an animation driver
// keeps its subscription across store rebuilds, and the bridge is the only
// publisher.
//
// # Usage
//
//	coord := spin.New(spin.WithSettleInterval(2 * time.Second))
//	defer coord.Close()
//
//	results := broadcast.NewChannel[int]()
//	defer results.Close()
//
//	bridge, _ := spin.NewBridge(coord.Store(), results, spin.WithReporter(reporter))
//	defer bridge.Close()
//
//	unsub, _ := results.Subscribe(func(idx int) { driveAnimation(idx) })
//	defer unsub()
//
//	coord.Spin(ctx, len(items))
//
// # Error handling
//
// Spin never returns or panics with an error; callers observe outcomes only
// through the store. A non-positive item count settles the store to Failure
// with ErrInvalidArgument, any other fault is wrapped in ComputationError,
// and a spin settling against a released store is discarded silently.
package spin
