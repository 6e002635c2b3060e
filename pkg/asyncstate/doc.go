// Package asyncstate provides an observable container for the lifecycle of a
// single asynchronous computation: Idle until the first run, Loading while one
// is in flight, then Success or Failure, and back to Loading on the next run.
//
// The package revolves around two types. State is an immutable snapshot of the
// computation – its Status plus the settled value or error – and Store is a
// thread-safe single-owner cell holding exactly one State at a time, with a
// subscription mechanism that delivers (previous, next) pairs synchronously in
// transition order.
//
// # Transition graph
//
// A store enforces a fixed graph and nothing else:
//
//	Idle    -> Loading
//	Loading -> Success | Failure
//	Success -> Loading
//	Failure -> Loading
//
// Idle is reachable only at construction. Attempting any other edge returns an
// InvalidTransitionError and leaves the state untouched. In particular,
// Loading while already Loading is rejected, which callers use as a built-in
// guard against overlapping computations: whoever wins the Loading transition
// owns the in-flight slot until it settles.
//
// # Usage
//
//	store := asyncstate.New[int]()
//
//	unsub, _ := store.Subscribe(func(prev, next asyncstate.State[int]) {
//	    log.Printf("%s -> %s", prev.Status, next.Status)
//	})
//	defer unsub()
//
//	_ = store.Loading()
//	_ = store.Succeed(42)
//
//	st, _ := store.Current()
//	fmt.Println(st.Value) // 42
//
// # Disposal
//
// Release tears the store down; afterwards every operation fails fast with
// ErrStoreReleased instead of silently serving stale data. With the
// WithAutoRelease option the store releases itself once its last subscriber
// unsubscribes, tying its lifetime to its observers. A computation that
// settles against a released store receives ErrStoreReleased from the
// transition call and is expected to discard it.
//
// # Concurrency
//
// All methods are safe for concurrent use. The Loading check and the state
// swap share one critical section, and delivery is serialized so listeners
// observe transitions strictly in the order they occur. Listeners must not
// transition the store from inside a notification.
package asyncstate
