package asyncstate

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Listener receives the previous and the new state of a store, synchronously,
// in the order transitions occur. Listeners must not transition the store they
// observe from inside the callback.
type Listener[T any] func(prev, next State[T])

type subscription[T any] struct {
	fn     Listener[T]
	active atomic.Bool
}

// Option configures a store during construction.
type Option func(*storeConfig)

type storeConfig struct {
	autoRelease bool
}

// WithAutoRelease makes the store release itself when its last subscriber
// unsubscribes. Useful when the store's lifetime is tied to its observers
// rather than to an explicit owner.
func WithAutoRelease() Option {
	return func(c *storeConfig) {
		c.autoRelease = true
	}
}

// Store is a single-owner mutable cell holding one State value, with ordered
// synchronous transition notifications. At most one computation is in flight
// at a time: a Loading store rejects a second Loading transition, which is the
// sole mutual-exclusion mechanism its callers need.
//
// All methods are safe for concurrent use. After Release, every operation
// fails fast with ErrStoreReleased.
type Store[T any] struct {
	mu   sync.Mutex
	subs []*subscription[T]

	// deliverMu serializes notification delivery so listeners observe
	// transitions strictly in the order they were issued.
	deliverMu sync.Mutex

	state       State[T]
	version     uint64
	released    bool
	autoRelease bool
	subscribed  bool // a subscriber existed at some point; gates auto-release
}

// New creates a store in the Idle state.
func New[T any](opts ...Option) *Store[T] {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Store[T]{
		state:       Idle[T](),
		autoRelease: cfg.autoRelease,
	}
}

// Current returns the latest state without side effects.
func (s *Store[T]) Current() (State[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return State[T]{}, ErrStoreReleased
	}
	return s.state, nil
}

// Version returns a monotonic counter incremented on every transition.
// Handy for detecting stale completion callbacks.
func (s *Store[T]) Version() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return 0, ErrStoreReleased
	}
	return s.version, nil
}

// Loading moves the store into the in-flight state. Valid from Idle, Success
// and Failure; a store that is already Loading returns InvalidTransitionError,
// which is how overlapping computations are rejected.
func (s *Store[T]) Loading() error {
	return s.transition(Loading[T](), StatusIdle, StatusSuccess, StatusFailure)
}

// Succeed settles the in-flight computation with v. Valid only from Loading.
func (s *Store[T]) Succeed(v T) error {
	return s.transition(Success(v), StatusLoading)
}

// Fail settles the in-flight computation with err. Valid only from Loading.
func (s *Store[T]) Fail(err error) error {
	return s.transition(Failure[T](err), StatusLoading)
}

// transition validates the edge, swaps the state and notifies subscribers.
// The check and the swap share one critical section, so two goroutines racing
// into Loading cannot both win.
func (s *Store[T]) transition(next State[T], validFrom ...Status) error {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return ErrStoreReleased
	}
	if !slices.Contains(validFrom, s.state.Status) {
		from := s.state.Status
		s.mu.Unlock()
		return newInvalidTransition(from, next.Status)
	}
	prev := s.state
	s.state = next
	s.version++
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	// Delivery happens outside the state lock so listeners may unsubscribe
	// (themselves or others) mid-notification without deadlocking.
	for _, sub := range subs {
		if sub.active.Load() {
			sub.fn(prev, next)
		}
	}
	return nil
}

// Subscribe registers fn for future transitions and returns an idempotent
// unsubscribe handle. Listeners are notified in subscription order; a listener
// unsubscribed mid-notification finishes the current delivery and receives no
// further ones.
func (s *Store[T]) Subscribe(fn Listener[T]) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil, ErrStoreReleased
	}

	sub := &subscription[T]{fn: fn}
	sub.active.Store(true)
	s.subs = append(s.subs, sub)
	s.subscribed = true

	return func() { s.unsubscribe(sub) }, nil
}

func (s *Store[T]) unsubscribe(sub *subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !sub.active.CompareAndSwap(true, false) {
		return
	}
	if i := slices.Index(s.subs, sub); i >= 0 {
		s.subs = slices.Delete(s.subs, i, i+1)
	}
	if s.autoRelease && s.subscribed && len(s.subs) == 0 {
		s.releaseLocked()
	}
}

// Release tears the store down. It is idempotent; every subsequent operation
// returns ErrStoreReleased. An in-flight computation settling against a
// released store observes that error and must swallow it.
func (s *Store[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

// Released reports whether the store has been torn down.
func (s *Store[T]) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func (s *Store[T]) releaseLocked() {
	if s.released {
		return
	}
	s.released = true
	for _, sub := range s.subs {
		sub.active.Store(false)
	}
	s.subs = nil
}
