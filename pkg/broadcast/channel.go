package broadcast

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// Channel is a single-slot broadcast pipe: it remembers the latest published
// value and fans each publish out to every subscribed listener, in
// subscription order, synchronously. Subscribing never replays earlier
// publishes; the slot is reachable only through Latest.
//
// A Channel carries plain values and nothing else. Error signaling belongs to
// whoever feeds it.
//
// All methods are safe for concurrent use.
type Channel[V any] struct {
	mu        sync.Mutex
	listeners []*listener[V]

	// publishMu serializes deliveries so publishes never interleave.
	publishMu sync.Mutex

	latest   V
	hasValue bool
	closed   bool
}

type listener[V any] struct {
	fn     func(V)
	active atomic.Bool
}

// NewChannel creates an empty open channel.
func NewChannel[V any]() *Channel[V] {
	return &Channel[V]{}
}

// Publish stores v in the latest slot and delivers it to every currently
// subscribed listener in subscription order. Publishing with zero subscribers
// is not an error; the value is simply not delivered to anyone.
func (c *Channel[V]) Publish(v V) error {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrChannelClosed
	}
	c.latest = v
	c.hasValue = true
	subs := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, l := range subs {
		if l.active.Load() {
			l.fn(v)
		}
	}
	return nil
}

// Subscribe registers fn for future publishes only and returns an idempotent
// unsubscribe handle.
func (c *Channel[V]) Subscribe(fn func(V)) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrChannelClosed
	}

	l := &listener[V]{fn: fn}
	l.active.Store(true)
	c.listeners = append(c.listeners, l)

	return func() { c.unsubscribe(l) }, nil
}

// SubscribeContext is Subscribe with the subscription's lifetime additionally
// bound to ctx: when ctx is done the listener is removed automatically. The
// returned handle still works for earlier manual removal.
func (c *Channel[V]) SubscribeContext(ctx context.Context, fn func(V)) (func(), error) {
	unsub, err := c.Subscribe(fn)
	if err != nil {
		return nil, err
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			unsub()
		}()
	}

	return unsub, nil
}

// Latest returns the most recently published value, if any. It reports false
// until the first publish.
func (c *Channel[V]) Latest() (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.hasValue {
		var zero V
		return zero, false
	}
	return c.latest, true
}

// Close shuts the channel down and drops all listeners. It is idempotent.
// After Close, Publish returns ErrChannelClosed and Subscribe refuses new
// listeners.
func (c *Channel[V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for _, l := range c.listeners {
		l.active.Store(false)
	}
	c.listeners = nil
	c.mu.Unlock()

	return nil
}

func (c *Channel[V]) unsubscribe(l *listener[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !l.active.CompareAndSwap(true, false) {
		return
	}
	if i := slices.Index(c.listeners, l); i >= 0 {
		c.listeners = slices.Delete(c.listeners, i, i+1)
	}
}
