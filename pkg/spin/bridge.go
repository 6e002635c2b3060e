package spin

import (
	"log/slog"

	"github.com/dewadhitya/wheel-spin/pkg/asyncstate"
	"github.com/dewadhitya/wheel-spin/pkg/broadcast"
	"github.com/dewadhitya/wheel-spin/pkg/logger"
)

// Bridge forwards store transitions to their downstream consumers: each
// Loading to Success transition publishes the settled index to the result
// channel exactly once, and each transition into Failure reports the error
// once. Idle and Loading transitions produce no side effect.
//
// The bridge never reads the channel's latest slot and never buffers missed
// publications.
type Bridge struct {
	channel  *broadcast.Channel[int]
	reporter Reporter
	log      *slog.Logger
	unsub    func()
}

// BridgeOption configures a Bridge during construction.
type BridgeOption func(*Bridge)

// WithReporter sets the failure reporter. Defaults to a LogReporter on the
// bridge's logger.
func WithReporter(r Reporter) BridgeOption {
	return func(b *Bridge) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithBridgeLogger sets the bridge's logger.
func WithBridgeLogger(log *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBridge subscribes to store and starts forwarding. The subscription lasts
// until Close; constructing a bridge on a released store fails.
func NewBridge(store *asyncstate.Store[int], channel *broadcast.Channel[int], opts ...BridgeOption) (*Bridge, error) {
	b := &Bridge{
		channel: channel,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.reporter == nil {
		b.reporter = NewLogReporter(b.log)
	}

	unsub, err := store.Subscribe(b.onTransition)
	if err != nil {
		return nil, err
	}
	b.unsub = unsub
	return b, nil
}

func (b *Bridge) onTransition(prev, next asyncstate.State[int]) {
	switch {
	case next.IsSuccess():
		// Success is only reachable from Loading; anything else would be a
		// store bug and must not leak into the channel.
		if !prev.IsLoading() {
			return
		}
		if err := b.channel.Publish(next.Value); err != nil {
			b.log.Warn("result channel rejected publish",
				logger.Component("bridge"), logger.Error(err))
		}
	case next.IsFailure():
		b.reporter.Report(next.Err)
	}
}

// Close unsubscribes the bridge from its store. It is idempotent and does not
// touch the channel, whose lifecycle belongs to its owner.
func (b *Bridge) Close() {
	b.unsub()
}
