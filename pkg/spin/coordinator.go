package spin

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dewadhitya/wheel-spin/pkg/async"
	"github.com/dewadhitya/wheel-spin/pkg/asyncstate"
	"github.com/dewadhitya/wheel-spin/pkg/logger"
)

// DefaultSettleInterval models the latency of the result provider a real
// deployment would call.
const DefaultSettleInterval = 2 * time.Second

// Coordinator runs one spin at a time: it moves its store to Loading, waits
// out the settle interval, picks a winning index and settles the store with
// the outcome. At most one spin is in flight per coordinator; the store's
// Loading guard is the sole mutual-exclusion mechanism.
type Coordinator struct {
	store      *asyncstate.Store[int]
	ownedStore bool
	pick       PickIndex
	settle     time.Duration
	log        *slog.Logger
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithPickIndex injects the index picker. Nil picks are ignored.
func WithPickIndex(pick PickIndex) Option {
	return func(c *Coordinator) {
		if pick != nil {
			c.pick = pick
		}
	}
}

// WithSettleInterval overrides the settle interval. Negative durations are
// ignored; zero is valid and settles immediately, which tests rely on.
func WithSettleInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.settle = d
		}
	}
}

// WithLogger sets the coordinator's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithStore injects an externally owned store instead of letting the
// coordinator create its own. The caller keeps responsibility for releasing
// it; Close becomes a no-op.
func WithStore(store *asyncstate.Store[int]) Option {
	return func(c *Coordinator) {
		if store != nil {
			c.store = store
		}
	}
}

// New creates a Coordinator. Unless WithStore is given, it owns a fresh Idle
// store released by Close.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		pick:   DefaultPickIndex,
		settle: DefaultSettleInterval,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = asyncstate.New[int]()
		c.ownedStore = true
	}
	return c
}

// FromConfig creates a Coordinator from environment-driven settings. Explicit
// options take precedence over the config values.
func FromConfig(cfg Config, opts ...Option) *Coordinator {
	return New(append([]Option{WithSettleInterval(cfg.SettleInterval)}, opts...)...)
}

// Store returns the coordinator's result store for subscription or pull reads.
func (c *Coordinator) Store() *asyncstate.Store[int] {
	return c.store
}

// Spin starts an asynchronous spin over itemCount entries and returns
// immediately. Outcomes are observable only through the store: a completed
// spin settles it to Success with an index in [0, itemCount) and a failed one
// to Failure; errors never escape Spin itself.
//
// A second Spin while one is in flight is rejected by the store's Loading
// guard and becomes a logged no-op. The triggering control is expected to
// disable itself while the store is Loading; this guard is the second line of
// defense, not the first.
func (c *Coordinator) Spin(ctx context.Context, itemCount int) {
	if err := c.store.Loading(); err != nil {
		// Either a spin is already in flight or the store was torn down.
		// Both are no-ops at this boundary.
		c.log.DebugContext(ctx, "spin rejected",
			logger.Component("coordinator"), logger.Error(err))
		return
	}

	id := uuid.NewString()
	c.log.DebugContext(ctx, "spin started",
		logger.Component("coordinator"), logger.SpinID(id),
		slog.Int("item_count", itemCount))

	fut := async.Go(ctx, func(ctx context.Context) (int, error) {
		// The settle interval stands in for a provider call; a cancelled
		// context surfaces as a failed computation, not a cancelled spin.
		select {
		case <-time.After(c.settle):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
		return c.pick(itemCount)
	})

	go func() {
		v, err := fut.Await()
		if err != nil {
			if !errors.Is(err, ErrInvalidArgument) {
				err = &ComputationError{Cause: err}
			}
			c.settleFailure(id, err)
			return
		}
		c.settleSuccess(id, v)
	}()
}

func (c *Coordinator) settleSuccess(id string, v int) {
	if err := c.store.Succeed(v); err != nil {
		// The store was released (or externally mutated) while the spin was
		// in flight; the result is discarded silently.
		c.log.Debug("spin result discarded",
			logger.Component("coordinator"), logger.SpinID(id), logger.Error(err))
		return
	}
	c.log.Debug("spin settled",
		logger.Component("coordinator"), logger.SpinID(id), slog.Int("result", v))
}

func (c *Coordinator) settleFailure(id string, cause error) {
	if err := c.store.Fail(cause); err != nil {
		c.log.Debug("spin failure discarded",
			logger.Component("coordinator"), logger.SpinID(id), logger.Error(err))
		return
	}
	c.log.Debug("spin settled with failure",
		logger.Component("coordinator"), logger.SpinID(id), logger.Error(cause))
}

// Close releases the coordinator's store if it owns one. An in-flight spin is
// allowed to finish; its settling transition fails against the released store
// and is discarded.
func (c *Coordinator) Close() {
	if c.ownedStore {
		c.store.Release()
	}
}
