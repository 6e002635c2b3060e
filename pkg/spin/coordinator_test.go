package spin_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewadhitya/wheel-spin/pkg/asyncstate"
	"github.com/dewadhitya/wheel-spin/pkg/logger"
	"github.com/dewadhitya/wheel-spin/pkg/spin"
)

// watchSettled subscribes to the store before a spin starts and forwards each
// settled state. Must be called while the store is not yet Loading.
func watchSettled(t *testing.T, store *asyncstate.Store[int]) <-chan asyncstate.State[int] {
	t.Helper()

	settled := make(chan asyncstate.State[int], 4)
	unsub, err := store.Subscribe(func(_, next asyncstate.State[int]) {
		if next.IsSuccess() || next.IsFailure() {
			settled <- next
		}
	})
	require.NoError(t, err)
	t.Cleanup(unsub)
	return settled
}

func recvState(t *testing.T, ch <-chan asyncstate.State[int]) asyncstate.State[int] {
	t.Helper()

	select {
	case st := <-ch:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the spin to settle")
		return asyncstate.State[int]{}
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCoordinatorSpin(t *testing.T) {
	t.Parallel()

	t.Run("settles to success within range", func(t *testing.T) {
		t.Parallel()

		coord := spin.New(
			spin.WithSettleInterval(0),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		settled := watchSettled(t, coord.Store())

		const n = 4
		coord.Spin(context.Background(), n)

		st := recvState(t, settled)
		require.True(t, st.IsSuccess())
		assert.GreaterOrEqual(t, st.Value, 0)
		assert.Less(t, st.Value, n)
	})

	t.Run("observes idle loading success sequence", func(t *testing.T) {
		t.Parallel()

		coord := spin.New(
			spin.WithSettleInterval(0),
			spin.WithPickIndex(func(int) (int, error) { return 2, nil }),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		var mu sync.Mutex
		var transitions []asyncstate.Status
		unsub, err := coord.Store().Subscribe(func(_, next asyncstate.State[int]) {
			mu.Lock()
			transitions = append(transitions, next.Status)
			mu.Unlock()
		})
		require.NoError(t, err)
		defer unsub()

		settled := watchSettled(t, coord.Store())
		coord.Spin(context.Background(), 4)

		st := recvState(t, settled)
		require.True(t, st.IsSuccess())
		assert.Equal(t, 2, st.Value)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []asyncstate.Status{asyncstate.StatusLoading, asyncstate.StatusSuccess}, transitions)
	})

	t.Run("second spin while loading is a no-op", func(t *testing.T) {
		t.Parallel()

		gate := make(chan struct{})
		picks := 0
		coord := spin.New(
			spin.WithSettleInterval(0),
			spin.WithPickIndex(func(int) (int, error) {
				picks++
				<-gate
				return 1, nil
			}),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		settled := watchSettled(t, coord.Store())

		coord.Spin(context.Background(), 4)

		// The Loading transition happens synchronously inside Spin, so the
		// second call is guaranteed to hit the guard.
		st, err := coord.Store().Current()
		require.NoError(t, err)
		require.True(t, st.IsLoading())

		coord.Spin(context.Background(), 4)

		close(gate)
		recvState(t, settled)

		assert.Equal(t, 1, picks, "rejected spin must not run the computation")

		select {
		case st := <-settled:
			t.Fatalf("unexpected second settlement: %+v", st)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("compute fault settles to failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("provider exploded")
		coord := spin.New(
			spin.WithSettleInterval(0),
			spin.WithPickIndex(func(int) (int, error) { return 0, boom }),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		settled := watchSettled(t, coord.Store())
		coord.Spin(context.Background(), 4)

		st := recvState(t, settled)
		require.True(t, st.IsFailure())
		require.True(t, spin.IsComputationError(st.Err))
		assert.ErrorIs(t, st.Err, boom)
	})

	t.Run("non-positive item count settles to invalid argument", func(t *testing.T) {
		t.Parallel()

		coord := spin.New(
			spin.WithSettleInterval(0),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		settled := watchSettled(t, coord.Store())
		coord.Spin(context.Background(), 0)

		st := recvState(t, settled)
		require.True(t, st.IsFailure())
		assert.ErrorIs(t, st.Err, spin.ErrInvalidArgument)
		assert.False(t, spin.IsComputationError(st.Err),
			"contract violations pass through unwrapped")
	})

	t.Run("cancelled context settles to failure", func(t *testing.T) {
		t.Parallel()

		coord := spin.New(
			spin.WithSettleInterval(time.Hour),
			spin.WithLogger(quietLogger()),
		)
		defer coord.Close()

		settled := watchSettled(t, coord.Store())

		ctx, cancel := context.WithCancel(context.Background())
		coord.Spin(ctx, 4)
		cancel()

		st := recvState(t, settled)
		require.True(t, st.IsFailure())
		require.True(t, spin.IsComputationError(st.Err))
		assert.ErrorIs(t, st.Err, context.Canceled)
	})
}

func TestCoordinatorDisposal(t *testing.T) {
	t.Parallel()

	t.Run("in-flight result against released store is discarded", func(t *testing.T) {
		t.Parallel()

		var buf syncBuffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
		)

		gate := make(chan struct{})
		store := asyncstate.New[int]()
		coord := spin.New(
			spin.WithStore(store),
			spin.WithSettleInterval(0),
			spin.WithPickIndex(func(int) (int, error) {
				<-gate
				return 3, nil
			}),
			spin.WithLogger(log),
		)

		coord.Spin(context.Background(), 4)
		store.Release()
		close(gate)

		// The in-flight computation completes and its transition is swallowed
		// as a no-op against the released store.
		require.Eventually(t, func() bool {
			return strings.Contains(buf.String(), "spin result discarded")
		}, 2*time.Second, 5*time.Millisecond)

		_, err := store.Current()
		require.ErrorIs(t, err, asyncstate.ErrStoreReleased)
	})

	t.Run("close releases only an owned store", func(t *testing.T) {
		t.Parallel()

		owned := spin.New(spin.WithLogger(quietLogger()))
		owned.Close()
		_, err := owned.Store().Current()
		require.ErrorIs(t, err, asyncstate.ErrStoreReleased)

		store := asyncstate.New[int]()
		injected := spin.New(spin.WithStore(store), spin.WithLogger(quietLogger()))
		injected.Close()
		_, err = store.Current()
		require.NoError(t, err, "injected stores stay with their owner")
	})
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := spin.Config{SettleInterval: time.Hour}

	gateHit := make(chan struct{}, 1)
	coord := spin.FromConfig(cfg,
		spin.WithSettleInterval(0), // explicit option wins over config
		spin.WithPickIndex(func(int) (int, error) {
			gateHit <- struct{}{}
			return 0, nil
		}),
		spin.WithLogger(quietLogger()),
	)
	defer coord.Close()

	coord.Spin(context.Background(), 1)

	select {
	case <-gateHit:
	case <-time.After(2 * time.Second):
		t.Fatal("config settle interval was not overridden")
	}
}

func TestDefaultPickIndex(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive counts", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, -1, -100} {
			_, err := spin.DefaultPickIndex(n)
			require.ErrorIs(t, err, spin.ErrInvalidArgument)
		}
	})

	t.Run("stays in range", func(t *testing.T) {
		t.Parallel()

		const n = 6
		for range 200 {
			v, err := spin.DefaultPickIndex(n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
		}
	})
}

// syncBuffer is a goroutine-safe bytes.Buffer for capturing log output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
