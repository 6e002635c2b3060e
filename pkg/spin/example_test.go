package spin_test

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dewadhitya/wheel-spin/pkg/broadcast"
	"github.com/dewadhitya/wheel-spin/pkg/spin"
)

func Example() {
	// A deterministic pick keeps the example's output stable; production code
	// uses the default uniform pick.
	coord := spin.New(
		spin.WithSettleInterval(10*time.Millisecond),
		spin.WithPickIndex(func(n int) (int, error) { return 2, nil }),
		spin.WithLogger(slog.New(slog.DiscardHandler)),
	)
	defer coord.Close()

	results := broadcast.NewChannel[int]()
	defer results.Close()

	bridge, _ := spin.NewBridge(coord.Store(), results, spin.WithReporter(spin.NoopReporter{}))
	defer bridge.Close()

	// The animation driver consumes settled indices from the channel.
	done := make(chan struct{})
	unsub, _ := results.Subscribe(func(idx int) {
		fmt.Println("wheel stopped at index", idx)
		close(done)
	})
	defer unsub()

	coord.Spin(context.Background(), 6)
	<-done

	st, _ := coord.Store().Current()
	fmt.Println("final state:", st.Status)

	// Output:
	// wheel stopped at index 2
	// final state: success
}
