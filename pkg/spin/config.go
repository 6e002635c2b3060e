package spin

import "time"

// Config holds the coordinator's environment-driven settings, loaded with the
// config package.
type Config struct {
	// SettleInterval is how long a spin stays in flight before picking an
	// index. It models the latency of the upstream result provider.
	SettleInterval time.Duration `env:"SPIN_SETTLE_INTERVAL" envDefault:"2s"`
}
