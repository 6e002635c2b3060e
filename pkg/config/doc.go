// Package config loads configuration structs from environment variables.
//
// It is a thin wrapper over github.com/caarlos0/env that additionally loads a
// .env file (via godotenv) the first time Load is called, so local development
// works without exporting variables. Fields are mapped with `env` tags and may
// declare defaults with `envDefault`:
//
//	type SpinConfig struct {
//		SettleInterval time.Duration `env:"SPIN_SETTLE_INTERVAL" envDefault:"2s"`
//	}
//
//	var cfg SpinConfig
//	config.MustLoad(&cfg)
//
// Load returns typed errors (ErrNilPointer, ErrParsingConfig) joined with the
// parser's detail; MustLoad panics instead, for configuration the process
// cannot run without.
package config
