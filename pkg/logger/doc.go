// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// The single entry point is New, which builds a *slog.Logger from a set of
// Option functions:
//
//   - WithDevelopment / WithProduction: sensible per-environment defaults.
//   - WithFormat / WithLevel / WithOutput: fine-grained overrides.
//   - WithAttr: static attributes attached to every record.
//
// Helper constructors in attr.go (Error, Component, SpinID) keep attribute
// naming consistent across the codebase; Error produces an attribute only for
// non-nil errors so it can be passed unconditionally.
//
//	log := logger.New(logger.WithDevelopment("wheel-spin"))
//	logger.SetAsDefault(log)
//
//	log.Info("spin settled", logger.SpinID(id), logger.Error(err))
package logger
