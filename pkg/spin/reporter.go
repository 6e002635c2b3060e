package spin

import (
	"log/slog"

	"github.com/dewadhitya/wheel-spin/pkg/logger"
)

// Reporter receives the error of each failed spin, once per failure. It is the
// seam to whatever presents errors to the user.
type Reporter interface {
	Report(err error)
}

// LogReporter reports failures to a structured logger.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter creates a LogReporter. A nil logger falls back to
// slog.Default().
func NewLogReporter(log *slog.Logger) *LogReporter {
	if log == nil {
		log = slog.Default()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(err error) {
	r.log.Error("spin failed", logger.Component("reporter"), logger.Error(err))
}

// NoopReporter discards reports. Useful for tests or when failure presentation
// is handled elsewhere.
type NoopReporter struct{}

func (NoopReporter) Report(error) {}
