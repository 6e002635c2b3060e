package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewadhitya/wheel-spin/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default is json at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "shown", record["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})

	t.Run("development preset enables debug and service attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("wheel-spin"), logger.WithOutput(&buf))

		log.Debug("verbose")
		out := buf.String()
		assert.Contains(t, out, "msg=verbose")
		assert.Contains(t, out, "service=wheel-spin")
		assert.Contains(t, out, "env=development")
	})

	t.Run("static attrs on every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("version", "1.2.3")),
		)

		log.Info("first")
		log.Info("second")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, `"version":"1.2.3"`)
		}
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.Equal(t, "component", logger.Component("bridge").Key)

	assert.Equal(t, slog.Attr{}, logger.SpinID(""))
	assert.Equal(t, "spin_id", logger.SpinID("abc").Key)
}
