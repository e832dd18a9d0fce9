package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedSlog(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	t.Run("wraps the given logger", func(t *testing.T) {
		logger, _ := newBufferedSlog(slog.LevelDebug)

		require.NotNil(t, logger)
		require.NotNil(t, logger.logger)
	})

	t.Run("nil falls back to the default logger", func(t *testing.T) {
		logger := NewSlog(nil)

		require.Same(t, slog.Default(), logger.logger)
	})
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newBufferedSlog(slog.LevelDebug)

	logger.Debug("plan computed", "policy", "by_count")
	logger.Info("planner ready", "cache", true)
	logger.Warn("slow plan", "batches", 7)
	logger.Error("request rejected", "kind", "zero_total")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG msg=\"plan computed\" policy=by_count")
	assert.Contains(t, output, "level=INFO msg=\"planner ready\" cache=true")
	assert.Contains(t, output, "level=WARN msg=\"slow plan\" batches=7")
	assert.Contains(t, output, "level=ERROR msg=\"request rejected\" kind=zero_total")
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	logger, buf := newBufferedSlog(slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}
