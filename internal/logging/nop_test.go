package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("debug", "key", "value")
		logger.Info("info")
		logger.Warn("warn", "dangling")
		logger.Error("error", "err", nil)
		logger.Fatal("fatal")
	})
}
