package logging

import (
	"log/slog"
	"os"

	"github.com/arloliu/batchplan/types"
)

// SlogLogger adapts a *slog.Logger to types.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ types.Logger = (*SlogLogger)(nil)

// NewSlog wraps an existing slog logger.
//
// Parameters:
//   - logger: The slog.Logger to write to (slog.Default() if nil)
//
// Returns:
//   - *SlogLogger: Adapter implementing types.Logger
//
// Example:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	planner, _ := batchplan.NewPlanner(&cfg, batchplan.WithLogger(batchplan.NewSlogLogger(slog.New(handler))))
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Debug logs at slog.LevelDebug.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs at slog.LevelInfo.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs at slog.LevelWarn.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs at slog.LevelError.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs at slog.LevelError and exits with status 1.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1) //nolint:revive // Fatal should exit the program
}
