package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/batchplan/types"
)

// ZerologLogger adapts a zerolog.Logger to types.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ types.Logger = (*ZerologLogger)(nil)

// NewZerolog wraps an existing zerolog logger.
//
// Parameters:
//   - logger: The zerolog.Logger to write to
//
// Returns:
//   - *ZerologLogger: Adapter implementing types.Logger
func NewZerolog(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// NewZerologConsole creates a timestamped console logger at the given level.
//
// Parameters:
//   - w: Destination (os.Stderr if nil)
//   - level: Minimum level to emit
//
// Returns:
//   - *ZerologLogger: Adapter implementing types.Logger
func NewZerologConsole(w io.Writer, level zerolog.Level) *ZerologLogger {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}

	return &ZerologLogger{logger: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

// Debug logs at zerolog.DebugLevel.
func (z *ZerologLogger) Debug(msg string, keysAndValues ...any) {
	withFields(z.logger.Debug(), keysAndValues).Msg(msg)
}

// Info logs at zerolog.InfoLevel.
func (z *ZerologLogger) Info(msg string, keysAndValues ...any) {
	withFields(z.logger.Info(), keysAndValues).Msg(msg)
}

// Warn logs at zerolog.WarnLevel.
func (z *ZerologLogger) Warn(msg string, keysAndValues ...any) {
	withFields(z.logger.Warn(), keysAndValues).Msg(msg)
}

// Error logs at zerolog.ErrorLevel.
func (z *ZerologLogger) Error(msg string, keysAndValues ...any) {
	withFields(z.logger.Error(), keysAndValues).Msg(msg)
}

// Fatal logs at zerolog.FatalLevel; zerolog exits with status 1 afterwards.
func (z *ZerologLogger) Fatal(msg string, keysAndValues ...any) {
	withFields(z.logger.Fatal(), keysAndValues).Msg(msg)
}

// withFields appends alternating key-value pairs to event. A trailing key
// without a value is recorded as "<missing>".
func withFields(event *zerolog.Event, keysAndValues []any) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			event = event.Str(key, "<missing>")

			break
		}

		switch v := keysAndValues[i+1].(type) {
		case string:
			event = event.Str(key, v)
		case int:
			event = event.Int(key, v)
		case int64:
			event = event.Int64(key, v)
		case uint64:
			event = event.Uint64(key, v)
		case float64:
			event = event.Float64(key, v)
		case bool:
			event = event.Bool(key, v)
		case time.Duration:
			event = event.Dur(key, v)
		case error:
			event = event.AnErr(key, v)
		case fmt.Stringer:
			event = event.Stringer(key, v)
		default:
			event = event.Interface(key, v)
		}
	}

	return event
}
