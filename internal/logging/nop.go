package logging

import "github.com/arloliu/batchplan/types"

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a logger that discards all messages.
//
// Returns:
//   - *NopLogger: Logger that performs no operations
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message and does not exit.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
