package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/batchplan/types"
)

// NewTestLogger returns a Logger that writes planner decisions to t.Log.
//
// Key-value pairs are rendered as key=value; a trailing key without a value is
// rendered as key=<missing>. Fatal fails the test.
func NewTestLogger(t testing.TB) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) log(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(l.log("DEBUG", msg, keysAndValues))
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(l.log("INFO", msg, keysAndValues))
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(l.log("WARN", msg, keysAndValues))
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Log(l.log("ERROR", msg, keysAndValues))
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatal(l.log("FATAL", msg, keysAndValues))
}
