package batchplan

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arloliu/batchplan/internal/logging"
	"github.com/arloliu/batchplan/internal/metrics"
)

// NewPrometheusMetrics creates a MetricsCollector that records into reg.
//
// Collectors are registered on first use under the given namespace.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("batchplan" if empty)
//
// Returns:
//   - MetricsCollector: Prometheus-backed collector
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewNopMetrics returns a MetricsCollector that discards everything.
func NewNopMetrics() MetricsCollector {
	return metrics.NewNop()
}

// NewSlogLogger adapts a *slog.Logger (slog.Default() if nil).
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewZerologLogger adapts a zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return logging.NewZerolog(logger)
}

// NewConsoleLogger creates a human-readable zerolog logger writing to w.
//
// Parameters:
//   - w: Destination (os.Stderr if nil)
//   - level: Minimum level, e.g. zerolog.InfoLevel
//
// Returns:
//   - Logger: Console logger
func NewConsoleLogger(w io.Writer, level zerolog.Level) Logger {
	return logging.NewZerologConsole(w, level)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return logging.NewNop()
}
