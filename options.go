package batchplan

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	metrics MetricsCollector
	logger  Logger
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	collector := batchplan.NewPrometheusMetrics(prometheus.DefaultRegisterer, "jobs")
//	planner, err := batchplan.NewPlanner(&cfg, batchplan.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	logger := batchplan.NewSlogLogger(slog.Default())
//	planner, err := batchplan.NewPlanner(&cfg, batchplan.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}
