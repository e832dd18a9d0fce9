package metrics

import "github.com/arloliu/batchplan/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the Planner default when no collector is
// configured.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	planner, _ := batchplan.NewPlanner(&cfg, batchplan.WithMetrics(batchplan.NewNopMetrics()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlanMetrics implementation

// RecordPlan discards the plan metric.
func (n *NopMetrics) RecordPlan(_ /* policy */ string, _ /* batches */ int, _ /* duration */ float64) {
	// No-op
}

// RecordPlanError discards the plan error metric.
func (n *NopMetrics) RecordPlanError(_ /* policy */, _ /* kind */ string) {
	// No-op
}

// CacheMetrics implementation

// RecordCacheHit discards the cache hit metric.
func (n *NopMetrics) RecordCacheHit(_ /* policy */ string) {
	// No-op
}

// RecordCacheMiss discards the cache miss metric.
func (n *NopMetrics) RecordCacheMiss(_ /* policy */ string) {
	// No-op
}

// RecordCacheSize discards the cache size metric.
func (n *NopMetrics) RecordCacheSize(_ /* entries */ int) {
	// No-op
}
