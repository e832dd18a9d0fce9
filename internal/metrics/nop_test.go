package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/batchplan/types"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_PlanMetrics(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordPlan(string(types.PolicyByCount), 8, 0.001)
		metrics.RecordPlan("", 0, 0)
		metrics.RecordPlan("bogus", -1, -1.0)
		metrics.RecordPlanError(string(types.PolicyWeighted), types.KindInfeasibleConstraint.String())
		metrics.RecordPlanError("", "")
	})
}

func TestNopMetrics_CacheMetrics(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordCacheHit(string(types.PolicyEven))
		metrics.RecordCacheMiss(string(types.PolicyEven))
		metrics.RecordCacheSize(4096)
		metrics.RecordCacheSize(0)
	})
}

func TestNopMetrics_ImplementsInterface(t *testing.T) {
	var collector types.MetricsCollector = NewNop()

	require.NotNil(t, collector)
}
