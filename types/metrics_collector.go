package types

// MetricsCollector defines methods for recording planner metrics.
//
// Implementations should be non-blocking and must be safe for concurrent use,
// since a single Planner may serve many goroutines.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PlanMetrics
	CacheMetrics
}

// PlanMetrics defines metrics for plan computations.
type PlanMetrics interface {
	// RecordPlan records a successfully computed plan.
	//
	// Parameters:
	//   - policy: Policy name (e.g. "by_count")
	//   - batches: Number of batches (or ranges, or configurations) produced
	//   - duration: Time taken in seconds
	RecordPlan(policy string, batches int, duration float64)

	// RecordPlanError records a rejected plan request.
	//
	// Parameters:
	//   - policy: Policy name
	//   - kind: Error kind label (see Kind.String)
	RecordPlanError(policy string, kind string)
}

// CacheMetrics defines metrics for the plan cache.
type CacheMetrics interface {
	// RecordCacheHit records a request served from the cache.
	RecordCacheHit(policy string)

	// RecordCacheMiss records a request that had to be computed.
	RecordCacheMiss(policy string)

	// RecordCacheSize sets the current number of cached plans (gauge metric).
	RecordCacheSize(entries int)
}
