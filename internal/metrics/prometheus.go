package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/batchplan/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	plansTotal      *prometheus.CounterVec
	planBatches     *prometheus.HistogramVec
	planDuration    *prometheus.HistogramVec
	planErrorsTotal *prometheus.CounterVec
	cacheHitsTotal  *prometheus.CounterVec
	cacheMissTotal  *prometheus.CounterVec
	cacheEntries    prometheus.Gauge
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "batchplan" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "batchplan"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.plansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plans_total",
			Help:      "Total plans computed by policy.",
		}, []string{"policy"})

		p.planBatches = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_batches",
			Help:      "Number of batches per computed plan by policy.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
		}, []string{"policy"})

		p.planDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_duration_seconds",
			Help:      "Time spent computing a plan in seconds by policy.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs .. ~0.26s
		}, []string{"policy"})

		p.planErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "plan_errors_total",
			Help:      "Total rejected plan requests by policy and error kind.",
		}, []string{"policy", "kind"})

		p.cacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total plan requests served from the cache by policy.",
		}, []string{"policy"})

		p.cacheMissTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total plan requests that missed the cache by policy.",
		}, []string{"policy"})

		p.cacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of cached plans.",
		})

		p.reg.MustRegister(p.plansTotal)
		p.reg.MustRegister(p.planBatches)
		p.reg.MustRegister(p.planDuration)
		p.reg.MustRegister(p.planErrorsTotal)
		p.reg.MustRegister(p.cacheHitsTotal)
		p.reg.MustRegister(p.cacheMissTotal)
		p.reg.MustRegister(p.cacheEntries)
	})
}

// PlanMetrics implementation

// RecordPlan counts a computed plan and observes its batch count and duration.
func (p *PrometheusCollector) RecordPlan(policy string, batches int, duration float64) {
	p.ensureRegistered()
	p.plansTotal.WithLabelValues(policy).Inc()
	p.planBatches.WithLabelValues(policy).Observe(float64(batches))
	p.planDuration.WithLabelValues(policy).Observe(duration)
}

// RecordPlanError counts a rejected request.
func (p *PrometheusCollector) RecordPlanError(policy string, kind string) {
	p.ensureRegistered()
	p.planErrorsTotal.WithLabelValues(policy, kind).Inc()
}

// CacheMetrics implementation

// RecordCacheHit counts a cache hit.
func (p *PrometheusCollector) RecordCacheHit(policy string) {
	p.ensureRegistered()
	p.cacheHitsTotal.WithLabelValues(policy).Inc()
}

// RecordCacheMiss counts a cache miss.
func (p *PrometheusCollector) RecordCacheMiss(policy string) {
	p.ensureRegistered()
	p.cacheMissTotal.WithLabelValues(policy).Inc()
}

// RecordCacheSize sets the cache entries gauge.
func (p *PrometheusCollector) RecordCacheSize(entries int) {
	p.ensureRegistered()
	p.cacheEntries.Set(float64(entries))
}
