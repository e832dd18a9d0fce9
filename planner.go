package batchplan

import (
	"fmt"
	"time"

	"github.com/arloliu/batchplan/internal/cache"
	"github.com/arloliu/batchplan/internal/logging"
	"github.com/arloliu/batchplan/internal/metrics"
	"github.com/arloliu/batchplan/split"
	"github.com/arloliu/batchplan/types"
)

// Planner computes batch plans.
//
// A Planner wraps the split package with request dispatch, memoization,
// logging and metrics. It holds no mutable state besides its cache and is
// safe for concurrent use.
type Planner struct {
	cfg     Config
	logger  Logger
	metrics MetricsCollector
	cache   *cache.Cache[*Result]
}

// NewPlanner creates a Planner.
//
// Parameters:
//   - cfg: Configuration (missing values are filled with defaults)
//   - opts: Optional configuration (logger, metrics)
//
// Returns:
//   - *Planner: Initialized planner
//   - error: ErrInvalidConfig if cfg is nil or invalid
//
// Example:
//
//	cfg := batchplan.DefaultConfig()
//	planner, err := batchplan.NewPlanner(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan, err := planner.SplitByCount(50, 8) // [7 7 6 6 6 6 6 6]
func NewPlanner(cfg *Config, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	c := *cfg
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	c.ValidateWithWarnings(loggerInstance)

	p := &Planner{
		cfg:     c,
		logger:  loggerInstance,
		metrics: metricsCollector,
	}
	if !c.Cache.Disabled {
		p.cache = cache.New[*Result](c.Cache.MaxEntries)
	}

	return p, nil
}

// Config returns a copy of the effective configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Plan computes the plan described by req.
//
// The returned Result is owned by the caller. Failed requests return the
// split error unchanged, so errors.Is and errors.As work against it.
//
// Parameters:
//   - req: Plan request
//
// Returns:
//   - *Result: The computed plan
//   - error: ErrUnknownPolicy, a *PlanError from the split operation, or a
//     *PlanError when the input or output exceeds the configured limits
func (p *Planner) Plan(req Request) (*Result, error) {
	if !req.Policy.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, req.Policy)
	}

	policy := string(req.Policy)

	if n := req.inputLength(); n > p.cfg.MaxInputLength {
		err := types.NewPlanError(policy, types.KindInvalidParameter, "input_length", int64(n),
			fmt.Sprintf("input exceeds the configured maximum of %d entries", p.cfg.MaxInputLength))
		p.reject(req, err)

		return nil, err
	}

	if n := req.minOutputLength(); n > p.cfg.MaxOutputLength {
		err := p.tooLong(req, n)
		p.reject(req, err)

		return nil, err
	}

	var key []byte
	if p.cache != nil {
		key = req.cacheKey()
		if res, ok := p.cache.Get(key); ok {
			p.metrics.RecordCacheHit(policy)

			return res.Clone(), nil
		}
		p.metrics.RecordCacheMiss(policy)
	}

	start := time.Now()
	res, err := compute(req)
	elapsed := time.Since(start)
	if err == nil && res.Count > p.cfg.MaxOutputLength {
		err = p.tooLong(req, res.Count)
	}
	if err != nil {
		p.reject(req, err)

		return nil, err
	}

	p.metrics.RecordPlan(policy, res.Count, elapsed.Seconds())
	if elapsed >= p.cfg.SlowPlanThreshold {
		p.logger.Warn("slow plan",
			"policy", policy,
			"total", req.Total,
			"count", res.Count,
			"duration", elapsed,
			"threshold", p.cfg.SlowPlanThreshold,
		)
	} else {
		p.logger.Debug("plan computed", "policy", policy, "total", req.Total, "count", res.Count)
	}

	if p.cache != nil {
		p.cache.Put(key, res.Clone())
		p.metrics.RecordCacheSize(p.cache.Len())
	}

	return res, nil
}

func (p *Planner) tooLong(req Request, n int) error {
	return types.NewPlanError(string(req.Policy), types.KindInfeasibleConstraint, "total", int64(req.Total),
		fmt.Sprintf("plan of %d entries exceeds the configured maximum of %d", n, p.cfg.MaxOutputLength))
}

func (p *Planner) reject(req Request, err error) {
	p.metrics.RecordPlanError(string(req.Policy), types.KindOf(err).String())
	p.logger.Debug("plan request rejected", "policy", string(req.Policy), "total", req.Total, "error", err)
}

// PlanAll computes every request in order and stops at the first failure.
//
// Parameters:
//   - reqs: Plan requests
//
// Returns:
//   - []*Result: Results in request order
//   - error: The first failure, wrapped with the index of its request
func (p *Planner) PlanAll(reqs []Request) ([]*Result, error) {
	results := make([]*Result, 0, len(reqs))
	for i, req := range reqs {
		res, err := p.Plan(req)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", i, req.Policy, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// compute dispatches req to its split operation.
func compute(req Request) (*Result, error) {
	res := &Result{Policy: req.Policy}

	var err error
	switch req.Policy {
	case types.PolicyEven:
		res.Count, res.Batches, err = split.EvenSplit(req.Total, req.MaxBatchSize)
	case types.PolicyUneven:
		res.Count, res.Batches, err = split.UnevenSplit(req.Total, req.MaxBatchSize)
	case types.PolicyByCount:
		res.Batches, err = split.SplitByCount(req.Total, req.NumBatches)
		res.Count = len(res.Batches)
	case types.PolicyWithRemainder:
		res.Batches, res.Remainder, err = split.SplitWithRemainder(req.Total, req.BatchSize)
		res.Count = len(res.Batches)
	case types.PolicyWeighted:
		res.Batches, err = split.SplitWeighted(req.Total, req.Weights)
		res.Count = len(res.Batches)
	case types.PolicyRange:
		res.Ranges, err = split.SplitRange(req.Total, req.MinBatchSize, req.MaxBatchSize)
		res.Count = len(res.Ranges)
	case types.PolicyOptimize:
		res.Count, res.Batches, err = split.OptimizeSplit(req.Total, req.MinBatches, req.MaxBatches)
	case types.PolicyMinBatch:
		res.Count, res.Batches, err = split.SplitWithMinBatch(req.Total, req.MaxBatchSize, req.MinBatchSize)
	case types.PolicyNearest:
		res.Count, res.Batches, err = split.SplitToNearest(req.Total, req.TargetBatchSize)
	case types.PolicyMerge:
		res.Batches, err = split.MergeBatches(req.Batches, req.MergeCount)
		res.Count = len(res.Batches)
	case types.PolicyRebalance:
		res.Batches, err = split.RebalanceBatches(req.Batches)
		res.Count = len(res.Batches)
	case types.PolicyConfigurations:
		res.Configurations, err = split.Configurations(req.Total, req.MinBatchSize, req.MaxBatchSize)
		res.Count = len(res.Configurations)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, req.Policy)
	}

	if err != nil {
		return nil, err
	}

	return res, nil
}
