package batchplan

// EvenSplit splits total into equal batches no larger than maxBatchSize,
// using the fewest batches possible.
//
// See split.EvenSplit.
func (p *Planner) EvenSplit(total, maxBatchSize int) (int, Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyEven, Total: total, MaxBatchSize: maxBatchSize})
	if err != nil {
		return 0, nil, err
	}

	return res.Count, res.Batches, nil
}

// UnevenSplit splits total into ceil(total/maxBatchSize) batches of at most
// maxBatchSize. See split.UnevenSplit.
func (p *Planner) UnevenSplit(total, maxBatchSize int) (int, Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyUneven, Total: total, MaxBatchSize: maxBatchSize})
	if err != nil {
		return 0, nil, err
	}

	return res.Count, res.Batches, nil
}

// SplitByCount splits total into exactly numBatches balanced batches.
// See split.SplitByCount.
func (p *Planner) SplitByCount(total, numBatches int) (Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyByCount, Total: total, NumBatches: numBatches})
	if err != nil {
		return nil, err
	}

	return res.Batches, nil
}

// SplitWithRemainder returns total/batchSize full batches and the remainder.
// See split.SplitWithRemainder.
func (p *Planner) SplitWithRemainder(total, batchSize int) (Plan, int, error) {
	res, err := p.Plan(Request{Policy: PolicyWithRemainder, Total: total, BatchSize: batchSize})
	if err != nil {
		return nil, 0, err
	}

	return res.Batches, res.Remainder, nil
}

// SplitWeighted allocates total proportionally to weights.
// See split.SplitWeighted.
func (p *Planner) SplitWeighted(total int, weights []int64) (Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyWeighted, Total: total, Weights: weights})
	if err != nil {
		return nil, err
	}

	return res.Batches, nil
}

// SplitRange cuts [0,total) into contiguous ranges with lengths in
// [minBatchSize, maxBatchSize]. See split.SplitRange.
func (p *Planner) SplitRange(total, minBatchSize, maxBatchSize int) ([]Range, error) {
	res, err := p.Plan(Request{Policy: PolicyRange, Total: total, MinBatchSize: minBatchSize, MaxBatchSize: maxBatchSize})
	if err != nil {
		return nil, err
	}

	return res.Ranges, nil
}

// OptimizeSplit picks the batch count in [minBatches, maxBatches] with the
// smallest spread. See split.OptimizeSplit.
func (p *Planner) OptimizeSplit(total, minBatches, maxBatches int) (int, Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyOptimize, Total: total, MinBatches: minBatches, MaxBatches: maxBatches})
	if err != nil {
		return 0, nil, err
	}

	return res.Count, res.Batches, nil
}

// SplitWithMinBatch splits into batches of at most maxBatchSize and merges a
// short tail so no batch is below minBatchSize. See split.SplitWithMinBatch.
func (p *Planner) SplitWithMinBatch(total, maxBatchSize, minBatchSize int) (int, Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyMinBatch, Total: total, MaxBatchSize: maxBatchSize, MinBatchSize: minBatchSize})
	if err != nil {
		return 0, nil, err
	}

	return res.Count, res.Batches, nil
}

// SplitToNearest picks the batch count whose average size is closest to
// targetBatchSize. See split.SplitToNearest.
func (p *Planner) SplitToNearest(total, targetBatchSize int) (int, Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyNearest, Total: total, TargetBatchSize: targetBatchSize})
	if err != nil {
		return 0, nil, err
	}

	return res.Count, res.Batches, nil
}

// MergeBatches sums every mergeCount consecutive batches.
// See split.MergeBatches.
func (p *Planner) MergeBatches(batches Plan, mergeCount int) (Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyMerge, Batches: batches, MergeCount: mergeCount})
	if err != nil {
		return nil, err
	}

	return res.Batches, nil
}

// RebalanceBatches redistributes the sum of batches evenly over the same
// number of batches. See split.RebalanceBatches.
func (p *Planner) RebalanceBatches(batches Plan) (Plan, error) {
	res, err := p.Plan(Request{Policy: PolicyRebalance, Batches: batches})
	if err != nil {
		return nil, err
	}

	return res.Batches, nil
}

// Configurations enumerates every batch size in [minBatchSize, maxBatchSize]
// with its batch count and remainder. See split.Configurations.
func (p *Planner) Configurations(total, minBatchSize, maxBatchSize int) ([]Configuration, error) {
	res, err := p.Plan(Request{Policy: PolicyConfigurations, Total: total, MinBatchSize: minBatchSize, MaxBatchSize: maxBatchSize})
	if err != nil {
		return nil, err
	}

	return res.Configurations, nil
}
