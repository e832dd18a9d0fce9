package split

import "github.com/arloliu/batchplan/types"

// SplitWithMinBatch behaves like UnevenSplit but guarantees every batch, including
// the trailing one, is at least minBatchSize.
//
// A short trailing batch is merged backward into its predecessor until the merged
// batch reaches minBatchSize or only one batch remains. The merged batch may
// therefore exceed maxBatchSize by less than minBatchSize.
//
// Parameters:
//   - total: Quantity to split, must be >= minBatchSize
//   - maxBatchSize: Size of every full batch, must be > 0
//   - minBatchSize: Lower bound for every batch, must be in (0, maxBatchSize]
//
// Returns:
//   - int: Number of batches
//   - types.Plan: The adjusted plan
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	n, plan, err := split.SplitWithMinBatch(100, 30, 20) // n == 3, plan == [30 30 40]
func SplitWithMinBatch(total, maxBatchSize, minBatchSize int) (int, types.Plan, error) {
	if err := checkPositive(opSplitWithMinBatch, "max_batch_size", maxBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkPositive(opSplitWithMinBatch, "min_batch_size", minBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkPositiveTotal(opSplitWithMinBatch, total); err != nil {
		return 0, nil, err
	}
	if err := checkOrdered(opSplitWithMinBatch, "min_batch_size", minBatchSize, "max_batch_size", maxBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkCovers(opSplitWithMinBatch, total, "min_batch_size", minBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkLength(opSplitWithMinBatch, total, ceilDiv(total, maxBatchSize)); err != nil {
		return 0, nil, err
	}

	sizes := unevenSizes(total, maxBatchSize)
	for len(sizes) > 1 && sizes[len(sizes)-1] < minBatchSize {
		last := sizes[len(sizes)-1]
		sizes = sizes[:len(sizes)-1]
		sizes[len(sizes)-1] += last
	}

	plan, err := types.NewPlan(sizes)
	if err != nil {
		return 0, nil, err
	}

	return len(plan), plan, nil
}

// SplitToNearest chooses the batch count whose average batch size is closest to
// targetBatchSize and distributes total with SplitByCount.
//
// Since total/n decreases with n, the best count is one of floor(total/target) and
// the next integer; distances are compared exactly and ties prefer fewer batches.
//
// Parameters:
//   - total: Quantity to split, must be > 0
//   - targetBatchSize: Desired batch size, must be > 0
//
// Returns:
//   - int: Chosen batch count
//   - types.Plan: SplitByCount(total, n)
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	n, plan, err := split.SplitToNearest(100, 30) // n == 3, plan == [34 33 33]
func SplitToNearest(total, targetBatchSize int) (int, types.Plan, error) {
	if err := checkPositive(opSplitToNearest, "target_batch_size", targetBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkPositiveTotal(opSplitToNearest, total); err != nil {
		return 0, nil, err
	}

	n := nearestCount(uint64(total), uint64(targetBatchSize))
	if err := checkLength(opSplitToNearest, total, n); err != nil {
		return 0, nil, err
	}

	plan, err := byCount(total, n)
	if err != nil {
		return 0, nil, err
	}

	return n, plan, nil
}

// nearestCount returns n in [1, total] minimizing |total/n - target|.
func nearestCount(total, target uint64) int {
	lo := max(total/target, 1)
	hi := min(lo+1, total)
	if hi == lo {
		return int(lo)
	}

	// |total/n - target| == distance(n)/n; compare the fractions by cross-multiplying.
	if lessProduct(distance(total, target, hi), lo, distance(total, target, lo), hi) {
		return int(hi)
	}

	return int(lo)
}

// distance returns |total - target*n|; target*n stays below 2^64 for n <= total/target+1.
func distance(total, target, n uint64) uint64 {
	p := target * n
	if p > total {
		return p - total
	}

	return total - p
}
