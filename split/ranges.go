package split

import (
	"fmt"

	"github.com/arloliu/batchplan/types"
)

// SplitRange partitions [0, total) into consecutive ranges whose lengths lie in
// [minBatchSize, maxBatchSize].
//
// The algorithm uses the fewest ranges possible, k = ceil(total/maxBatchSize), and
// walks left to right emitting min(maxBatchSize, remaining - rangesLeft*minBatchSize)
// per range: full ranges first, then the adjusted tail, then minimum-size ranges.
//
// If k ranges of at least minBatchSize do not fit in total, no other count can
// satisfy both bounds either and the call fails with ErrInfeasibleConstraint.
//
// Parameters:
//   - total: Quantity to split, must be >= minBatchSize
//   - minBatchSize: Lower bound for every range length, must be > 0
//   - maxBatchSize: Upper bound for every range length, must be >= minBatchSize
//
// Returns:
//   - []types.Range: Contiguous half-open ranges covering [0, total)
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	ranges, err := split.SplitRange(100, 20, 40) // [0,40) [40,80) [80,100)
func SplitRange(total, minBatchSize, maxBatchSize int) ([]types.Range, error) {
	if err := checkPositive(opSplitRange, "min_batch_size", minBatchSize); err != nil {
		return nil, err
	}
	if err := checkPositive(opSplitRange, "max_batch_size", maxBatchSize); err != nil {
		return nil, err
	}
	if err := checkPositiveTotal(opSplitRange, total); err != nil {
		return nil, err
	}
	if err := checkOrdered(opSplitRange, "min_batch_size", minBatchSize, "max_batch_size", maxBatchSize); err != nil {
		return nil, err
	}
	if err := checkCovers(opSplitRange, total, "min_batch_size", minBatchSize); err != nil {
		return nil, err
	}

	k := ceilDiv(total, maxBatchSize)
	if k > total/minBatchSize {
		return nil, infeasible(opSplitRange, "total", int64(total),
			fmt.Sprintf("%d ranges of at least %d exceed the total", k, minBatchSize))
	}
	if err := checkLength(opSplitRange, total, k); err != nil {
		return nil, err
	}

	ranges := make([]types.Range, 0, k)
	start, remaining := 0, total
	for i := range k {
		left := k - 1 - i
		size := min(maxBatchSize, remaining-left*minBatchSize)
		ranges = append(ranges, types.Range{Start: start, End: start + size})
		start += size
		remaining -= size
	}

	return ranges, nil
}

// OptimizeSplit picks the batch count in [minBatches, maxBatches] that gives the most
// even SplitByCount plan.
//
// The spread (largest minus smallest batch) is 0 exactly when n divides total and 1
// otherwise, so the result is the smallest divisor of total in range, or
// minBatches when there is none: fewer, larger batches win ties. Counts above
// MaxPlanLength are not searched.
//
// Parameters:
//   - total: Quantity to split, must be >= minBatches
//   - minBatches: Lower bound of the search, must be > 0
//   - maxBatches: Upper bound of the search, must be >= minBatches
//
// Returns:
//   - int: Chosen batch count
//   - types.Plan: SplitByCount(total, n)
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	n, plan, err := split.OptimizeSplit(100, 3, 5) // n == 4, plan == [25 25 25 25]
func OptimizeSplit(total, minBatches, maxBatches int) (int, types.Plan, error) {
	if err := checkPositive(opOptimizeSplit, "min_batches", minBatches); err != nil {
		return 0, nil, err
	}
	if err := checkPositiveTotal(opOptimizeSplit, total); err != nil {
		return 0, nil, err
	}
	if err := checkOrdered(opOptimizeSplit, "min_batches", minBatches, "max_batches", maxBatches); err != nil {
		return 0, nil, err
	}
	if err := checkCovers(opOptimizeSplit, total, "min_batches", minBatches); err != nil {
		return 0, nil, err
	}
	if err := checkLength(opOptimizeSplit, total, minBatches); err != nil {
		return 0, nil, err
	}

	// Counts above total would leave a batch empty.
	n, ok := smallestDivisorIn(total, minBatches, min(maxBatches, total, MaxPlanLength))
	if !ok {
		n = minBatches
	}

	plan, err := byCount(total, n)
	if err != nil {
		return 0, nil, err
	}

	return n, plan, nil
}

// Configurations enumerates every fixed batch size in [minBatchSize, maxBatchSize],
// largest first, together with the number of full batches and the remainder it
// leaves. Sizes larger than total are skipped since they yield no full batch.
//
// Parameters:
//   - total: Quantity to split, must be > 0
//   - minBatchSize: Smallest size to consider, must be > 0
//   - maxBatchSize: Largest size to consider, must be >= minBatchSize
//
// Returns:
//   - []types.Configuration: One entry per size with at least one full batch
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	cfgs, err := split.Configurations(100, 20, 40)
//	// cfgs[0] == {Batches: 2, BatchSize: 40, Remainder: 20}
func Configurations(total, minBatchSize, maxBatchSize int) ([]types.Configuration, error) {
	if err := checkPositive(opConfigurations, "min_batch_size", minBatchSize); err != nil {
		return nil, err
	}
	if err := checkPositiveTotal(opConfigurations, total); err != nil {
		return nil, err
	}
	if err := checkOrdered(opConfigurations, "min_batch_size", minBatchSize, "max_batch_size", maxBatchSize); err != nil {
		return nil, err
	}

	top := min(maxBatchSize, total)
	count := max(top-minBatchSize+1, 0)
	if err := checkLength(opConfigurations, total, count); err != nil {
		return nil, err
	}

	configs := make([]types.Configuration, 0, count)
	for size := top; size >= minBatchSize; size-- {
		configs = append(configs, types.Configuration{
			Batches:   total / size,
			BatchSize: size,
			Remainder: total % size,
		})
	}

	return configs, nil
}
