package split

import (
	"fmt"

	"github.com/arloliu/batchplan/types"
)

// EvenSplit splits total into the fewest identical batches no larger than maxBatchSize.
//
// The algorithm selects the smallest divisor n of total with total/n <= maxBatchSize.
// A total with no suitable divisor other than itself yields total batches of 1.
// Counts above MaxPlanLength are never produced.
//
// Parameters:
//   - total: Quantity to split, must be > 0
//   - maxBatchSize: Upper bound for every batch, must be > 0
//
// Returns:
//   - int: Number of batches
//   - types.Plan: Plan where every entry equals total/n
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	n, plan, err := split.EvenSplit(50, 8) // n == 10, plan == [5 5 5 5 5 5 5 5 5 5]
func EvenSplit(total, maxBatchSize int) (int, types.Plan, error) {
	if err := checkPositive(opEvenSplit, "max_batch_size", maxBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkPositiveTotal(opEvenSplit, total); err != nil {
		return 0, nil, err
	}

	lo := ceilDiv(total, maxBatchSize)
	if err := checkLength(opEvenSplit, total, lo); err != nil {
		return 0, nil, err
	}

	// total divides itself, so a miss means every valid count is above MaxPlanLength.
	n, ok := smallestDivisorIn(total, lo, min(total, MaxPlanLength))
	if !ok {
		return 0, nil, infeasible(opEvenSplit, "total", int64(total),
			fmt.Sprintf("every identical split needs more than %d batches", MaxPlanLength))
	}

	plan, err := repeat(total/n, n)
	if err != nil {
		return 0, nil, err
	}

	return n, plan, nil
}

// UnevenSplit splits total into full batches of maxBatchSize followed by one
// trailing batch holding the remainder.
//
// The trailing batch is between 1 and maxBatchSize inclusive and is part of the plan.
//
// Parameters:
//   - total: Quantity to split, must be > 0
//   - maxBatchSize: Size of every full batch, must be > 0
//
// Returns:
//   - int: Number of batches, ceil(total / maxBatchSize)
//   - types.Plan: n-1 batches of maxBatchSize and the remainder batch
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	n, plan, err := split.UnevenSplit(50, 8) // n == 7, plan == [8 8 8 8 8 8 2]
func UnevenSplit(total, maxBatchSize int) (int, types.Plan, error) {
	if err := checkPositive(opUnevenSplit, "max_batch_size", maxBatchSize); err != nil {
		return 0, nil, err
	}
	if err := checkPositiveTotal(opUnevenSplit, total); err != nil {
		return 0, nil, err
	}
	if err := checkLength(opUnevenSplit, total, ceilDiv(total, maxBatchSize)); err != nil {
		return 0, nil, err
	}

	sizes := unevenSizes(total, maxBatchSize)
	plan, err := types.NewPlan(sizes)
	if err != nil {
		return 0, nil, err
	}

	return len(plan), plan, nil
}

func unevenSizes(total, maxBatchSize int) []int {
	n := ceilDiv(total, maxBatchSize)
	sizes := make([]int, n)
	for i := range n - 1 {
		sizes[i] = maxBatchSize
	}
	sizes[n-1] = total - (n-1)*maxBatchSize

	return sizes
}

// SplitByCount splits total into exactly numBatches batches whose sizes differ by at most one.
//
// With base = total/numBatches and rem = total%numBatches, the first rem batches
// receive base+1 and the rest receive base.
//
// Parameters:
//   - total: Quantity to split, must be >= numBatches
//   - numBatches: Number of batches, must be > 0
//
// Returns:
//   - types.Plan: Plan of length numBatches
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	plan, err := split.SplitByCount(50, 8) // [7 7 6 6 6 6 6 6]
func SplitByCount(total, numBatches int) (types.Plan, error) {
	if err := checkPositive(opSplitByCount, "num_batches", numBatches); err != nil {
		return nil, err
	}
	if err := checkPositiveTotal(opSplitByCount, total); err != nil {
		return nil, err
	}
	if err := checkCovers(opSplitByCount, total, "num_batches", numBatches); err != nil {
		return nil, err
	}
	if err := checkLength(opSplitByCount, total, numBatches); err != nil {
		return nil, err
	}

	return byCount(total, numBatches)
}

// byCount distributes total over n batches; callers guarantee 0 < n <= total.
func byCount(total, n int) (types.Plan, error) {
	base, rem := total/n, total%n

	plan, err := repeat(base+1, rem)
	if err != nil {
		return nil, err
	}
	rest, err := repeat(base, n-rem)
	if err != nil {
		return nil, err
	}

	return append(plan, rest...), nil
}

// SplitWithRemainder splits total into full batches of batchSize and returns the
// leftover units separately instead of appending them to the plan.
//
// A total of 0, or one smaller than batchSize, yields an empty plan.
//
// Parameters:
//   - total: Quantity to split, must be >= 0
//   - batchSize: Size of every batch, must be > 0
//
// Returns:
//   - types.Plan: total/batchSize batches of batchSize
//   - int: Remainder, total % batchSize
//   - error: ErrInvalidParameter or ErrInfeasibleConstraint
//
// Example:
//
//	plan, rem, err := split.SplitWithRemainder(50, 8) // [8 8 8 8 8 8], 2
func SplitWithRemainder(total, batchSize int) (types.Plan, int, error) {
	if err := checkPositive(opSplitWithRemainder, "batch_size", batchSize); err != nil {
		return nil, 0, err
	}
	if err := checkTotal(opSplitWithRemainder, total); err != nil {
		return nil, 0, err
	}
	if err := checkLength(opSplitWithRemainder, total, total/batchSize); err != nil {
		return nil, 0, err
	}

	plan, err := repeat(batchSize, total/batchSize)
	if err != nil {
		return nil, 0, err
	}

	return plan, total % batchSize, nil
}
