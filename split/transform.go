package split

import "github.com/arloliu/batchplan/types"

// MergeBatches collapses consecutive runs of mergeCount batches into single batches.
//
// A final run shorter than mergeCount is merged as-is rather than dropped, so the
// result has ceil(len(batches)/mergeCount) entries and the same sum.
//
// Parameters:
//   - batches: Existing plan, must be non-empty with every entry positive
//   - mergeCount: Number of consecutive batches per merged batch, must be > 0
//
// Returns:
//   - types.Plan: The merged plan
//   - error: ErrInvalidParameter
//
// Example:
//
//	merged, err := split.MergeBatches(plan /* [3 3 2 2 2] */, 2) // [6 4 2]
func MergeBatches(batches types.Plan, mergeCount int) (types.Plan, error) {
	if err := checkPositive(opMergeBatches, "merge_count", mergeCount); err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, invalidParam(opMergeBatches, "batches", 0, "plan must not be empty")
	}
	if err := checkPlan(opMergeBatches, batches); err != nil {
		return nil, err
	}

	sizes := make([]int, 0, ceilDiv(len(batches), mergeCount))
	for start := 0; start < len(batches); start += mergeCount {
		end := min(start+mergeCount, len(batches))

		sum, ok := batches[start:end].Sum()
		if !ok {
			return nil, invalidParam(opMergeBatches, "batches", int64(start), "merged batch size overflows")
		}
		sizes = append(sizes, sum)
	}

	return types.NewPlan(sizes)
}

// RebalanceBatches redistributes the sum of an existing plan over the same number of
// batches as evenly as possible, i.e. SplitByCount(sum(batches), len(batches)).
//
// The operation is idempotent. An empty plan yields an empty plan.
//
// Parameters:
//   - batches: Existing plan with every entry positive
//
// Returns:
//   - types.Plan: The rebalanced plan, same length as batches
//   - error: ErrInvalidParameter for a zero-valued entry or an overflowing sum
func RebalanceBatches(batches types.Plan) (types.Plan, error) {
	if len(batches) == 0 {
		return types.Plan{}, nil
	}
	if err := checkPlan(opRebalanceBatches, batches); err != nil {
		return nil, err
	}

	sum, ok := batches.Sum()
	if !ok {
		return nil, invalidParam(opRebalanceBatches, "batches", int64(len(batches)), "sum of batches overflows")
	}

	return byCount(sum, len(batches))
}
