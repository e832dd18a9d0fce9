package split

import (
	"cmp"
	"math/bits"
	"slices"
	"strconv"

	"github.com/arloliu/batchplan/types"
)

// SplitWeighted allocates total across len(weights) batches proportionally to the weights.
//
// The algorithm is the largest-remainder method:
//  1. Each batch receives floor(total * w_i / sum(weights))
//  2. The leftover units go one at a time to the batches with the largest
//     fractional remainder, earliest position first on ties
//
// Products are computed in 128 bits, so no intermediate overflows.
//
// Every batch must be positive, so a zero weight next to positive ones is rejected
// and total must be at least len(weights). When a small positive weight would
// still round down to zero, every batch is first given one unit and the remaining
// total-len(weights) units are allocated by the same method. Heavier weights never
// receive smaller batches under either pass.
//
// Parameters:
//   - total: Quantity to split, must be >= len(weights)
//   - weights: Non-negative weights, one per output batch, at least one positive
//
// Returns:
//   - types.Plan: Plan with one batch per weight, in weight order
//   - error: ErrInvalidParameter, ErrZeroTotal or ErrInfeasibleConstraint
//
// Example:
//
//	plan, err := split.SplitWeighted(100, []int64{1, 2, 3, 4}) // [10 20 30 40]
func SplitWeighted(total int, weights []int64) (types.Plan, error) {
	weightSum, err := checkWeights(weights)
	if err != nil {
		return nil, err
	}
	if err := checkPositiveTotal(opSplitWeighted, total); err != nil {
		return nil, err
	}
	if err := checkCovers(opSplitWeighted, total, "len(weights)", len(weights)); err != nil {
		return nil, err
	}

	sizes := largestRemainder(uint64(total), weights, weightSum)
	if slices.Contains(sizes, 0) {
		sizes = largestRemainder(uint64(total-len(weights)), weights, weightSum)
		for i := range sizes {
			sizes[i]++
		}
	}

	return types.NewPlan(sizes)
}

// checkWeights validates the weight vector and returns its sum.
func checkWeights(weights []int64) (uint64, error) {
	if len(weights) == 0 {
		return 0, invalidParam(opSplitWeighted, "weights", 0, "weights must not be empty")
	}

	var sum uint64
	for i, w := range weights {
		if w < 0 {
			return 0, invalidParam(opSplitWeighted, "weights["+strconv.Itoa(i)+"]", w, "weights must be non-negative")
		}

		var carry uint64
		sum, carry = bits.Add64(sum, uint64(w), 0)
		if carry != 0 {
			return 0, invalidParam(opSplitWeighted, "weights", int64(len(weights)), "sum of weights overflows")
		}
	}

	if sum == 0 {
		return 0, invalidParam(opSplitWeighted, "weights", int64(len(weights)), "all weights are zero")
	}

	for i, w := range weights {
		if w == 0 {
			return 0, invalidParam(opSplitWeighted, "weights["+strconv.Itoa(i)+"]", 0, "zero weight would produce an empty batch")
		}
	}

	return sum, nil
}

// largestRemainder apportions total by weight; weightSum must be the positive sum of weights.
func largestRemainder(total uint64, weights []int64, weightSum uint64) []int {
	sizes := make([]int, len(weights))
	remainders := make([]uint64, len(weights))

	var assigned uint64
	for i, w := range weights {
		// w <= weightSum keeps the quotient <= total, so hi < weightSum and Div64 cannot overflow.
		hi, lo := bits.Mul64(total, uint64(w))
		quo, rem := bits.Div64(hi, lo, weightSum)
		sizes[i] = int(quo)
		remainders[i] = rem
		assigned += quo
	}

	leftover := total - assigned
	if leftover == 0 {
		return sizes
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	// All fractions share the denominator weightSum, so comparing raw remainders is exact.
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(remainders[b], remainders[a])
	})

	for _, idx := range order[:leftover] {
		sizes[idx]++
	}

	return sizes
}
