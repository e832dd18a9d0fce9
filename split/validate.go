package split

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/arloliu/batchplan/types"
)

// Operation names reported in PlanError.Op.
const (
	opEvenSplit          = "even_split"
	opUnevenSplit        = "uneven_split"
	opSplitByCount       = "split_by_count"
	opSplitWithRemainder = "split_with_remainder"
	opSplitWeighted      = "split_weighted"
	opSplitRange         = "split_range"
	opOptimizeSplit      = "optimize_split"
	opSplitWithMinBatch  = "split_with_min_batch"
	opSplitToNearest     = "split_to_nearest"
	opMergeBatches       = "merge_batches"
	opRebalanceBatches   = "rebalance_batches"
	opConfigurations     = "configurations"
)

func invalidParam(op, param string, value int64, detail string) error {
	return types.NewPlanError(op, types.KindInvalidParameter, param, value, detail)
}

func infeasible(op, param string, value int64, detail string) error {
	return types.NewPlanError(op, types.KindInfeasibleConstraint, param, value, detail)
}

// checkTotal rejects negative totals.
func checkTotal(op string, total int) error {
	if total < 0 {
		return invalidParam(op, "total", int64(total), "total must be non-negative")
	}

	return nil
}

// checkPositiveTotal rejects negative totals and reports zero totals as ErrZeroTotal.
func checkPositiveTotal(op string, total int) error {
	if err := checkTotal(op, total); err != nil {
		return err
	}
	if total == 0 {
		return types.NewPlanError(op, types.KindZeroTotal, "total", 0, "total must be positive when at least one batch is required")
	}

	return nil
}

func checkPositive(op, param string, value int) error {
	if value <= 0 {
		return invalidParam(op, param, int64(value), param+" must be positive")
	}

	return nil
}

// checkOrdered requires lo <= hi.
func checkOrdered(op, loParam string, lo int, hiParam string, hi int) error {
	if lo > hi {
		return infeasible(op, loParam, int64(lo), fmt.Sprintf("%s must not exceed %s (%d)", loParam, hiParam, hi))
	}

	return nil
}

// checkCovers requires total >= n so that n batches can each receive a unit.
func checkCovers(op string, total int, param string, n int) error {
	if total < n {
		return infeasible(op, param, int64(n), fmt.Sprintf("total (%d) is smaller than %s", total, param))
	}

	return nil
}

// MaxPlanLength is the largest number of batches, ranges or configurations a
// single operation produces. Larger results fail with ErrInfeasibleConstraint.
const MaxPlanLength = 1 << 24

// checkLength rejects results longer than MaxPlanLength before they are allocated.
func checkLength(op string, total, n int) error {
	if n > MaxPlanLength {
		return infeasible(op, "total", int64(total),
			fmt.Sprintf("result of %d entries exceeds the limit of %d", n, MaxPlanLength))
	}

	return nil
}

// checkPlan validates every entry of an input plan.
func checkPlan(op string, batches types.Plan) error {
	for i, b := range batches {
		if b.IsZero() {
			return invalidParam(op, "batches["+strconv.Itoa(i)+"]", 0, "batch size must be positive")
		}
	}

	return nil
}

// ceilDiv returns ceil(a/b) for a >= 0 and b > 0 without overflowing.
func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}

	return (a-1)/b + 1
}

// smallestDivisorIn returns the smallest divisor d of n with lo <= d <= hi.
//
// Divisors up to sqrt(n) are scanned upward from lo, then their cofactors are
// scanned in ascending order. Both scans stop at the first hit or once past hi.
func smallestDivisorIn(n, lo, hi int) (int, bool) {
	lo = max(lo, 1)
	if n <= 0 || lo > hi {
		return 0, false
	}

	for i := lo; i <= hi && i <= n/i; i++ {
		if n%i == 0 {
			return i, true
		}
	}

	// Cofactors n/j grow as j shrinks; j <= n/lo keeps them >= lo.
	for j := min(isqrt(n), n/lo); j >= 1; j-- {
		d := n / j
		if d > hi {
			break
		}
		if n%j == 0 {
			return d, true
		}
	}

	return 0, false
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// lessProduct reports whether a*b < c*d using 128-bit products.
func lessProduct(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	if hi1 != hi2 {
		return hi1 < hi2
	}

	return lo1 < lo2
}

// repeat builds a plan of count batches of the given size.
func repeat(size, count int) (types.Plan, error) {
	plan := make(types.Plan, 0, count)
	if count == 0 {
		return plan, nil
	}

	b, err := types.NewBatchSize(size)
	if err != nil {
		return nil, err
	}
	for range count {
		plan = append(plan, b)
	}

	return plan, nil
}
