package testing

import (
	"testing"

	"github.com/arloliu/batchplan/types"
)

// AssertPlanValid verifies that every batch in plan is positive and that the
// batch sizes sum to the expected total.
//
// Parameters:
//   - t: testing handle
//   - plan: plan under test
//   - expectedTotal: total the plan must preserve
func AssertPlanValid(t testing.TB, plan types.Plan, expectedTotal int) {
	t.Helper()

	sum := 0
	for i, b := range plan {
		if b.Int() <= 0 {
			t.Fatalf("batch %d is not positive: %d", i, b.Int())
		}
		sum += b.Int()
	}

	if sum != expectedTotal {
		t.Fatalf("sum of batches (%d) does not equal expected total (%d)", sum, expectedTotal)
	}
}

// AssertBalanced verifies that the largest and smallest batch differ by at most one.
func AssertBalanced(t testing.TB, plan types.Plan) {
	t.Helper()

	if spread := plan.Spread(); spread > 1 {
		t.Fatalf("plan is not balanced: max %d, min %d", plan.Max(), plan.Min())
	}
}

// AssertRangesContiguous verifies that ranges tile [0, total) without gaps or
// overlaps and that every range length lies in [minLen, maxLen].
//
// Parameters:
//   - t: testing handle
//   - ranges: ranges under test, in order
//   - total: expected end offset of the last range
//   - minLen: smallest allowed range length
//   - maxLen: largest allowed range length
func AssertRangesContiguous(t testing.TB, ranges []types.Range, total, minLen, maxLen int) {
	t.Helper()

	next := 0
	for i, r := range ranges {
		if r.Start != next {
			t.Fatalf("range %d starts at %d, expected %d", i, r.Start, next)
		}
		if r.Len() < minLen || r.Len() > maxLen {
			t.Fatalf("range %d has length %d outside [%d, %d]", i, r.Len(), minLen, maxLen)
		}
		next = r.End
	}

	if next != total {
		t.Fatalf("ranges end at %d, expected %d", next, total)
	}
}
