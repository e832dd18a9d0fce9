// Package testing provides test utilities for the batchplan library.
//
// This package offers helpers for asserting plan invariants in consumer tests.
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - AssertPlanValid: every batch positive and the sizes sum to the total
//   - AssertBalanced: batch sizes differ by at most one
//   - AssertRangesContiguous: ranges tile [0, total) within size bounds
//   - NewTestLogger: Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    plantest "github.com/arloliu/batchplan/testing"
//	)
//
//	func TestMyDispatcher(t *testing.T) {
//	    plan, err := split.SplitByCount(total, workers)
//	    require.NoError(t, err)
//	    plantest.AssertPlanValid(t, plan, total)
//	}
package testing
