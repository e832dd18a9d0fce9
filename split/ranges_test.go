package split

import (
	"testing"

	"github.com/stretchr/testify/require"

	plantest "github.com/arloliu/batchplan/testing"
	"github.com/arloliu/batchplan/types"
)

func TestSplitRange(t *testing.T) {
	t.Run("full ranges then the tail", func(t *testing.T) {
		ranges, err := SplitRange(100, 20, 40)

		require.NoError(t, err)
		require.Equal(t, []types.Range{{Start: 0, End: 40}, {Start: 40, End: 80}, {Start: 80, End: 100}}, ranges)
	})

	t.Run("tail below the minimum borrows from earlier ranges", func(t *testing.T) {
		ranges, err := SplitRange(10, 3, 4)

		require.NoError(t, err)
		require.Equal(t, []types.Range{{Start: 0, End: 4}, {Start: 4, End: 7}, {Start: 7, End: 10}}, ranges)

		ranges, err = SplitRange(90, 40, 50)
		require.NoError(t, err)
		require.Equal(t, []types.Range{{Start: 0, End: 50}, {Start: 50, End: 90}}, ranges)
	})

	t.Run("ranges tile the total whenever a solution exists", func(t *testing.T) {
		for total := 1; total <= 80; total++ {
			for minSize := 1; minSize <= 10; minSize++ {
				for maxSize := minSize; maxSize <= 14; maxSize++ {
					ranges, err := SplitRange(total, minSize, maxSize)

					feasible := false
					for k := 1; k <= total; k++ {
						if k*minSize <= total && total <= k*maxSize {
							feasible = true

							break
						}
					}

					if !feasible {
						require.ErrorIs(t, err, types.ErrInfeasibleConstraint, "total=%d min=%d max=%d", total, minSize, maxSize)

						continue
					}
					require.NoError(t, err, "total=%d min=%d max=%d", total, minSize, maxSize)
					plantest.AssertRangesContiguous(t, ranges, total, minSize, maxSize)
					require.Len(t, ranges, ceilDiv(total, maxSize))
				}
			}
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := SplitRange(100, 40, 20)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)

		_, err = SplitRange(5, 10, 20)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)

		_, err = SplitRange(11, 6, 10)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)

		_, err = SplitRange(100, 0, 40)
		require.ErrorIs(t, err, types.ErrInvalidParameter)

		_, err = SplitRange(0, 20, 40)
		require.ErrorIs(t, err, types.ErrZeroTotal)
	})
}

func TestOptimizeSplit(t *testing.T) {
	t.Run("prefers an exact divisor", func(t *testing.T) {
		n, plan, err := OptimizeSplit(100, 3, 5)

		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, []int{25, 25, 25, 25}, plan.Ints())
	})

	t.Run("ties prefer fewer batches", func(t *testing.T) {
		n, plan, err := OptimizeSplit(10, 2, 4)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []int{5, 5}, plan.Ints())

		n, plan, err = OptimizeSplit(7, 2, 3)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, []int{4, 3}, plan.Ints())
	})

	t.Run("counts above the total are ignored", func(t *testing.T) {
		n, plan, err := OptimizeSplit(10, 3, 20)

		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, []int{2, 2, 2, 2, 2}, plan.Ints())
	})

	t.Run("choice has minimal spread", func(t *testing.T) {
		for total := 1; total <= 60; total++ {
			for lo := 1; lo <= total; lo++ {
				for hi := lo; hi <= lo+6; hi++ {
					n, plan, err := OptimizeSplit(total, lo, hi)
					require.NoError(t, err)
					require.GreaterOrEqual(t, n, lo)
					require.LessOrEqual(t, n, hi)
					plantest.AssertPlanValid(t, plan, total)

					for m := lo; m <= min(hi, total); m++ {
						other, err := SplitByCount(total, m)
						require.NoError(t, err)
						require.LessOrEqual(t, plan.Spread(), other.Spread())
						if other.Spread() == plan.Spread() {
							require.LessOrEqual(t, n, m)
						}
					}
				}
			}
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, _, err := OptimizeSplit(100, 0, 5)
		require.ErrorIs(t, err, types.ErrInvalidParameter)

		_, _, err = OptimizeSplit(100, 5, 3)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)

		_, _, err = OptimizeSplit(2, 3, 5)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)

		_, _, err = OptimizeSplit(0, 3, 5)
		require.ErrorIs(t, err, types.ErrZeroTotal)
	})
}

func TestConfigurations(t *testing.T) {
	t.Run("enumerates sizes largest first", func(t *testing.T) {
		cfgs, err := Configurations(10, 2, 5)

		require.NoError(t, err)
		require.Equal(t, []types.Configuration{
			{Batches: 2, BatchSize: 5, Remainder: 0},
			{Batches: 2, BatchSize: 4, Remainder: 2},
			{Batches: 3, BatchSize: 3, Remainder: 1},
			{Batches: 5, BatchSize: 2, Remainder: 0},
		}, cfgs)
	})

	t.Run("covers the whole size range", func(t *testing.T) {
		cfgs, err := Configurations(100, 20, 40)

		require.NoError(t, err)
		require.Len(t, cfgs, 21)
		require.Contains(t, cfgs, types.Configuration{Batches: 3, BatchSize: 33, Remainder: 1})
		require.Contains(t, cfgs, types.Configuration{Batches: 4, BatchSize: 25, Remainder: 0})
		require.Contains(t, cfgs, types.Configuration{Batches: 5, BatchSize: 20, Remainder: 0})
	})

	t.Run("sizes above the total are skipped", func(t *testing.T) {
		cfgs, err := Configurations(10, 20, 40)

		require.NoError(t, err)
		require.Empty(t, cfgs)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := Configurations(0, 20, 40)
		require.ErrorIs(t, err, types.ErrZeroTotal)

		_, err = Configurations(100, 0, 40)
		require.ErrorIs(t, err, types.ErrInvalidParameter)

		_, err = Configurations(100, 40, 20)
		require.ErrorIs(t, err, types.ErrInfeasibleConstraint)
	})
}
