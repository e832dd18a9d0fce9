package split

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/batchplan/types"
)

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, ceilDiv(0, 8))
	require.Equal(t, 7, ceilDiv(50, 8))
	require.Equal(t, 6, ceilDiv(48, 8))
	require.Equal(t, 1, ceilDiv(math.MaxInt, math.MaxInt))
	require.Equal(t, math.MaxInt, ceilDiv(math.MaxInt, 1))
}

func TestSmallestDivisorIn(t *testing.T) {
	t.Run("finds the smallest divisor in range", func(t *testing.T) {
		d, ok := smallestDivisorIn(100, 3, 5)
		require.True(t, ok)
		require.Equal(t, 4, d)

		d, ok = smallestDivisorIn(100, 11, 100)
		require.True(t, ok)
		require.Equal(t, 20, d)
	})

	t.Run("reports no divisor", func(t *testing.T) {
		_, ok := smallestDivisorIn(7, 2, 6)
		require.False(t, ok)
	})

	t.Run("matches a linear scan", func(t *testing.T) {
		for n := 1; n <= 200; n++ {
			for lo := 1; lo <= n; lo += 3 {
				want, wantOK := 0, false
				for d := lo; d <= n; d++ {
					if n%d == 0 {
						want, wantOK = d, true

						break
					}
				}

				got, ok := smallestDivisorIn(n, lo, n)
				require.Equal(t, wantOK, ok)
				require.Equal(t, want, got, "n=%d lo=%d", n, lo)
			}
		}
	})
}

func TestSmallestDivisorIn_LargeInputs(t *testing.T) {
	// math.MaxInt == 7^2 * 73 * 127 * 337 * 92737 * 649657 on 64-bit platforms.
	d, ok := smallestDivisorIn(math.MaxInt, 1000, MaxPlanLength)
	require.True(t, ok)
	require.Equal(t, 2359, d)

	d, ok = smallestDivisorIn(math.MaxInt, 4_544_114, MaxPlanLength)
	require.True(t, ok)
	require.Equal(t, 4_547_599, d)

	_, ok = smallestDivisorIn(math.MaxInt, 11_777_600, MaxPlanLength)
	require.False(t, ok)

	const mersenne = 2147483647
	d, ok = smallestDivisorIn(mersenne, 50_000, math.MaxInt)
	require.True(t, ok)
	require.Equal(t, mersenne, d)

	_, ok = smallestDivisorIn(mersenne, 2, MaxPlanLength)
	require.False(t, ok)
}

func TestIsqrt(t *testing.T) {
	for n := range 10_000 {
		r := isqrt(n)
		require.LessOrEqual(t, r*r, n)
		require.Greater(t, (r+1)*(r+1), n)
	}
	require.Equal(t, 3037000499, isqrt(math.MaxInt))
}

func TestMaxPlanLength(t *testing.T) {
	const mersenne = 2147483647

	tests := []struct {
		name string
		run  func() error
	}{
		{"even_split", func() error { _, _, err := EvenSplit(1<<40, 1); return err }},
		{"even_split prime total", func() error { _, _, err := EvenSplit(mersenne, 1<<30); return err }},
		{"uneven_split", func() error { _, _, err := UnevenSplit(math.MaxInt, 1); return err }},
		{"split_by_count", func() error { _, err := SplitByCount(math.MaxInt, MaxPlanLength+1); return err }},
		{"split_with_remainder", func() error { _, _, err := SplitWithRemainder(math.MaxInt, 1); return err }},
		{"split_range", func() error { _, err := SplitRange(1<<40, 1, 1); return err }},
		{"optimize_split", func() error { _, _, err := OptimizeSplit(math.MaxInt, MaxPlanLength+1, math.MaxInt); return err }},
		{"split_with_min_batch", func() error { _, _, err := SplitWithMinBatch(math.MaxInt, 1, 1); return err }},
		{"split_to_nearest", func() error { _, _, err := SplitToNearest(math.MaxInt, 1); return err }},
		{"configurations", func() error { _, err := Configurations(math.MaxInt, 1, math.MaxInt); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			require.ErrorIs(t, err, types.ErrInfeasibleConstraint)
			var pe *types.PlanError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, "total", pe.Param)
		})
	}

	t.Run("large totals with short results succeed", func(t *testing.T) {
		n, plan, err := EvenSplit(math.MaxInt, 1<<55)
		require.NoError(t, err)
		require.Equal(t, 337, n)
		require.Equal(t, math.MaxInt/337, plan[0].Int())

		n, plan, err = OptimizeSplit(math.MaxInt, 1000, math.MaxInt)
		require.NoError(t, err)
		require.Equal(t, 2359, n)
		require.Zero(t, plan.Spread())

		ranges, err := SplitRange(math.MaxInt, 1<<40, 1<<62)
		require.NoError(t, err)
		require.Len(t, ranges, 2)
		require.Equal(t, math.MaxInt, ranges[1].End)
	})
}

func TestLessProduct(t *testing.T) {
	require.True(t, lessProduct(2, 3, 7, 1))
	require.False(t, lessProduct(2, 3, 3, 2))
	require.True(t, lessProduct(math.MaxUint64, 1, math.MaxUint64, 2))
	require.False(t, lessProduct(math.MaxUint64, math.MaxUint64, 1, 1))
}
