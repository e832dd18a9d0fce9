package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewBatchSize(t *testing.T) {
	t.Run("accepts positive sizes", func(t *testing.T) {
		b, err := NewBatchSize(7)

		require.NoError(t, err)
		require.Equal(t, 7, b.Int())
		require.False(t, b.IsZero())
		require.Equal(t, "7", b.String())
	})

	t.Run("rejects zero and negative sizes", func(t *testing.T) {
		for _, n := range []int{0, -1, math.MinInt} {
			_, err := NewBatchSize(n)
			require.ErrorIs(t, err, ErrInvalidParameter, "n=%d", n)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.True(t, BatchSize{}.IsZero())
	})
}

func TestBatchSize_JSON(t *testing.T) {
	plan, err := NewPlan([]int{3, 2})
	require.NoError(t, err)

	data, err := json.Marshal(plan)
	require.NoError(t, err)
	require.JSONEq(t, `[3,2]`, string(data))

	var decoded Plan
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, plan, decoded)

	require.Error(t, json.Unmarshal([]byte(`[3,0]`), &decoded))
}

func TestBatchSize_YAML(t *testing.T) {
	plan, err := NewPlan([]int{5, 4})
	require.NoError(t, err)

	data, err := yaml.Marshal(plan)
	require.NoError(t, err)
	require.Equal(t, "- 5\n- 4\n", string(data))

	var decoded Plan
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, plan, decoded)

	require.ErrorIs(t, yaml.Unmarshal([]byte("[1, -2]"), &decoded), ErrInvalidParameter)
	require.ErrorIs(t, yaml.Unmarshal([]byte("[1, x]"), &decoded), ErrInvalidParameter)
}

func TestNewPlan(t *testing.T) {
	t.Run("builds a plan", func(t *testing.T) {
		plan, err := NewPlan([]int{4, 3, 3})

		require.NoError(t, err)
		require.Equal(t, []int{4, 3, 3}, plan.Ints())
		require.NoError(t, plan.Validate())
	})

	t.Run("names the first invalid index", func(t *testing.T) {
		_, err := NewPlan([]int{4, 0, -1})

		var pe *PlanError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, "sizes[1]", pe.Param)
	})

	t.Run("empty input yields empty plan", func(t *testing.T) {
		plan, err := NewPlan(nil)

		require.NoError(t, err)
		require.Empty(t, plan)
	})
}

func TestPlan_Aggregates(t *testing.T) {
	plan, err := NewPlan([]int{7, 7, 6, 6, 6, 6, 6, 6})
	require.NoError(t, err)

	sum, ok := plan.Sum()
	require.True(t, ok)
	require.Equal(t, 50, sum)
	require.Equal(t, 6, plan.Min())
	require.Equal(t, 7, plan.Max())
	require.Equal(t, 1, plan.Spread())

	var empty Plan
	require.Equal(t, 0, empty.Min())
	require.Equal(t, 0, empty.Max())
	require.Equal(t, 0, empty.Spread())
}

func TestPlan_SumOverflow(t *testing.T) {
	plan, err := NewPlan([]int{math.MaxInt, 1})
	require.NoError(t, err)

	_, ok := plan.Sum()
	require.False(t, ok)
}

func TestPlan_Validate(t *testing.T) {
	plan := Plan{{n: 2}, {}}

	err := plan.Validate()
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Contains(t, err.Error(), "batches[1]")
}

func TestPlan_Clone(t *testing.T) {
	plan, err := NewPlan([]int{1, 2})
	require.NoError(t, err)

	clone := plan.Clone()
	clone[0] = BatchSize{n: 9}

	require.Equal(t, 1, plan[0].Int())
	require.Nil(t, Plan(nil).Clone())
	require.NotNil(t, Plan{}.Clone())
}
