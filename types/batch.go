package types

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// BatchSize is a strictly positive batch size.
//
// A BatchSize can only be obtained from NewBatchSize, so a value produced by this
// library is never zero. The zero value BatchSize{} is invalid and is rejected
// by every operation that consumes a Plan.
type BatchSize struct {
	n int
}

// NewBatchSize validates n and wraps it as a BatchSize.
//
// Parameters:
//   - n: The batch size, must be > 0
//
// Returns:
//   - BatchSize: The validated size
//   - error: A KindInvalidParameter PlanError if n <= 0
func NewBatchSize(n int) (BatchSize, error) {
	if n <= 0 {
		return BatchSize{}, NewPlanError("new_batch_size", KindInvalidParameter, "size", int64(n), "batch size must be positive")
	}

	return BatchSize{n: n}, nil
}

// Int returns the size as an int.
func (b BatchSize) Int() int { return b.n }

// IsZero reports whether b is the invalid zero value.
func (b BatchSize) IsZero() bool { return b.n == 0 }

// String implements fmt.Stringer.
func (b BatchSize) String() string { return strconv.Itoa(b.n) }

// MarshalText implements encoding.TextMarshaler.
func (b BatchSize) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(b.n), 10), nil
}

// MarshalJSON encodes the size as a JSON number.
func (b BatchSize) MarshalJSON() ([]byte, error) {
	return b.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects non-positive sizes.
func (b *BatchSize) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(string(text))
	if err != nil {
		return NewPlanError("new_batch_size", KindInvalidParameter, "size", 0, "batch size is not an integer: "+string(text))
	}

	v, err := NewBatchSize(n)
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// UnmarshalJSON decodes a JSON number and rejects non-positive sizes.
func (b *BatchSize) UnmarshalJSON(data []byte) error {
	return b.UnmarshalText(data)
}

// MarshalYAML encodes the size as a YAML integer.
func (b BatchSize) MarshalYAML() (any, error) {
	return b.n, nil
}

// UnmarshalYAML decodes a YAML integer and rejects non-positive sizes.
func (b *BatchSize) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err != nil {
		return NewPlanError("new_batch_size", KindInvalidParameter, "size", 0, "batch size is not an integer: "+value.Value)
	}

	v, err := NewBatchSize(n)
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// Plan is an ordered sequence of batch sizes.
//
// Order is significant: it decides which batches receive remainder units and
// callers may map it onto processing order.
type Plan []BatchSize

// NewPlan validates every entry of sizes and builds a Plan.
//
// Parameters:
//   - sizes: Batch sizes, each must be > 0
//
// Returns:
//   - Plan: The validated plan (empty for empty input)
//   - error: A KindInvalidParameter PlanError naming the first invalid index
func NewPlan(sizes []int) (Plan, error) {
	plan := make(Plan, len(sizes))
	for i, n := range sizes {
		if n <= 0 {
			return nil, NewPlanError("new_plan", KindInvalidParameter, "sizes["+strconv.Itoa(i)+"]", int64(n), "batch size must be positive")
		}
		plan[i] = BatchSize{n: n}
	}

	return plan, nil
}

// Validate reports the first zero-valued entry, if any.
func (p Plan) Validate() error {
	for i, b := range p {
		if b.n <= 0 {
			return NewPlanError("validate_plan", KindInvalidParameter, "batches["+strconv.Itoa(i)+"]", int64(b.n), "batch size must be positive")
		}
	}

	return nil
}

// Sum returns the total of all batch sizes and false if the sum overflows int.
func (p Plan) Sum() (int, bool) {
	sum := 0
	for _, b := range p {
		if b.n > math.MaxInt-sum {
			return 0, false
		}
		sum += b.n
	}

	return sum, true
}

// Ints returns the sizes as a plain int slice.
func (p Plan) Ints() []int {
	out := make([]int, len(p))
	for i, b := range p {
		out[i] = b.n
	}

	return out
}

// Min returns the smallest batch size, or 0 for an empty plan.
func (p Plan) Min() int {
	if len(p) == 0 {
		return 0
	}

	m := p[0].n
	for _, b := range p[1:] {
		m = min(m, b.n)
	}

	return m
}

// Max returns the largest batch size, or 0 for an empty plan.
func (p Plan) Max() int {
	m := 0
	for _, b := range p {
		m = max(m, b.n)
	}

	return m
}

// Spread returns Max() - Min().
func (p Plan) Spread() int {
	return p.Max() - p.Min()
}

// Clone returns a copy of p that shares no memory with it.
func (p Plan) Clone() Plan {
	if p == nil {
		return nil
	}

	return append(make(Plan, 0, len(p)), p...)
}
