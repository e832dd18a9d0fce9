package batchplan

import (
	"github.com/arloliu/batchplan/internal/cache"
	"github.com/arloliu/batchplan/types"
)

// Request describes a plan declaratively.
//
// Only the fields used by Policy are read:
//
//	even, uneven        Total, MaxBatchSize
//	by_count            Total, NumBatches
//	with_remainder      Total, BatchSize
//	weighted            Total, Weights
//	range               Total, MinBatchSize, MaxBatchSize
//	optimize            Total, MinBatches, MaxBatches
//	min_batch           Total, MaxBatchSize, MinBatchSize
//	nearest             Total, TargetBatchSize
//	merge               Batches, MergeCount
//	rebalance           Batches
//	configurations      Total, MinBatchSize, MaxBatchSize
type Request struct {
	Policy          Policy  `json:"policy" yaml:"policy"`
	Total           int     `json:"total,omitempty" yaml:"total,omitempty"`
	BatchSize       int     `json:"batchSize,omitempty" yaml:"batchSize,omitempty"`
	MinBatchSize    int     `json:"minBatchSize,omitempty" yaml:"minBatchSize,omitempty"`
	MaxBatchSize    int     `json:"maxBatchSize,omitempty" yaml:"maxBatchSize,omitempty"`
	TargetBatchSize int     `json:"targetBatchSize,omitempty" yaml:"targetBatchSize,omitempty"`
	NumBatches      int     `json:"numBatches,omitempty" yaml:"numBatches,omitempty"`
	MinBatches      int     `json:"minBatches,omitempty" yaml:"minBatches,omitempty"`
	MaxBatches      int     `json:"maxBatches,omitempty" yaml:"maxBatches,omitempty"`
	MergeCount      int     `json:"mergeCount,omitempty" yaml:"mergeCount,omitempty"`
	Weights         []int64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Batches         Plan    `json:"batches,omitempty" yaml:"batches,omitempty"`
}

// inputLength returns the length of the variable-sized input of the request.
func (r *Request) inputLength() int {
	return max(len(r.Weights), len(r.Batches))
}

// minOutputLength returns a lower bound on the length of the result, computed
// without running the split. It returns 0 when the parameters are invalid or
// no cheap bound exists.
func (r *Request) minOutputLength() int {
	if r.Total <= 0 {
		return 0
	}

	switch r.Policy {
	case PolicyEven, PolicyUneven, PolicyRange:
		if r.MaxBatchSize > 0 {
			return ceilDiv(r.Total, r.MaxBatchSize)
		}
	case PolicyMinBatch:
		// At most the trailing batch is merged away.
		if r.MaxBatchSize > 0 {
			return ceilDiv(r.Total, r.MaxBatchSize) - 1
		}
	case PolicyByCount:
		if r.NumBatches <= r.Total {
			return max(r.NumBatches, 0)
		}
	case PolicyWithRemainder:
		if r.BatchSize > 0 {
			return r.Total / r.BatchSize
		}
	case PolicyOptimize:
		if r.MinBatches <= min(r.Total, r.MaxBatches) {
			return max(r.MinBatches, 0)
		}
	case PolicyNearest:
		if r.TargetBatchSize > 0 {
			return r.Total / r.TargetBatchSize
		}
	case PolicyConfigurations:
		if r.MinBatchSize > 0 {
			return max(min(r.MaxBatchSize, r.Total)-r.MinBatchSize+1, 0)
		}
	}

	return 0
}

func ceilDiv(a, b int) int {
	return (a-1)/b + 1
}

// cacheKey encodes every field of the request.
func (r *Request) cacheKey() []byte {
	batches := make([]int64, len(r.Batches))
	for i, b := range r.Batches {
		batches[i] = int64(b.Int())
	}

	return cache.NewKey(string(r.Policy)).
		Int(int64(r.Total)).
		Int(int64(r.BatchSize)).
		Int(int64(r.MinBatchSize)).
		Int(int64(r.MaxBatchSize)).
		Int(int64(r.TargetBatchSize)).
		Int(int64(r.NumBatches)).
		Int(int64(r.MinBatches)).
		Int(int64(r.MaxBatches)).
		Int(int64(r.MergeCount)).
		Ints(r.Weights...).
		Ints(batches...).
		Bytes()
}

// Result is the outcome of a plan request.
//
// Exactly one of Batches, Ranges or Configurations is populated, depending on
// the policy.
type Result struct {
	// Policy is the policy that produced the result.
	Policy Policy `json:"policy" yaml:"policy"`

	// Count is the number of batches, ranges or configurations produced.
	Count int `json:"count" yaml:"count"`

	// Batches holds the plan for every batch-producing policy.
	Batches Plan `json:"batches,omitempty" yaml:"batches,omitempty"`

	// Remainder is the unassigned rest of a with_remainder plan.
	Remainder int `json:"remainder,omitempty" yaml:"remainder,omitempty"`

	// Ranges holds the offset intervals of a range plan.
	Ranges []Range `json:"ranges,omitempty" yaml:"ranges,omitempty"`

	// Configurations holds the enumeration of a configurations request.
	Configurations []Configuration `json:"configurations,omitempty" yaml:"configurations,omitempty"`
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}

	out := *r
	out.Batches = r.Batches.Clone()
	if r.Ranges != nil {
		out.Ranges = append([]types.Range(nil), r.Ranges...)
	}
	if r.Configurations != nil {
		out.Configurations = append([]types.Configuration(nil), r.Configurations...)
	}

	return &out
}
