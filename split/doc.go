// Package split provides the batch splitting engine.
//
// Every function is a pure, deterministic function of its arguments: no shared
// state, no I/O and no randomization, so all of them are safe for concurrent use.
// Each validates its input fully before computing and returns a *types.PlanError
// (matchable with errors.Is against the types sentinels) instead of a partial
// result. Every successful split preserves the total: the batch sizes of the
// returned plan sum to exactly the requested total, and each is at least 1.
//
// The functions are grouped by policy family:
//
//   - Count based: EvenSplit, UnevenSplit, SplitByCount, SplitWithRemainder
//   - Weighted: SplitWeighted (largest-remainder allocation)
//   - Range based: SplitRange, OptimizeSplit, Configurations
//   - Constrained: SplitWithMinBatch, SplitToNearest
//   - Plan transformers: MergeBatches, RebalanceBatches
//
// # Policy Selection Guide
//
// SplitByCount:
//   - Use when the number of workers is fixed
//   - Sizes differ by at most one; larger batches come first
//
// UnevenSplit:
//   - Use when a hard per-batch cap exists (request size, memory)
//   - Full batches first, one short trailing batch
//
// EvenSplit:
//   - Use when all batches must be identical
//   - May produce many small batches when the total has few divisors
//
// SplitWeighted:
//   - Use when consumers have different capacities
//   - The sum is exact; heavier weights never receive smaller batches
package split
