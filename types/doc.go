// Package types provides core type definitions and interfaces for the batchplan library.
//
// This package contains shared types that are used across multiple packages in the
// batchplan library. By keeping these types in a separate package, the split engine,
// the root Planner and the internal adapters can share them without import cycles.
//
// Key types:
//   - BatchSize: Constructor-validated positive batch size
//   - Plan: Ordered sequence of batch sizes
//   - Range: Half-open offset interval produced by range splitting
//   - Policy: Name of a splitting operation
//   - PlanError: Structured error carrying a Kind, parameter and value
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
