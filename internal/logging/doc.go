// Package logging provides types.Logger adapters for the planner.
//
// Three adapters are available:
//   - NewNop: discards everything (the Planner default)
//   - NewSlog: wraps a *slog.Logger
//   - NewZerolog: wraps a zerolog.Logger (used by the batchplan CLI)
package logging
