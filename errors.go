package batchplan

import (
	"errors"

	"github.com/arloliu/batchplan/types"
)

// Sentinel errors returned by the Planner.
//
// Split failures are reported as *PlanError values that match one of the
// first four sentinels with errors.Is.
var (
	// ErrZeroTotal is returned when the total is 0 but at least one positive batch is required.
	ErrZeroTotal = types.ErrZeroTotal

	// ErrInvalidParameter is returned when a count, size, target or weight is out of domain.
	ErrInvalidParameter = types.ErrInvalidParameter

	// ErrInfeasibleConstraint is returned when the requested shape cannot be produced.
	ErrInfeasibleConstraint = types.ErrInfeasibleConstraint

	// ErrNoSolutionFound is returned when a search exhausts its candidates.
	ErrNoSolutionFound = types.ErrNoSolutionFound

	// ErrUnknownPolicy is returned when a Request names no supported policy.
	ErrUnknownPolicy = types.ErrUnknownPolicy

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)
