package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the batchplan library.
//
// Every failed split reports a *PlanError whose Kind maps onto exactly one of
// these sentinels, so callers can branch with errors.Is() without inspecting
// messages, or use errors.As() to recover the offending parameter and value.
var (
	// ErrZeroTotal is returned when the total is 0 but at least one positive batch is required.
	ErrZeroTotal = errors.New("total must be positive")

	// ErrInvalidParameter is returned when a count, size, target or weight argument is out of domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInfeasibleConstraint is returned when the requested shape cannot be produced
	// without an empty batch, or when a min/max pair is inverted.
	ErrInfeasibleConstraint = errors.New("infeasible constraint")

	// ErrNoSolutionFound is returned when a search exhausts its candidates.
	ErrNoSolutionFound = errors.New("no solution found")
)

// Kind classifies a PlanError.
type Kind uint8

const (
	// KindZeroTotal maps to ErrZeroTotal.
	KindZeroTotal Kind = iota + 1
	// KindInvalidParameter maps to ErrInvalidParameter.
	KindInvalidParameter
	// KindInfeasibleConstraint maps to ErrInfeasibleConstraint.
	KindInfeasibleConstraint
	// KindNoSolutionFound maps to ErrNoSolutionFound.
	KindNoSolutionFound
)

// String returns the snake_case name of the kind, suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case KindZeroTotal:
		return "zero_total"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindInfeasibleConstraint:
		return "infeasible_constraint"
	case KindNoSolutionFound:
		return "no_solution_found"
	default:
		return "unknown"
	}
}

// Sentinel returns the sentinel error matched by errors.Is for this kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindZeroTotal:
		return ErrZeroTotal
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindInfeasibleConstraint:
		return ErrInfeasibleConstraint
	case KindNoSolutionFound:
		return ErrNoSolutionFound
	default:
		return nil
	}
}

// PlanError describes why a split was rejected.
//
// Op is the operation name (e.g. "split_by_count"), Param the argument that failed
// its precondition and Value the offending value. Detail is a human-readable
// explanation of the violated precondition.
type PlanError struct {
	Op     string
	Kind   Kind
	Param  string
	Value  int64
	Detail string
}

// NewPlanError creates a PlanError.
//
// Parameters:
//   - op: Operation name
//   - kind: Error classification
//   - param: Name of the failing parameter ("" when not tied to one argument)
//   - value: Offending value
//   - detail: Human-readable precondition description
//
// Returns:
//   - *PlanError: The error value
func NewPlanError(op string, kind Kind, param string, value int64, detail string) *PlanError {
	return &PlanError{Op: op, Kind: kind, Param: param, Value: value, Detail: detail}
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind.Sentinel(), e.Detail)
	}

	return fmt.Sprintf("%s: %s: %s=%d: %s", e.Op, e.Kind.Sentinel(), e.Param, e.Value, e.Detail)
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *PlanError) Is(target error) bool {
	sentinel := e.Kind.Sentinel()

	return sentinel != nil && target == sentinel
}

// KindOf extracts the Kind of a PlanError anywhere in err's chain.
//
// Parameters:
//   - err: The error to inspect
//
// Returns:
//   - Kind: The error kind, or 0 if err carries no PlanError
func KindOf(err error) Kind {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Kind
	}

	return 0
}
