package batchplan

import "github.com/arloliu/batchplan/types"

// Re-export types from the types package so callers only need to import batchplan.
type (
	BatchSize     = types.BatchSize
	Plan          = types.Plan
	Range         = types.Range
	Configuration = types.Configuration
	Policy        = types.Policy
	PlanError     = types.PlanError
	ErrorKind     = types.Kind
)

// Re-export interfaces from the types package.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Policy constants.
const (
	PolicyEven           = types.PolicyEven
	PolicyUneven         = types.PolicyUneven
	PolicyByCount        = types.PolicyByCount
	PolicyWithRemainder  = types.PolicyWithRemainder
	PolicyWeighted       = types.PolicyWeighted
	PolicyRange          = types.PolicyRange
	PolicyOptimize       = types.PolicyOptimize
	PolicyMinBatch       = types.PolicyMinBatch
	PolicyNearest        = types.PolicyNearest
	PolicyMerge          = types.PolicyMerge
	PolicyRebalance      = types.PolicyRebalance
	PolicyConfigurations = types.PolicyConfigurations
)

// Re-export error kinds.
const (
	KindZeroTotal            = types.KindZeroTotal
	KindInvalidParameter     = types.KindInvalidParameter
	KindInfeasibleConstraint = types.KindInfeasibleConstraint
	KindNoSolutionFound      = types.KindNoSolutionFound
)

// Re-export constructors and helpers.
var (
	NewBatchSize = types.NewBatchSize
	NewPlan      = types.NewPlan
	ParsePolicy  = types.ParsePolicy
	Policies     = types.Policies
	KindOf       = types.KindOf
)
