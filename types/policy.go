package types

import (
	"errors"
	"fmt"
)

// Policy names a splitting operation.
//
// Policies are used to describe a plan request declaratively, e.g. in a YAML
// request file or a CLI invocation.
type Policy string

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown policy")

// Supported policies.
const (
	PolicyEven           Policy = "even"
	PolicyUneven         Policy = "uneven"
	PolicyByCount        Policy = "by_count"
	PolicyWithRemainder  Policy = "with_remainder"
	PolicyWeighted       Policy = "weighted"
	PolicyRange          Policy = "range"
	PolicyOptimize       Policy = "optimize"
	PolicyMinBatch       Policy = "min_batch"
	PolicyNearest        Policy = "nearest"
	PolicyMerge          Policy = "merge"
	PolicyRebalance      Policy = "rebalance"
	PolicyConfigurations Policy = "configurations"
)

var allPolicies = []Policy{
	PolicyEven,
	PolicyUneven,
	PolicyByCount,
	PolicyWithRemainder,
	PolicyWeighted,
	PolicyRange,
	PolicyOptimize,
	PolicyMinBatch,
	PolicyNearest,
	PolicyMerge,
	PolicyRebalance,
	PolicyConfigurations,
}

// Policies returns every supported policy in a stable order.
func Policies() []Policy {
	return append([]Policy(nil), allPolicies...)
}

// Valid reports whether p is a supported policy.
func (p Policy) Valid() bool {
	for _, known := range allPolicies {
		if p == known {
			return true
		}
	}

	return false
}

// ParsePolicy converts s into a Policy.
//
// Parameters:
//   - s: Policy name (e.g. "by_count")
//
// Returns:
//   - Policy: The parsed policy
//   - error: ErrUnknownPolicy if s names no supported policy
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownPolicy, s)
	}

	return p, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
