package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies() {
		parsed, err := ParsePolicy(string(p))
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	_, err := ParsePolicy("random")
	require.ErrorIs(t, err, ErrUnknownPolicy)
	require.EqualError(t, err, `unknown policy "random"`)
}

func TestPolicy_YAML(t *testing.T) {
	var doc struct {
		Policy Policy `yaml:"policy"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("policy: weighted\n"), &doc))
	require.Equal(t, PolicyWeighted, doc.Policy)

	require.Error(t, yaml.Unmarshal([]byte("policy: bogus\n"), &doc))
}

func TestRange_Len(t *testing.T) {
	require.Equal(t, 40, Range{Start: 40, End: 80}.Len())
}
