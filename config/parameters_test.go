package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	p, err := Parse([]byte("min_voters: 100\n"))
	require.NoError(t, err)
	require.Equal(t, 100, p.MinVoters)
	require.Equal(t, 30, p.WindowDays)
	require.Equal(t, 1e-4, p.NeutralEpsilon)
}

func TestParseEmptyYieldsDefaults(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Defaults(), p)
}

func TestDefaultsMatchSpec(t *testing.T) {
	d := Defaults()
	require.Equal(t, 30, d.WindowDays)
	require.Equal(t, 50, d.MinVoters)
	require.Equal(t, 3, d.MinVotesPerVoter)
	require.Equal(t, 1e-4, d.NeutralEpsilon)
	require.Equal(t, 30*time.Minute, d.LeaseTTL)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/voteclust.yaml")
	require.Error(t, err)
}
