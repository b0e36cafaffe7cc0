package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Parameters holds the constants named in spec.md §4 and §6.3. Fields a
// YAML file leaves unset keep their Defaults() value under Load/Parse.
//
// run.Coordinator reads WindowDays, MinVoters, MinVotesPerVoter,
// NeutralEpsilon and Seed, and records GroupKMin/GroupKMax on the Run;
// LeaseTTL is read by whoever builds the Coordinator. BaseKMin, BaseKMax,
// GroupKMin, GroupKMax, ParsimonyThreshold, KMeansRestarts and
// KMeansMaxIter are not read by the clustering stages: package cluster
// uses its own fixed values (equal to these fields' defaults) whatever
// this struct holds.
type Parameters struct {
	WindowDays       int     `yaml:"window_days"`
	MinVoters        int     `yaml:"min_voters"`
	MinVotesPerVoter int     `yaml:"min_votes_per_voter"`
	NeutralEpsilon   float64 `yaml:"neutral_epsilon"`

	BaseKMin int `yaml:"base_k_min"`
	BaseKMax int `yaml:"base_k_max"`

	GroupKMin int `yaml:"group_k_min"`
	GroupKMax int `yaml:"group_k_max"`

	ParsimonyThreshold float64 `yaml:"parsimony_threshold"`
	KMeansRestarts     int     `yaml:"kmeans_restarts"`
	KMeansMaxIter      int     `yaml:"kmeans_max_iter"`

	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// Seed fixes the k-means random state for reproducibility (spec.md
	// §8 invariant 9). Zero means "derive one from the clock", which is
	// the right choice for scheduled production runs; tests and anyone
	// needing a byte-identical rerun should set it explicitly.
	Seed int64 `yaml:"seed"`
}

// Defaults returns the spec.md §4.6 default parameters.
func Defaults() Parameters {
	return Parameters{
		WindowDays:         30,
		MinVoters:          50,
		MinVotesPerVoter:   3,
		NeutralEpsilon:     1e-4,
		BaseKMin:           10,
		BaseKMax:           100,
		GroupKMin:          2,
		GroupKMax:          5,
		ParsimonyThreshold: 0.02,
		KMeansRestarts:     10,
		KMeansMaxIter:      20,
		LeaseTTL:           30 * time.Minute,
	}
}

// Load reads YAML parameters from path on top of Defaults(), so a config
// file only needs to override the constants it changes. A field set
// explicitly to zero in the file stays zero.
func Load(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse reads YAML parameters from data, defaulting unset fields.
func Parse(data []byte) (Parameters, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Parameters{}, fmt.Errorf("config: parse: %w", err)
	}
	return p, nil
}
