package vote

import (
	"time"

	"github.com/opinionmap/voteclust/voter"
)

// Opinion is the voter's stance on an item.
type Opinion byte

const (
	// Positive opinion ("+").
	Positive Opinion = '+'
	// Negative opinion ("-").
	Negative Opinion = '-'
	// Neutral opinion ("0").
	Neutral Opinion = '0'
)

// DefaultEpsilon is the default neutral sentinel value (spec.md §4.6).
const DefaultEpsilon = 1e-4

// Encode maps an Opinion to its numeric matrix value under the given
// epsilon. Unrecognized opinions encode as 0 (callers should validate
// Opinion at ingestion; Encode never errors so it composes cleanly into
// hot loops).
func Encode(o Opinion, epsilon float64) float64 {
	switch o {
	case Positive:
		return 1.0
	case Negative:
		return -1.0
	case Neutral:
		return epsilon
	default:
		return 0
	}
}

// Decode maps a stored matrix value back to an Opinion under the given
// epsilon tolerance. It is the inverse of Encode and must be used
// before any arithmetic that would otherwise treat ε as a nonzero
// numeric contribution (spec.md §4.1 rationale, §9).
func Decode(value, epsilon float64) Opinion {
	switch {
	case value >= 1-epsilon:
		return Positive
	case value <= -1+epsilon:
		return Negative
	default:
		return Neutral
	}
}

// NumericValue maps a stored matrix value to its arithmetic contribution,
// treating the ε sentinel as exactly 0. Every aggregator that computes a
// sum or mean over votes must read through this function rather than the
// raw stored float (spec.md §4.1, §9).
func NumericValue(value, epsilon float64) float64 {
	if Decode(value, epsilon) == Neutral {
		return 0
	}
	return value
}

// Vote is one (voter, item, opinion, timestamp) record. At most one Vote
// may exist per (Voter, Item) after reconciliation (spec.md §3).
type Vote struct {
	Voter     voter.Identity
	Item      string
	Opinion   Opinion
	Timestamp time.Time
}
