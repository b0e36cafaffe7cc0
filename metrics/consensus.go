package metrics

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/opinionmap/voteclust/vote"
)

// maxOpinionEntropy is H_max for a 3-category distribution (+, -, 0),
// in nats: ln(3), the same base stats.Entropy uses.
var maxOpinionEntropy = math.Log(3)

// Consensus measures agreement within opinions as 1 - H/H_max, where H is
// the Shannon entropy of the +/-/0 distribution (spec.md §4.5). A
// unanimous set of opinions scores 1; a uniform 3-way split scores 0.
func Consensus(opinions []vote.Opinion) (float64, error) {
	if len(opinions) == 0 {
		return 0, ErrNoVotes
	}

	var pos, neg, neu float64
	for _, o := range opinions {
		switch o {
		case vote.Positive:
			pos++
		case vote.Negative:
			neg++
		case vote.Neutral:
			neu++
		}
	}
	// stats.Entropy normalizes its input to proportions before summing
	// -q*ln(q) over the nonzero entries.
	data := stats.Float64Data{pos, neg, neu}

	h, err := stats.Entropy(data)
	if err != nil {
		return 0, err
	}
	if maxOpinionEntropy == 0 {
		return 1, nil
	}
	c := 1 - h/maxOpinionEntropy
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c, nil
}
