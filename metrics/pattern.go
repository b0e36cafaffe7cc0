package metrics

import "github.com/opinionmap/voteclust/vote"

// MajorityOpinion returns the plurality opinion among opinions, breaking
// ties in the order Positive > Negative > Neutral (spec.md §4.5).
func MajorityOpinion(opinions []vote.Opinion) (vote.Opinion, error) {
	if len(opinions) == 0 {
		return 0, ErrNoVotes
	}

	var pos, neg, neu int
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

	switch {
	case pos >= neg && pos >= neu:
		return vote.Positive, nil
	case neg >= neu:
		return vote.Negative, nil
	default:
		return vote.Neutral, nil
	}
}
