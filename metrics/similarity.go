package metrics

import (
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/votematrix"
)

// VoterSimilarity computes the fraction of co-voted items on which two
// voters' decoded opinions match exactly (spec.md §4.5): of the items both
// voters expressed an opinion on, the share where vote.Decode(a, epsilon)
// equals vote.Decode(b, epsilon). It is exposed for ad-hoc API and research
// use and is never invoked from the clustering pipeline itself (spec.md §7).
func VoterSimilarity(m *votematrix.Matrix, rowA, rowB int, epsilon float64) (float64, error) {
	if rowA < 0 || rowA >= m.NVoters() || rowB < 0 || rowB >= m.NVoters() {
		return 0, ErrNoVotes
	}

	common := m.Present[rowA].Intersection(m.Present[rowB])
	n := int(common.Count())
	if n == 0 {
		return 0, nil
	}

	matches := 0
	for col, ok := common.NextSet(0); ok; col, ok = common.NextSet(col + 1) {
		va, _ := m.At(rowA, int(col))
		vb, _ := m.At(rowB, int(col))
		if vote.Decode(va, epsilon) == vote.Decode(vb, epsilon) {
			matches++
		}
	}

	return float64(matches) / float64(n), nil
}
