package cluster

// BaseK computes k_base = clamp(nVoters/10, 10, 100) per spec.md §4.3,
// then caps it at nVoters so there are never more clusters than voters.
func BaseK(nVoters int) int {
	k := nVoters / 10
	if k < 10 {
		k = 10
	}
	if k > 100 {
		k = 100
	}
	if k > nVoters {
		k = nVoters
	}
	return k
}

// Base holds the fine-grained base clustering (C4): every voter is
// assigned to exactly one base cluster, used as the unit that C5 groups
// into interpretable bubbles.
type Base struct {
	Labels    []int
	Centroids [][2]float64
}

// BaseCluster runs weighted k-means with k = BaseK(len(points)) over the
// projected voter coordinates, weighting each voter by its vote count.
func BaseCluster(points [][2]float64, weights []float64, seed int64) (*Base, error) {
	k := BaseK(len(points))
	result, err := Run(points, weights, k, DefaultKMeansOptions(seed))
	if err != nil {
		return nil, err
	}
	return &Base{Labels: result.Labels, Centroids: result.Centroids}, nil
}
