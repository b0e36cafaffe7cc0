package cluster

import (
	"github.com/opinionmap/voteclust/metrics"
)

// parsimonyBias is the silhouette margin a larger group count must clear
// over a smaller one to be preferred (spec.md §4.4).
const parsimonyBias = 0.02

// minGroups and maxGroups bound the interpretable "bubble" count C5
// chooses among.
const (
	minGroups = 2
	maxGroups = 5
)

// Group holds the reduced, interpretable clustering (C5): every voter is
// assigned to one of 2-5 groups, chosen by silhouette score with a
// preference for fewer groups.
type Group struct {
	Labels     []int // per-voter group label
	Centroids  [][2]float64
	K          int
	Silhouette float64
}

// GroupCluster reduces the voter-level projection directly into 2-5
// interpretable groups (spec.md §4.4 step 1: "cluster the voter-level
// projection — not the base centroids — with k-means... compute
// silhouette s_k"). weights[i] is voter i's weight (its vote count).
// The resulting per-voter labels are independent of any base clustering;
// callers that need a group-per-base-cluster mapping derive it by
// plurality vote over this result (run.assignGroupsToBase).
func GroupCluster(points [][2]float64, weights []float64, seed int64) (*Group, error) {
	bestK := 0
	var bestLabels []int
	var bestCentroids [][2]float64
	var bestScore float64

	maxK := maxGroups
	if maxK > len(points) {
		maxK = len(points)
	}
	if maxK < minGroups {
		maxK = minGroups
	}

	for k := minGroups; k <= maxK; k++ {
		if k > len(points) {
			break
		}
		result, err := Run(points, weights, k, DefaultKMeansOptions(seed+int64(k)))
		if err != nil {
			continue
		}

		score, err := metrics.Silhouette(points, result.Labels)
		if err != nil {
			continue
		}

		if bestK == 0 || score > bestScore+parsimonyBias {
			bestK = k
			bestLabels = result.Labels
			bestCentroids = result.Centroids
			bestScore = score
		}
	}

	if bestK == 0 {
		// No candidate k produced a valid silhouette (e.g. every voter
		// projected to the same point for every k); fall back to the
		// smallest group count with all voters in it.
		bestK = minGroups
		bestLabels = make([]int, len(points))
		bestCentroids = [][2]float64{{0, 0}}
	}

	return &Group{Labels: bestLabels, Centroids: bestCentroids, K: bestK, Silhouette: bestScore}, nil
}
