package cluster

import (
	"math"
	"math/rand"
)

// Result is one k-means clustering outcome.
type Result struct {
	Labels    []int       // Labels[i] = index of the centroid point i was assigned to
	Centroids [][2]float64
	Inertia   float64 // sum of weight_i * squared distance to assigned centroid
}

func dist2(a, b [2]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

// nearestCentroid returns the index of the closest centroid to p,
// breaking ties by the smallest index (spec.md §4.3 tie-break).
func nearestCentroid(p [2]float64, centroids [][2]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centroids {
		d := dist2(p, c)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// kmeansPlusPlusInit seeds k centroids via weighted k-means++: the next
// centroid is chosen with probability proportional to weight * (distance
// to nearest already-chosen centroid)^2.
func kmeansPlusPlusInit(points [][2]float64, weights []float64, k int, rng *rand.Rand) [][2]float64 {
	n := len(points)
	centroids := make([][2]float64, 0, k)
	first := rng.Intn(n)
	centroids = append(centroids, points[first])

	minDist := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d := dist2(p, centroids[len(centroids)-1])
			if len(centroids) == 1 || d < minDist[i] {
				minDist[i] = d
			}
			total += weights[i] * minDist[i]
		}
		if total <= 0 {
			// Degenerate: all remaining points coincide with chosen
			// centroids. Fall back to uniform choice to keep progressing.
			centroids = append(centroids, points[rng.Intn(n)])
			continue
		}
		target := rng.Float64() * total
		var cum float64
		chosen := n - 1
		for i, p := range points {
			cum += weights[i] * minDist[i]
			if cum >= target {
				chosen = i
				break
			}
			_ = p
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

// runOnce performs one Lloyd iteration sequence to convergence or MaxIter.
func runOnce(points [][2]float64, weights []float64, k int, opts KMeansOptions, rng *rand.Rand) *Result {
	centroids := kmeansPlusPlusInit(points, weights, k, rng)
	labels := make([]int, len(points))

	for iter := 0; iter < opts.MaxIter; iter++ {
		changed := false
		for i, p := range points {
			newLabel := nearestCentroid(p, centroids)
			if newLabel != labels[i] {
				labels[i] = newLabel
				changed = true
			}
		}

		sumX := make([]float64, k)
		sumY := make([]float64, k)
		sumW := make([]float64, k)
		for i, p := range points {
			c := labels[i]
			sumX[c] += weights[i] * p[0]
			sumY[c] += weights[i] * p[1]
			sumW[c] += weights[i]
		}
		for c := 0; c < k; c++ {
			if sumW[c] > 0 {
				centroids[c] = [2]float64{sumX[c] / sumW[c], sumY[c] / sumW[c]}
			}
		}

		if !changed && iter > 0 {
			break
		}
	}

	var inertia float64
	for i, p := range points {
		inertia += weights[i] * dist2(p, centroids[labels[i]])
	}
	return &Result{Labels: labels, Centroids: centroids, Inertia: inertia}
}

// Run performs weighted k-means over points with per-point weights,
// using k-means++ seeding, opts.Restarts restarts (lowest inertia kept),
// and opts.MaxIter iterations per restart (spec.md §4.3).
func Run(points [][2]float64, weights []float64, k int, opts KMeansOptions) (*Result, error) {
	if len(points) < k {
		return nil, ErrTooFewPoints
	}
	opts = opts.withDefaults()

	var best *Result
	for r := 0; r < opts.Restarts; r++ {
		rng := rand.New(rand.NewSource(opts.Seed + int64(r)))
		candidate := runOnce(points, weights, k, opts, rng)
		if best == nil || candidate.Inertia < best.Inertia {
			best = candidate
		}
	}
	return best, nil
}
