package metrics

import "math"

// Silhouette computes the mean silhouette coefficient over points, given a
// label per point (spec.md §4.4 uses this to choose a group count).
// Labels need not be contiguous from zero, but every cluster referenced
// must have at least one point, and at least two clusters must be
// present.
func Silhouette(points [][2]float64, labels []int) (float64, error) {
	if len(points) != len(labels) {
		return 0, ErrInsufficientPoints
	}

	members := make(map[int][]int)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	if len(members) < 2 || len(points) < 2 {
		return 0, ErrInsufficientPoints
	}

	var total float64
	for i := range points {
		own := labels[i]

		a := meanDistanceTo(points, i, members[own], true)

		var b float64
		first := true
		for other, idxs := range members {
			if other == own {
				continue
			}
			d := meanDistanceTo(points, i, idxs, false)
			if first || d < b {
				b = d
				first = false
			}
		}

		s := 0.0
		switch {
		case len(members[own]) <= 1:
			s = 0
		case a < b:
			s = 1 - a/b
		case a > b:
			s = b/a - 1
		}
		total += s
	}
	return total / float64(len(points)), nil
}

func meanDistanceTo(points [][2]float64, i int, idxs []int, excludeSelf bool) float64 {
	var sum float64
	var n int
	for _, j := range idxs {
		if excludeSelf && j == i {
			continue
		}
		dx := points[i][0] - points[j][0]
		dy := points[i][1] - points[j][1]
		sum += math.Sqrt(dx*dx + dy*dy)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
