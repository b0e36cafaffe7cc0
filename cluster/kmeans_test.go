package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoBlobPoints() ([][2]float64, []float64) {
	var points [][2]float64
	var weights []float64
	for i := 0; i < 15; i++ {
		points = append(points, [2]float64{10 + float64(i%3)*0.1, 10 + float64(i%2)*0.1})
		weights = append(weights, 1)
	}
	for i := 0; i < 15; i++ {
		points = append(points, [2]float64{-10 - float64(i%3)*0.1, -10 - float64(i%2)*0.1})
		weights = append(weights, 1)
	}
	return points, weights
}

func TestRunSeparatesTwoBlobs(t *testing.T) {
	points, weights := twoBlobPoints()
	result, err := Run(points, weights, 2, DefaultKMeansOptions(42))
	require.NoError(t, err)
	require.Len(t, result.Labels, len(points))

	first := result.Labels[0]
	for i := 0; i < 15; i++ {
		require.Equal(t, first, result.Labels[i])
	}
	other := result.Labels[15]
	require.NotEqual(t, first, other)
	for i := 15; i < 30; i++ {
		require.Equal(t, other, result.Labels[i])
	}
}

func TestRunDeterministicForSameSeed(t *testing.T) {
	points, weights := twoBlobPoints()
	r1, err := Run(points, weights, 2, DefaultKMeansOptions(7))
	require.NoError(t, err)
	r2, err := Run(points, weights, 2, DefaultKMeansOptions(7))
	require.NoError(t, err)
	require.Equal(t, r1.Labels, r2.Labels)
	require.InDelta(t, r1.Inertia, r2.Inertia, 1e-12)
}

func TestRunTooFewPoints(t *testing.T) {
	points := [][2]float64{{0, 0}, {1, 1}}
	weights := []float64{1, 1}
	_, err := Run(points, weights, 5, DefaultKMeansOptions(1))
	require.ErrorIs(t, err, ErrTooFewPoints)
}

func TestRunWeightedCentroidsSkewTowardHeavierPoints(t *testing.T) {
	points := [][2]float64{{0, 0}, {10, 0}}
	weights := []float64{1, 9}
	result, err := Run(points, weights, 1, DefaultKMeansOptions(3))
	require.NoError(t, err)
	require.InDelta(t, 9.0, result.Centroids[0][0], 1e-9)
}
