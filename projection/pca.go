package projection

import (
	"math"
	"sort"

	"github.com/opinionmap/voteclust/matrix"
	"github.com/opinionmap/voteclust/vote"
	"github.com/opinionmap/voteclust/votematrix"
)

const (
	// eigenTolerance is the Jacobi sweep convergence threshold.
	eigenTolerance = 1e-9
	// eigenMaxIter caps Jacobi sweeps before treating the factorization
	// as non-convergent (spec.md §4.2 Failure).
	eigenMaxIter = 200
)

// Result is the output of Compute: a 2D coordinate per voter plus the
// fraction of variance the two kept components explain.
type Result struct {
	Coordinates      [][2]float64 // Coordinates[row] = (x, y)
	VarianceExplained [2]float64
}

// Compute runs sparsity-aware PCA over m and returns a 2D projection per
// voter (spec.md §4.2, C3). epsilon must match the value used to encode
// m's neutral votes.
func Compute(m *votematrix.Matrix, epsilon float64) (*Result, error) {
	nVoters := m.NVoters()
	nItems := m.NItems()

	// Step 1: column-wise mean centering over observed entries only.
	colSum := make([]float64, nItems)
	colCount := make([]int, nItems)
	for row := 0; row < nVoters; row++ {
		for col, raw := range m.Values[row] {
			colSum[col] += vote.NumericValue(raw, epsilon)
			colCount[col]++
		}
	}
	colMean := make([]float64, nItems)
	for j := 0; j < nItems; j++ {
		if colCount[j] > 0 {
			colMean[j] = colSum[j] / float64(colCount[j])
		}
	}

	centered, err := matrix.NewDense(nVoters, nItems)
	if err != nil {
		return nil, err
	}
	for row := 0; row < nVoters; row++ {
		for col, raw := range m.Values[row] {
			// Missing entries stay 0 post-centering; only explicitly
			// stored entries get the μ_j subtraction (spec.md §4.2 step 1).
			_ = centered.Set(row, col, vote.NumericValue(raw, epsilon)-colMean[col])
		}
	}

	// Step 2: standard PCA via eigendecomposition of the item covariance,
	// keeping the first two components.
	cov, _, err := covarianceOrZero(centered, nVoters, nItems)
	if err != nil {
		return nil, err
	}
	eigenvalues, eigenvectors, err := matrix.Eigen(cov, eigenTolerance, eigenMaxIter)
	if err != nil {
		return nil, ErrNumerical
	}

	idx := topTwoIndices(eigenvalues)
	var totalVar float64
	for _, v := range eigenvalues {
		totalVar += v
	}

	var varianceExplained [2]float64
	if totalVar > 0 {
		varianceExplained[0] = eigenvalues[idx[0]] / totalVar
		varianceExplained[1] = eigenvalues[idx[1]] / totalVar
	}

	pc1 := make([]float64, nItems)
	pc2 := make([]float64, nItems)
	for j := 0; j < nItems; j++ {
		pc1[j], _ = eigenvectors.At(j, idx[0])
		pc2[j], _ = eigenvectors.At(j, idx[1])
	}

	coords := make([][2]float64, nVoters)
	for row := 0; row < nVoters; row++ {
		var x, y float64
		for j := 0; j < nItems; j++ {
			raw, _ := centered.At(row, j)
			if raw == 0 {
				continue
			}
			x += raw * pc1[j]
			y += raw * pc2[j]
		}
		// Step 3: per-voter rescaling by sqrt(N_items / max(votes_cast,1)).
		scale := math.Sqrt(float64(nItems) / math.Max(float64(m.RowNNZ[row]), 1))
		coords[row] = [2]float64{x * scale, y * scale}
	}

	return &Result{Coordinates: coords, VarianceExplained: varianceExplained}, nil
}

// covarianceOrZero guards matrix.Covariance's Rows()>=2 requirement: a
// degenerate single-voter Run has no variance to speak of, so we return
// a zero covariance matrix instead of failing the whole pipeline on a
// boundary case the clustering stages handle gracefully regardless.
func covarianceOrZero(centered *matrix.Dense, nVoters, nItems int) (*matrix.Dense, []float64, error) {
	if nVoters < 2 {
		zero, err := matrix.NewDense(nItems, nItems)
		if err != nil {
			return nil, nil, err
		}
		return zero, make([]float64, nItems), nil
	}
	return matrix.Covariance(centered)
}

// topTwoIndices returns the indices of the two largest values in vs, in
// descending order. Ties are broken by lowest index for determinism.
func topTwoIndices(vs []float64) [2]int {
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if vs[idx[a]] != vs[idx[b]] {
			return vs[idx[a]] > vs[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if len(idx) == 1 {
		return [2]int{idx[0], idx[0]}
	}
	return [2]int{idx[0], idx[1]}
}
