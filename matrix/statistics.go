package matrix

// CenterColumns returns a centered copy Xc = X - mean(X, by column), and
// the column means. Ported from the teacher's impl_statistics.go
// centerColumns kernel. It averages over every row, missing entries
// included; projection does its own observed-entries-only centering and
// reaches this function only through Covariance.
//
// Complexity: O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	if X == nil {
		return nil, nil, ErrNilMatrix
	}
	means := make([]float64, X.c)
	for j := 0; j < X.c; j++ {
		var sum float64
		for i := 0; i < X.r; i++ {
			sum += X.data[i*X.c+j]
		}
		if X.r > 0 {
			means[j] = sum / float64(X.r)
		}
	}
	out := X.Clone()
	for i := 0; i < X.r; i++ {
		row := i * X.c
		for j := 0; j < X.c; j++ {
			out.data[row+j] -= means[j]
		}
	}
	return out, means, nil
}

// Covariance computes the sample covariance of X's columns:
// Cov = (Xcᵀ Xc) / (n-1), returning Cov and the column means. Mirrors
// the teacher's Covariance facade (CenterColumns → Transpose → Mul →
// Scale composition), minus the graph-adjacency surface it otherwise
// shares a package with.
//
// Requires X.Rows() >= 2.
func Covariance(X *Dense) (*Dense, []float64, error) {
	if X == nil {
		return nil, nil, ErrNilMatrix
	}
	if X.r < 2 {
		return nil, nil, ErrDimensionMismatch
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, err
	}
	Xt, err := Transpose(Xc)
	if err != nil {
		return nil, nil, err
	}
	prod, err := Mul(Xt, Xc)
	if err != nil {
		return nil, nil, err
	}
	cov, err := Scale(prod, 1.0/float64(X.r-1))
	if err != nil {
		return nil, nil, err
	}
	return cov, means, nil
}
