package matrix

// Transpose returns mᵀ as a new Dense. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}
	return out, nil
}

// Mul returns a×b. Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			rowB := k * b.c
			rowOut := i * out.c
			for j := 0; j < b.c; j++ {
				out.data[rowOut+j] += aik * b.data[rowB+j]
			}
		}
	}
	return out, nil
}

// Scale returns α*m. Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out, nil
}

// MatVec returns y = m*x. Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.c {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var sum float64
		row := i * m.c
		for j := 0; j < m.c; j++ {
			sum += m.data[row+j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}
