package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDense(t *testing.T, rows, cols int, vals []float64) *Dense {
	t.Helper()
	m, err := NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}
	return m
}

func TestTranspose(t *testing.T) {
	m := buildDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, _ := tr.At(2, 1)
	require.Equal(t, 6.0, v)
}

func TestMul(t *testing.T) {
	a := buildDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := buildDense(t, 2, 2, []float64{5, 6, 7, 8})
	out, err := Mul(a, b)
	require.NoError(t, err)
	v00, _ := out.At(0, 0)
	v01, _ := out.At(0, 1)
	require.Equal(t, 19.0, v00)
	require.Equal(t, 22.0, v01)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := buildDense(t, 2, 3, make([]float64, 6))
	b := buildDense(t, 2, 2, make([]float64, 4))
	_, err := Mul(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScale(t *testing.T) {
	a := buildDense(t, 1, 2, []float64{2, -3})
	out, err := Scale(a, 2.0)
	require.NoError(t, err)
	v0, _ := out.At(0, 0)
	v1, _ := out.At(0, 1)
	require.Equal(t, 4.0, v0)
	require.Equal(t, -6.0, v1)
}

func TestMatVec(t *testing.T) {
	a := buildDense(t, 2, 2, []float64{1, 0, 0, 1})
	y, err := MatVec(a, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, y)
}
