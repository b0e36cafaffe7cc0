package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseAtSetRoundTrip(t *testing.T) {
	m, err := NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 1.5))
	require.NoError(t, m.Set(1, 2, -2.5))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -2.5, v)
}

func TestDenseOutOfRange(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	err = m.Set(-1, 0, 1.0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := NewDense(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewDense(3, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDenseClone(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 3.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 99.0))

	v, _ := m.At(0, 0)
	require.Equal(t, 3.0, v)
}

func TestDenseCol(t *testing.T) {
	m, err := NewDense(3, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, 1, float64(i)))
	}
	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, col)
}
