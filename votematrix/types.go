package votematrix

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/opinionmap/voteclust/voter"
)

// Matrix is the sparse voter×item vote matrix. Rows are indexed by
// voter, columns by item; only explicitly-present entries are stored.
// Present[i] marks which columns of row i are explicitly set, so a
// stored 0.0 (which cannot occur under the ε encoding, but could under
// a caller-supplied override) is never confused with "missing".
type Matrix struct {
	Values   []map[int]float64 // Values[row][col] = encoded opinion
	Present  []*bitset.BitSet  // Present[row].Test(col) == explicitly voted
	RowIndex map[voter.Identity]int
	ColIndex map[string]int
	RowNNZ   []int // votes cast per voter, used as k-means weights
}

// NVoters returns the number of surviving voters (rows).
func (m *Matrix) NVoters() int { return len(m.Values) }

// NItems returns the number of distinct items referenced (columns).
func (m *Matrix) NItems() int { return len(m.ColIndex) }

// At returns the stored value at (row, col) and whether it was
// explicitly present. A missing entry returns (0, false).
func (m *Matrix) At(row, col int) (float64, bool) {
	if row < 0 || row >= len(m.Values) {
		return 0, false
	}
	if !m.Present[row].Test(uint(col)) {
		return 0, false
	}
	return m.Values[row][col], true
}

// set records an explicit entry, growing the presence bitset as needed.
func (m *Matrix) set(row, col int, value float64) {
	if m.Values[row] == nil {
		m.Values[row] = make(map[int]float64)
	}
	m.Values[row][col] = value
	m.Present[row].Set(uint(col))
}
