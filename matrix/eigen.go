package matrix

import (
	"fmt"
	"math"
)

// Eigen performs Jacobi eigenvalue decomposition of a real symmetric
// matrix m. It returns the eigenvalues and a matrix Q whose columns are
// the corresponding eigenvectors. tol is the convergence threshold on
// the largest off-diagonal magnitude; maxIter caps the number of sweeps,
// one sweep being n(n-1)/2 rotations, each zeroing the largest remaining
// off-diagonal element.
//
// Complexity: O(maxIter * n^4) worst case, O(n^2) space.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrNonSquare)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, fmt.Errorf("Eigen: %w", ErrNotSymmetric)
			}
		}
	}

	A := m.Clone()
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = Q.Set(i, i, 1.0)
	}

	converged := false
	maxRotations := maxIter * max(1, n*(n-1)/2)
	for iter := 0; iter < maxRotations; iter++ {
		var p, q int
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ := A.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff = math.Abs(off)
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app, _ := A.At(p, p)
		aqq, _ := A.At(q, q)
		apq, _ := A.At(p, q)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, _ := A.At(i, p)
			aiq, _ := A.At(i, q)
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			_ = A.Set(i, p, newIP)
			_ = A.Set(p, i, newIP)
			_ = A.Set(i, q, newIQ)
			_ = A.Set(q, i, newIQ)
		}
		_ = A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		_ = A.Set(p, q, 0.0)
		_ = A.Set(q, p, 0.0)

		for i := 0; i < n; i++ {
			qip, _ := Q.At(i, p)
			qiq, _ := Q.At(i, q)
			_ = Q.Set(i, p, c*qip-s*qiq)
			_ = Q.Set(i, q, s*qip+c*qiq)
		}
	}
	if !converged {
		return nil, nil, ErrEigenFailed
	}

	eigenvalues := make([]float64, n)
	for i := 0; i < n; i++ {
		eigenvalues[i], _ = A.At(i, i)
	}
	return eigenvalues, Q, nil
}
