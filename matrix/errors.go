package matrix

import "errors"

// Sentinel errors for the matrix package. Algorithms return these directly;
// callers are expected to match them with errors.Is.
var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals Eigen was asked to factor a non-symmetric matrix.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNilMatrix indicates a nil *Dense was used where a value was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates the Jacobi sweep did not converge within maxIter.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)
