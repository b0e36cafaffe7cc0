package projection

import "errors"

// ErrNumerical is returned when the underlying eigendecomposition fails
// to converge (spec.md §4.2 Failure; taxonomy §7 Numerical).
var ErrNumerical = errors.New("projection: numerical failure (eigendecomposition did not converge)")
