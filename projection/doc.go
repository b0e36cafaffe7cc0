// Package projection implements the sparsity-aware 2D PCA described in
// spec.md §4.2 (C3): column-wise mean centering over observed entries
// only, a standard eigendecomposition-based PCA keeping the first two
// components, and a per-voter rescaling by sqrt(N_items / votes_cast)
// that pushes sparse voters outward so low-participation voters don't
// collapse into an artificial "everyone is centrist" hub.
//
// The eigendecomposition itself is delegated to matrix.Eigen (a ported
// Jacobi routine); this package owns only the sparsity-aware centering
// and the voter-level rescaling that make it a voting-specific PCA
// rather than a generic one.
package projection
