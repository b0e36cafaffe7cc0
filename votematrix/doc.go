// Package votematrix builds the sparse vote matrix from a filtered vote
// stream (spec.md §4.1, C2). It reconciles voter identities, drops
// voters below the minimum-votes threshold, and encodes votes into a
// sparse matrix whose explicit zeros (neutral votes) never get confused
// with missing entries.
//
// Rather than relying on the ε sentinel alone, this implementation
// carries the §9 "parallel presence mask" alternative explicitly: each
// row keeps a github.com/bits-and-blooms/bitset.BitSet marking which
// columns are explicitly present, so a stored value of exactly 0 is
// never ambiguous with an absent entry even if some future caller
// forgets to special-case ε.
package votematrix
