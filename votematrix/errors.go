package votematrix

import "errors"

// ErrInsufficientVoters is returned when fewer than min_voters voters
// survive filtering (spec.md §4.1 Failure modes, taxonomy §7).
var ErrInsufficientVoters = errors.New("votematrix: insufficient voters after filtering")
