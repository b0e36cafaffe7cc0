package vote

import "errors"

// ErrInvalidOpinion is the sentinel for an Opinion byte that is not one
// of Positive, Negative, Neutral. No function in this package returns
// it; Valid reports the same condition as a bool.
var ErrInvalidOpinion = errors.New("vote: invalid opinion")

// Valid reports whether o is one of the three recognized opinions.
func (o Opinion) Valid() bool {
	switch o {
	case Positive, Negative, Neutral:
		return true
	default:
		return false
	}
}
