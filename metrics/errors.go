package metrics

import "errors"

var (
	// ErrNoVotes is returned when a consensus or pattern computation is
	// given an empty opinion set.
	ErrNoVotes = errors.New("metrics: no votes supplied")
	// ErrInsufficientPoints is returned when silhouette scoring is given
	// fewer than two clusters or fewer points than clusters.
	ErrInsufficientPoints = errors.New("metrics: insufficient points for silhouette scoring")
)
