package cluster

import "errors"

// ErrTooFewPoints is returned when k exceeds the number of points to cluster.
var ErrTooFewPoints = errors.New("cluster: fewer points than requested clusters")
