package closestpair

import "errors"

var (
	// ErrNoPair is returned when the point set has fewer than two points,
	// so no distance exists.
	ErrNoPair = errors.New("closestpair: fewer than two points")
)
