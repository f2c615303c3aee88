// Package distance provides exact integer distance calculations for 2D points.
//
// Distances are squared Euclidean distances, so no roots or floating point
// arithmetic are involved and ordering is preserved:
//
//	d := distance.Squared(model.P(0, 0), model.P(3, 4)) // 25
//
// Coordinate differences are widened to 64 bits before squaring. A single
// axis term always fits in a uint64; the sum of two maximal terms does not,
// and Squared saturates to math.MaxUint64 in that case.
package distance
