// Package closestpair computes the minimum squared Euclidean distance between
// any two points of a finite set of 2D integer points.
//
// # Quick Start
//
//	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 10, Y: 10}}
//	d, ok := closestpair.New(pts).Value() // 25, true
//
// A Finder takes ownership of the slice it is given and reorders it in place.
// The result is squared, so it is exact for any int32 coordinates.
//
// # Algorithm
//
// Value runs once and caches its result:
//
//  1. Sort by (x, y) and scan neighbours. Two equal points end the search
//     with a result of 0.
//  2. Otherwise split the x-sorted range at its middle index, solve both
//     halves recursively, and merge them back into y order through a single
//     scratch buffer shared by all recursion levels.
//  3. While merging, scan the vertical strip around the split line. Points
//     closer to the line than the current best are compared against earlier
//     strip points until the y gap alone rules out an improvement.
//  4. Ranges of at most five points are compared pairwise.
//
// The total cost is O(n log n) time and O(n) extra memory.
//
// # No Result
//
// Sets with fewer than two points have no pair. Value reports this with
// ok == false and Distance returns ErrNoPair; no sentinel distance is used.
//
// # Observability
//
//	metrics := &closestpair.BasicMetricsCollector{}
//	f := closestpair.New(pts,
//	    closestpair.WithLogger(closestpair.NewTextLogger(os.Stderr, slog.LevelDebug)),
//	    closestpair.WithMetricsCollector(metrics),
//	)
package closestpair
