// Package testutil provides testing utilities for closestpair.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded point generators and an exact O(n²) reference
// implementation to check the divide-and-conquer result against.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, -1000, 1000)
//	pts = rng.ClusteredPoints(1000, 8, 50)
//
// # Ground Truth
//
//	want, ok := testutil.BruteForce(pts)
package testutil
