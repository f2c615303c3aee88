package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/closestpair/distance"
	"github.com/hupe1980/closestpair/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shuffle randomly permutes pts in place.
func (r *RNG) Shuffle(pts []model.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
}

// int32In returns a value in [minVal, maxVal]. Caller holds the lock.
func (r *RNG) int32In(minVal, maxVal int32) int32 {
	span := int64(maxVal) - int64(minVal) + 1
	return int32(int64(minVal) + r.rand.Int63n(span))
}

// UniformPoints generates num points with both coordinates in [minVal, maxVal].
func (r *RNG) UniformPoints(num int, minVal, maxVal int32) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, num)
	for i := range pts {
		pts[i] = model.P(r.int32In(minVal, maxVal), r.int32In(minVal, maxVal))
	}
	return pts
}

// FullRangePoints generates num points anywhere in the int32 plane.
func (r *RNG) FullRangePoints(num int) []model.Point {
	return r.UniformPoints(num, math.MinInt32, math.MaxInt32)
}

// ClusteredPoints generates num points around random centres.
// Each point lies within spread of its centre on both axes.
func (r *RNG) ClusteredPoints(num, clusters int, spread int32) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	const bound = 1 << 24
	centres := make([]model.Point, clusters)
	for i := range centres {
		centres[i] = model.P(r.int32In(-bound, bound), r.int32In(-bound, bound))
	}

	pts := make([]model.Point, num)
	for i := range pts {
		c := centres[i%clusters]
		pts[i] = c.Translate(r.int32In(-spread, spread), r.int32In(-spread, spread))
	}
	return pts
}

// CollinearPoints generates num distinct points on the vertical line x = x0
// in random order. Every split of the recursion has the same x.
func (r *RNG) CollinearPoints(num int, x0 int32) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, num)
	y := int32(0)
	for i := range pts {
		y += 1 + r.int32In(0, 16)
		pts[i] = model.P(x0, y)
	}
	r.rand.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
	return pts
}

// WithDuplicate returns a copy of pts with one randomly chosen point repeated
// at a random position. pts must not be empty.
func (r *RNG) WithDuplicate(pts []model.Point) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Point, 0, len(pts)+1)
	out = append(out, pts...)
	dup := pts[r.rand.Intn(len(pts))]
	at := r.rand.Intn(len(out) + 1)
	out = append(out, model.Point{})
	copy(out[at+1:], out[at:])
	out[at] = dup
	return out
}

// BruteForce computes the exact minimum squared distance by comparing every
// pair. ok is false for fewer than two points. pts is not modified.
func BruteForce(pts []model.Point) (uint64, bool) {
	if len(pts) < 2 {
		return 0, false
	}
	best := uint64(math.MaxUint64)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := distance.Squared(pts[i], pts[j]); d < best {
				best = d
			}
		}
	}
	return best, true
}

// Clone returns a copy of pts. The closestpair Finder takes ownership of its
// input, so tests clone before handing points over.
func Clone(pts []model.Point) []model.Point {
	out := make([]model.Point, len(pts))
	copy(out, pts)
	return out
}
