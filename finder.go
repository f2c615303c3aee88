package closestpair

import (
	"math"
	"slices"
	"time"

	"github.com/hupe1980/closestpair/model"
)

// Point is a 2D point with int32 coordinates.
type Point = model.Point

// Stats describes the work done by a Finder.
type Stats struct {
	// Points is the size of the input set.
	Points int
	// Evaluations counts squared-distance evaluations against the running result.
	Evaluations int
	// Merges counts y-merges performed by the recursion.
	Merges int
	// MaxDepth is the deepest recursion level reached (root is 1).
	MaxDepth int
	// Duplicate reports whether the duplicate pre-check decided the result.
	Duplicate bool
	// Runs counts executions of the algorithm. It never exceeds 1.
	Runs int
	// Elapsed is the wall time of the computation.
	Elapsed time.Duration
}

// Finder computes the minimum squared distance between any two points of a set.
//
// A Finder owns its point slice: the slice is reordered in place and released
// once the result is final. Callers must not touch the slice after New.
// A Finder is not safe for concurrent use.
type Finder struct {
	points  []Point
	scratch []Point
	result  uint64
	ok      bool
	done    bool
	stats   Stats
	opts    options
}

// New creates a Finder that takes ownership of points.
func New(points []Point, optFns ...Option) *Finder {
	return &Finder{
		points: points,
		result: math.MaxUint64,
		opts:   applyOptions(optFns),
	}
}

// MinSquaredDistance is a one-shot helper around New(points).Value().
// points is reordered in place.
func MinSquaredDistance(points []Point, optFns ...Option) (uint64, bool) {
	return New(points, optFns...).Value()
}

// Value returns the minimum squared distance over all pairs of points.
// ok is false when the set has fewer than two points.
//
// The first call runs the computation; later calls return the cached result.
func (f *Finder) Value() (dist uint64, ok bool) {
	if !f.done {
		f.compute()
	}
	if !f.ok {
		return 0, false
	}
	return f.result, true
}

// Distance is like Value but reports a missing pair as ErrNoPair.
func (f *Finder) Distance() (uint64, error) {
	d, ok := f.Value()
	if !ok {
		return 0, ErrNoPair
	}
	return d, nil
}

// Stats returns counters for the computation. It is zero until Value is called.
func (f *Finder) Stats() Stats {
	return f.stats
}

func (f *Finder) compute() {
	start := time.Now()
	n := len(f.points)

	f.stats.Points = n
	f.stats.Runs++

	if n >= 2 {
		f.ok = true
		slices.SortFunc(f.points, model.CompareXY)
		if i, found := findDuplicate(f.points); found {
			f.result = 0
			f.stats.Duplicate = true
			f.opts.logger.LogDuplicate(f.opts.ctx, n, f.points[i])
		} else {
			f.scratch = make([]Point, n)
			f.solve(0, n, 1)
		}
	}

	f.done = true
	f.points = nil
	f.scratch = nil
	f.stats.Elapsed = time.Since(start)

	f.opts.logger.LogSolve(f.opts.ctx, f.stats, f.result, f.ok)
	f.opts.metricsCollector.RecordSolve(n, f.stats.Duplicate, f.stats.Elapsed)
}

// findDuplicate scans an (x, y)-sorted slice for two equal neighbours.
func findDuplicate(points []Point) (int, bool) {
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			return i, true
		}
	}
	return 0, false
}
