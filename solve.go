package closestpair

import (
	"slices"

	"github.com/hupe1980/closestpair/distance"
	"github.com/hupe1980/closestpair/model"
)

// leafSize is the largest range handled by direct pairwise comparison.
const leafSize = 5

// solve finds the closest pair inside points[lo:hi], which must be sorted
// by (x, y). On return the range is sorted by y.
func (f *Finder) solve(lo, hi, depth int) {
	if depth > f.stats.MaxDepth {
		f.stats.MaxDepth = depth
	}

	if hi-lo <= leafSize {
		f.bruteForce(lo, hi)
		slices.SortFunc(f.points[lo:hi], model.CompareY)
		return
	}

	mid := lo + (hi-lo)/2
	// The halves get reordered by y below, so the line is read first.
	midX := f.points[mid].X

	f.solve(lo, mid, depth+1)
	f.solve(mid, hi, depth+1)

	f.merge(lo, mid, hi)
	f.stripScan(lo, hi, midX)
}

// bruteForce compares every pair in points[lo:hi].
func (f *Finder) bruteForce(lo, hi int) {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			f.update(f.points[i], f.points[j])
		}
	}
}

// merge combines the y-sorted ranges [lo, mid) and [mid, hi) into one
// y-sorted range. On equal y the left element goes first.
func (f *Finder) merge(lo, mid, hi int) {
	f.stats.Merges++

	out := f.scratch[:0]
	i, j := lo, mid
	for i < mid && j < hi {
		if f.points[j].Y < f.points[i].Y {
			out = append(out, f.points[j])
			j++
		} else {
			out = append(out, f.points[i])
			i++
		}
	}
	out = append(out, f.points[i:mid]...)
	out = append(out, f.points[j:hi]...)

	copy(f.points[lo:hi], out)
}

// stripScan checks pairs whose points both lie within the current best
// distance of the vertical line x = midX. points[lo:hi] must be y-sorted.
//
// Qualifying points are collected in scratch (the good zone) in y order.
// Each new candidate is compared with the good zone from the most recent
// entry backwards until the y gap alone reaches the bound.
func (f *Finder) stripScan(lo, hi int, midX int32) {
	zone := f.scratch[:0]
	for _, p := range f.points[lo:hi] {
		if distance.AxisSquared(p.X, midX) >= f.result {
			continue
		}
		for k := len(zone) - 1; k >= 0; k-- {
			if distance.AxisSquared(p.Y, zone[k].Y) >= f.result {
				break
			}
			f.update(p, zone[k])
		}
		zone = append(zone, p)
	}
}

// update lowers the running result if a and b are closer.
func (f *Finder) update(a, b Point) {
	f.stats.Evaluations++
	if d := distance.Squared(a, b); d < f.result {
		f.result = d
	}
}
