package distance

import (
	"math"
	"math/bits"

	"github.com/hupe1980/closestpair/model"
)

// MaxAxisSquared is the largest possible squared difference along one axis,
// (MaxInt32 - MinInt32)^2.
const MaxAxisSquared uint64 = (1<<32 - 1) * (1<<32 - 1)

// Squared calculates (a.X-b.X)^2 + (a.Y-b.Y)^2.
// The result saturates at math.MaxUint64.
func Squared(a, b model.Point) uint64 {
	sum, carry := bits.Add64(AxisSquared(a.X, b.X), AxisSquared(a.Y, b.Y), 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// AxisSquared returns (a-b)^2 computed without overflow.
func AxisSquared(a, b int32) uint64 {
	d := Abs(a, b)
	return d * d
}

// Abs returns |a-b| widened to 64 bits.
func Abs(a, b int32) uint64 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}
