package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/closestpair/model"
	"github.com/stretchr/testify/assert"
)

func TestSquared(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected uint64
	}{
		{"Identical", model.P(7, 7), model.P(7, 7), 0},
		{"PythagoreanTriple", model.P(0, 0), model.P(3, 4), 25},
		{"Negative", model.P(-1, -1), model.P(1, 1), 8},
		{"Symmetric", model.P(3, 4), model.P(0, 0), 25},
		{"MaxXAxis", model.P(math.MinInt32, 0), model.P(math.MaxInt32, 0), MaxAxisSquared},
		{"MaxYAxis", model.P(0, math.MaxInt32), model.P(0, math.MinInt32), MaxAxisSquared},
		// 2*(2^32-1)^2 exceeds the uint64 range.
		{"Saturates", model.P(math.MinInt32, math.MinInt32), model.P(math.MaxInt32, math.MaxInt32), math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Squared(tt.a, tt.b))
		})
	}
}

func TestAxisSquared(t *testing.T) {
	assert.Equal(t, uint64(0), AxisSquared(5, 5))
	assert.Equal(t, uint64(100), AxisSquared(-5, 5))
	assert.Equal(t, uint64(18446744065119617025), AxisSquared(math.MinInt32, math.MaxInt32))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, uint64(10), Abs(-5, 5))
	assert.Equal(t, uint64(10), Abs(5, -5))
	assert.Equal(t, uint64(1<<32-1), Abs(math.MaxInt32, math.MinInt32))
}

func TestMaxAxisSquaredPlusOneAxisFits(t *testing.T) {
	a := model.P(math.MinInt32, 0)
	b := model.P(math.MaxInt32, 1)
	assert.Equal(t, MaxAxisSquared+1, Squared(a, b))
}
