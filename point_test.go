package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoint_Accessors(t *testing.T) {
	t.Parallel()
	p := NewPoint(1.5, -2.25)
	assert.Equal(t, 1.5, p.X())
	assert.Equal(t, -2.25, p.Y())
}

func TestPoint_DistanceTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"unit diagonal", NewPoint(0, 0), NewPoint(1, 1), math.Sqrt2},
		{"3-4-5 triangle", NewPoint(0, 0), NewPoint(3, 4), 5},
		{"horizontal", NewPoint(-2, 7), NewPoint(8, 7), 10},
		{"vertical", NewPoint(1, -1), NewPoint(1, 2), 3},
		{"identical", NewPoint(4.2, -9), NewPoint(4.2, -9), 0},
		{"negative quadrant", NewPoint(-3, -4), NewPoint(0, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.a.DistanceTo(tt.b), 1e-12)
		})
	}
}

func TestPoint_DistanceSymmetric(t *testing.T) {
	t.Parallel()
	pts := []Point{
		NewPoint(0, 0),
		NewPoint(1, 1),
		NewPoint(-3.5, 12),
		NewPoint(1e6, -1e-6),
		NewPoint(0.1, 0.2),
	}
	for _, a := range pts {
		for _, b := range pts {
			assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a), "%s <-> %s", a, b)
		}
	}
}

func TestPoint_DistanceToSelfIsZero(t *testing.T) {
	t.Parallel()
	for _, p := range []Point{NewPoint(0, 0), NewPoint(-7, 3.3), NewPoint(1e300, 1e300)} {
		assert.Zero(t, p.DistanceTo(p), "%s", p)
	}
}

func TestPoint_DistanceCollinear(t *testing.T) {
	t.Parallel()
	a := NewPoint(0, 0)
	b := NewPoint(1, 2)
	c := NewPoint(3, 6)
	assert.InDelta(t, a.DistanceTo(c), a.DistanceTo(b)+b.DistanceTo(c), 1e-9)
}

func TestPoint_DistanceNonNegative(t *testing.T) {
	t.Parallel()
	a := NewPoint(5, 5)
	b := NewPoint(-5, -5)
	assert.GreaterOrEqual(t, a.DistanceTo(b), 0.0)
	assert.GreaterOrEqual(t, b.DistanceTo(a), 0.0)
}

func TestPoint_DistanceLargeCoordinates(t *testing.T) {
	t.Parallel()
	// dx*dx overflows here but the distance itself is representable.
	a := NewPoint(-1e200, 0)
	b := NewPoint(1e200, 0)
	assert.InEpsilon(t, 2e200, a.DistanceTo(b), 1e-12)

	far := NewPoint(math.MaxFloat64, 0)
	assert.True(t, math.IsInf(far.DistanceTo(NewPoint(-math.MaxFloat64, 0)), 1))
}

func TestPoint_NonFinitePropagates(t *testing.T) {
	t.Parallel()
	nan := NewPoint(math.NaN(), 0)
	assert.True(t, math.IsNaN(nan.DistanceTo(NewPoint(0, 0))))

	inf := NewPoint(math.Inf(1), 0)
	assert.True(t, math.IsInf(inf.DistanceTo(NewPoint(0, 0)), 1))
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(0, 0)", NewPoint(0, 0).String())
	assert.Equal(t, "(1.5, -2)", NewPoint(1.5, -2).String())
}
