package planar

import (
	"math"
	"strconv"
)

// Point is an immutable coordinate in 2D space.
type Point struct {
	x float64
	y float64
}

// NewPoint returns the point (x, y). Inputs are stored verbatim.
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the horizontal position.
func (p Point) X() float64 { return p.x }

// Y returns the vertical position.
func (p Point) Y() float64 { return p.y }

// DistanceTo returns the Euclidean distance between p and other. The result
// is never negative and is +Inf when the distance exceeds float64 range.
func (p Point) DistanceTo(other Point) float64 {
	// Hypot avoids overflowing dx*dx for large but finite deltas.
	return math.Hypot(p.x-other.x, p.y-other.y)
}

// Validate reports whether both coordinates are finite.
func (p Point) Validate() error {
	if err := checkFinite("x", p.x); err != nil {
		return err
	}
	return checkFinite("y", p.y)
}

func (p Point) String() string {
	return "(" + formatFloat(p.x) + ", " + formatFloat(p.y) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
