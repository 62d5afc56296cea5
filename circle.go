package planar

import "math"

// Circle is an immutable circle: a center point plus a radius.
//
// Circle is not a Point. It owns one as its center and forwards the
// coordinate accessors to it.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns a circle centered at (x, y). A negative radius is stored
// as given; use Validate to reject it.
func NewCircle(x, y, radius float64) Circle {
	return Circle{center: NewPoint(x, y), radius: radius}
}

// Center returns the circle's center point.
func (c Circle) Center() Point { return c.center }

// X returns the horizontal position of the center.
func (c Circle) X() float64 { return c.center.X() }

// Y returns the vertical position of the center.
func (c Circle) Y() float64 { return c.center.Y() }

// Radius returns the radius as constructed.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r². It is recomputed on every call.
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// DistanceTo returns the distance from the circle's center to p.
func (c Circle) DistanceTo(p Point) float64 {
	return c.center.DistanceTo(p)
}

// Validate reports whether the center is finite and the radius is a finite,
// non-negative number.
func (c Circle) Validate() error {
	if err := c.center.Validate(); err != nil {
		return err
	}
	if err := checkFinite("radius", c.radius); err != nil {
		return err
	}
	if c.radius < 0 {
		return invalidf("radius %s is negative", formatFloat(c.radius))
	}
	return nil
}

func (c Circle) String() string {
	return "circle(" + c.center.String() + ", r=" + formatFloat(c.radius) + ")"
}
