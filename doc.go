// Package planar provides immutable 2D geometric values: a [Point] with a
// Euclidean distance metric, and a [Circle] that owns a center point and a
// radius.
//
// # Usage
//
//	a := planar.NewPoint(0, 0)
//	b := planar.NewPoint(3, 4)
//	d := a.DistanceTo(b) // 5
//
//	c := planar.NewCircle(0, 0, 2)
//	c.Area() // 4π
//
// # Validation
//
// Constructors accept any float64 and never fail. NaN and infinite inputs
// propagate through later computations per IEEE-754, and a negative radius
// still yields a positive area. Callers that want stricter inputs call
// [Point.Validate] or [Circle.Validate], which report failures wrapping
// [ErrInvalidArgument].
//
// # Scripting
//
// The internal/runtime package exposes these values to Risor scripts, and
// cmd/planar wraps both behind a small CLI.
package planar
