package runtime

import "github.com/jward/planar"

// pointValue is the script-facing view of a planar.Point. Only methods
// with scalar signatures are exposed so Risor can proxy them directly.
type pointValue struct {
	p planar.Point
}

func (v *pointValue) X() float64 { return v.p.X() }
func (v *pointValue) Y() float64 { return v.p.Y() }
func (v *pointValue) String() string { return v.p.String() }
func (v *pointValue) IsValid() bool { return v.p.Validate() == nil }

// circleValue is the script-facing view of a planar.Circle.
type circleValue struct {
	c planar.Circle
}

func (v *circleValue) X() float64 { return v.c.X() }
func (v *circleValue) Y() float64 { return v.c.Y() }
func (v *circleValue) Radius() float64 { return v.c.Radius() }
func (v *circleValue) Area() float64 { return v.c.Area() }
func (v *circleValue) String() string { return v.c.String() }
func (v *circleValue) IsValid() bool { return v.c.Validate() == nil }

// unwrapResult converts script-facing shape views back into planar values.
func unwrapResult(v any) any {
	switch s := v.(type) {
	case *pointValue:
		return s.p
	case *circleValue:
		return s.c
	}
	return v
}
