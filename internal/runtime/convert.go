package runtime

import (
	"fmt"

	"github.com/risor-io/risor/object"

	"github.com/jward/planar"
)

// --- Argument conversion helpers ---

func toFloat64(obj object.Object) (float64, error) {
	switch v := obj.(type) {
	case *object.Float:
		return v.Value(), nil
	case *object.Int:
		return float64(v.Value()), nil
	}
	return 0, fmt.Errorf("expected number, got %s", obj.Type())
}

// floatArgs converts each argument to float64, naming the offending
// parameter on failure.
func floatArgs(fn string, names []string, args []object.Object) ([]float64, *object.Error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := toFloat64(arg)
		if err != nil {
			return nil, object.Errorf("%s: %s: %v", fn, names[i], err)
		}
		out[i] = f
	}
	return out, nil
}

// shapeOf unwraps a proxied point or circle into its planar value.
func shapeOf(obj object.Object) (any, error) {
	proxy, ok := obj.(*object.Proxy)
	if !ok {
		return nil, fmt.Errorf("expected point or circle, got %s", obj.Type())
	}
	switch v := proxy.Interface().(type) {
	case *pointValue:
		return v.p, nil
	case *circleValue:
		return v.c, nil
	}
	return nil, fmt.Errorf("expected point or circle, got %T", proxy.Interface())
}

// positionOf returns the point a shape is located at.
func positionOf(obj object.Object) (planar.Point, error) {
	shape, err := shapeOf(obj)
	if err != nil {
		return planar.Point{}, err
	}
	if c, ok := shape.(planar.Circle); ok {
		return c.Center(), nil
	}
	return shape.(planar.Point), nil
}

type validator interface {
	Validate() error
}

func validatorOf(obj object.Object) (validator, error) {
	shape, err := shapeOf(obj)
	if err != nil {
		return nil, err
	}
	return shape.(validator), nil
}

func shapeName(shape any) string {
	switch shape.(type) {
	case planar.Point:
		return "point"
	case planar.Circle:
		return "circle"
	}
	return fmt.Sprintf("%T", shape)
}
