package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/risor-io/risor/object"

	"github.com/jward/planar"
)

// makePointFn creates the "point" host function.
//
// point(x, y) → point
func makePointFn(strict bool) *object.Builtin {
	return object.NewBuiltin("point", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("point", 2, len(args))
		}
		coords, errObj := floatArgs("point", []string{"x", "y"}, args)
		if errObj != nil {
			return errObj
		}

		p := planar.NewPoint(coords[0], coords[1])
		if strict {
			if err := p.Validate(); err != nil {
				return object.Errorf("point: %v", err)
			}
		}
		return proxyShape("point", &pointValue{p: p})
	})
}

// makeCircleFn creates the "circle" host function.
//
// circle(x, y, radius) → circle
func makeCircleFn(strict bool) *object.Builtin {
	return object.NewBuiltin("circle", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 3 {
			return object.NewArgsError("circle", 3, len(args))
		}
		vals, errObj := floatArgs("circle", []string{"x", "y", "radius"}, args)
		if errObj != nil {
			return errObj
		}

		c := planar.NewCircle(vals[0], vals[1], vals[2])
		if strict {
			if err := c.Validate(); err != nil {
				return object.Errorf("circle: %v", err)
			}
		}
		return proxyShape("circle", &circleValue{c: c})
	})
}

// makeDistanceFn creates the "distance" host function. Circles are measured
// from their center.
//
// distance(a, b) → float
func makeDistanceFn() *object.Builtin {
	return object.NewBuiltin("distance", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("distance", 2, len(args))
		}
		a, err := positionOf(args[0])
		if err != nil {
			return object.Errorf("distance: first argument: %v", err)
		}
		b, err := positionOf(args[1])
		if err != nil {
			return object.Errorf("distance: second argument: %v", err)
		}
		return object.NewFloat(a.DistanceTo(b))
	})
}

// makeAreaFn creates the "area" host function.
//
// area(circle) → float
func makeAreaFn() *object.Builtin {
	return object.NewBuiltin("area", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("area", 1, len(args))
		}
		shape, err := shapeOf(args[0])
		if err != nil {
			return object.Errorf("area: %v", err)
		}
		c, ok := shape.(planar.Circle)
		if !ok {
			return object.Errorf("area: expected circle, got %s", shapeName(shape))
		}
		return object.NewFloat(c.Area())
	})
}

// makeValidateFn creates "validate", which raises when the shape fails
// validation and returns nil otherwise.
//
// validate(shape) → nil
func makeValidateFn() *object.Builtin {
	return object.NewBuiltin("validate", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("validate", 1, len(args))
		}
		v, err := validatorOf(args[0])
		if err != nil {
			return object.Errorf("validate: %v", err)
		}
		if err := v.Validate(); err != nil {
			return object.Errorf("validate: %v", err)
		}
		return object.Nil
	})
}

// makeIsValidFn creates "is_valid".
//
// is_valid(shape) → bool
func makeIsValidFn() *object.Builtin {
	return object.NewBuiltin("is_valid", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("is_valid", 1, len(args))
		}
		v, err := validatorOf(args[0])
		if err != nil {
			return object.Errorf("is_valid: %v", err)
		}
		return object.NewBool(v.Validate() == nil)
	})
}

func proxyShape(fn string, v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		return object.Errorf("%s: proxy error: %v", fn, err)
	}
	return p
}

// logObject provides log.info/warn/error methods for Risor scripts.
type logObject struct {
	prefix string
	w      io.Writer
}

func (l *logObject) Info(msg string) {
	fmt.Fprintf(l.w, "[%s] INFO: %s\n", l.prefix, msg)
}

func (l *logObject) Warn(msg string) {
	fmt.Fprintf(l.w, "[%s] WARN: %s\n", l.prefix, msg)
}

func (l *logObject) Error(msg string) {
	fmt.Fprintf(l.w, "[%s] ERROR: %s\n", l.prefix, msg)
}
