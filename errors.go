package planar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every error returned from Validate.
var ErrInvalidArgument = errors.New("planar: invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

func checkFinite(field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return invalidf("%s is NaN", field)
	case math.IsInf(v, 0):
		return invalidf("%s %s is not finite", field, formatFloat(v))
	}
	return nil
}
