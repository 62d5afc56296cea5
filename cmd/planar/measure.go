package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jward/planar"
)

var distanceCmd = &cobra.Command{
	Use:   "distance <x1> <y1> <x2> <y2>",
	Short: "Euclidean distance between two points",
	Args:  cobra.ExactArgs(4),
	RunE:  runDistance,
}

var areaCmd = &cobra.Command{
	Use:   "area <x> <y> <radius>",
	Short: "Area of a circle",
	Args:  cobra.ExactArgs(3),
	RunE:  runArea,
}

func init() {
	// Stop flag parsing at the first coordinate so "area 0 0 -1" reads -1
	// as a radius. Use "--" when the first coordinate is negative.
	distanceCmd.Flags().SetInterspersed(false)
	areaCmd.Flags().SetInterspersed(false)
}

func runDistance(cmd *cobra.Command, args []string) error {
	vals, err := parseFloatArgs(args, "x1", "y1", "x2", "y2")
	if err != nil {
		return outputError(cmd, "distance", err)
	}

	a := planar.NewPoint(vals[0], vals[1])
	b := planar.NewPoint(vals[2], vals[3])
	if flagStrict {
		for _, p := range []planar.Point{a, b} {
			if err := p.Validate(); err != nil {
				return outputError(cmd, "distance", err)
			}
		}
	}

	d := a.DistanceTo(b)
	return outputResult(cmd, CLIResult{
		Command: "distance",
		Results: CLIDistance{
			From:     toCLIPoint(a),
			To:       toCLIPoint(b),
			Distance: Number(d),
		},
		text: formatNumber(d),
	})
}

func runArea(cmd *cobra.Command, args []string) error {
	vals, err := parseFloatArgs(args, "x", "y", "radius")
	if err != nil {
		return outputError(cmd, "area", err)
	}

	c := planar.NewCircle(vals[0], vals[1], vals[2])
	if flagStrict {
		if err := c.Validate(); err != nil {
			return outputError(cmd, "area", err)
		}
	}

	return outputResult(cmd, CLIResult{
		Command: "area",
		Results: toCLICircle(c),
		text:    describeCircle(c),
	})
}

// parseFloatArgs parses positional arguments, naming the bad one on failure.
func parseFloatArgs(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: must be a number", names[i], arg)
		}
		out[i] = f
	}
	return out, nil
}

func toCLIPoint(p planar.Point) CLIPoint {
	return CLIPoint{X: Number(p.X()), Y: Number(p.Y())}
}

func toCLICircle(c planar.Circle) CLICircle {
	return CLICircle{
		Center: toCLIPoint(c.Center()),
		Radius: Number(c.Radius()),
		Area:   Number(c.Area()),
	}
}

func describeCircle(c planar.Circle) string {
	return c.String() + " area=" + formatNumber(c.Area())
}
