package main

import (
	"encoding/json"
	"math"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`

	// text is the --format text rendering of Results.
	text string
}

// Number is a float64 that survives JSON encoding when it is not finite:
// NaN and ±Inf are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(formatNumber(f))
	}
	return json.Marshal(f)
}

// CLIPoint is a JSON-friendly point.
type CLIPoint struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// CLIDistance is the result of the distance command.
type CLIDistance struct {
	From     CLIPoint `json:"from"`
	To       CLIPoint `json:"to"`
	Distance Number   `json:"distance"`
}

// CLICircle is the result of the area command.
type CLICircle struct {
	Center CLIPoint `json:"center"`
	Radius Number   `json:"radius"`
	Area   Number   `json:"area"`
}
