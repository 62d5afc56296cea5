package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// outputResult writes a CLIResult to the command's stdout in the selected
// format.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		fmt.Fprintln(w, result.text)
		return nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return outputError(cmd, result.Command, fmt.Errorf("encoding result: %w", err))
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(cmd *cobra.Command, command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
