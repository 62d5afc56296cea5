package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagStrict bool
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "planar",
	Short:         "Distances and areas of 2D points and circles",
	Long:          "Planar measures Euclidean distances between points and areas of circles, directly or through Risor scripts.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "reject non-finite coordinates and negative radii")

	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(runCmd)
}
