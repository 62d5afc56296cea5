package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jward/planar"
	"github.com/jward/planar/internal/runtime"
	"github.com/jward/planar/scripts"
)

var flagScriptsDir string

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a Risor script with point and circle host functions",
	Long: "Runs a .risor script and prints the value of its final expression. " +
		"Paths that exist on disk are loaded from disk; other names resolve against the bundled scripts.",
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVar(&flagScriptsDir, "scripts-dir", "", "load scripts from disk path instead of embedded")
}

func runScript(cmd *cobra.Command, args []string) error {
	rt, path := newRuntime(args[0])

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	val, err := rt.RunScript(ctx, path, nil)
	if err != nil {
		return outputError(cmd, "run", err)
	}

	return outputResult(cmd, CLIResult{
		Command: "run",
		Results: toCLIValue(val),
		text:    describeValue(val),
	})
}

// newRuntime picks the script source: --scripts-dir, then an existing file
// on disk, then the bundled scripts.
func newRuntime(script string) (*runtime.Runtime, string) {
	opts := []runtime.Option{
		runtime.WithStrict(flagStrict),
		runtime.WithLogWriter(os.Stderr),
	}

	switch {
	case flagScriptsDir != "":
		opts = append(opts, runtime.WithScriptsDir(flagScriptsDir))
	case fileExists(script):
		abs, err := filepath.Abs(script)
		if err == nil {
			script = abs
		}
		opts = append(opts, runtime.WithScriptsDir(filepath.Dir(script)))
	default:
		opts = append(opts, runtime.WithFS(scripts.FS))
	}
	return runtime.New(opts...), script
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// toCLIValue converts script results into JSON-friendly values.
func toCLIValue(v any) any {
	switch s := v.(type) {
	case planar.Point:
		return toCLIPoint(s)
	case planar.Circle:
		return toCLICircle(s)
	case float64:
		return Number(s)
	}
	return v
}

// describeValue renders a script result for --format text.
func describeValue(v any) string {
	switch s := v.(type) {
	case planar.Point:
		return s.String()
	case planar.Circle:
		return describeCircle(s)
	case float64:
		return formatNumber(s)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
