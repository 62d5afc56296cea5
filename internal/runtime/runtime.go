package runtime

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/importer"
	"github.com/risor-io/risor/object"
)

// Runtime embeds a Risor VM and exposes planar geometry as host functions.
// A Runtime holds no per-script state and may be shared between goroutines.
type Runtime struct {
	scriptsDir string
	fsys       fs.FS
	logWriter  io.Writer
	strict     bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithFS reads scripts, and the modules they import, from fsys. It takes
// precedence over WithScriptsDir.
func WithFS(fsys fs.FS) Option {
	return func(r *Runtime) {
		r.fsys = fsys
	}
}

// WithScriptsDir sets the base directory for relative script paths and
// import statements.
func WithScriptsDir(dir string) Option {
	return func(r *Runtime) {
		r.scriptsDir = dir
	}
}

// WithLogWriter redirects the script log object. Defaults to os.Stderr.
func WithLogWriter(w io.Writer) Option {
	return func(r *Runtime) {
		r.logWriter = w
	}
}

// WithStrict makes the point and circle host functions reject inputs that
// fail validation.
func WithStrict(strict bool) Option {
	return func(r *Runtime) {
		r.strict = strict
	}
}

// New creates a Runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{logWriter: os.Stderr}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunScript evaluates the script at scriptPath. extraGlobals are visible to
// the script alongside the geometry host functions and may shadow them. The
// final expression's value is returned as a Go value, with points and
// circles unwrapped to planar.Point and planar.Circle.
func (r *Runtime) RunScript(ctx context.Context, scriptPath string, extraGlobals map[string]any) (any, error) {
	src, err := r.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}
	return r.eval(ctx, src, scriptPath, extraGlobals)
}

// RunSource is RunScript for source held in memory. Errors are labeled
// "<inline>".
func (r *Runtime) RunSource(ctx context.Context, source string, extraGlobals map[string]any) (any, error) {
	return r.eval(ctx, source, "<inline>", extraGlobals)
}

func (r *Runtime) eval(ctx context.Context, source, label string, extraGlobals map[string]any) (any, error) {
	globals := r.buildGlobals(extraGlobals)

	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}
	if imp := r.buildImporter(globals); imp != nil {
		opts = append(opts, risor.WithImporter(imp))
	}

	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: script %s: %w", label, err)
	}
	if result == nil {
		return nil, nil
	}
	return unwrapResult(result.Interface()), nil
}

// buildImporter resolves "import name" to name.risor in the same place the
// top-level script came from. Imported modules see the same globals.
// Without a script source, imports are not available.
func (r *Runtime) buildImporter(globals map[string]any) importer.Importer {
	globalNames := make([]string, 0, len(globals))
	for name := range globals {
		globalNames = append(globalNames, name)
	}

	if r.fsys != nil {
		return importer.NewFSImporter(importer.FSImporterOptions{
			GlobalNames: globalNames,
			SourceFS:    r.fsys,
			Extensions:  []string{".risor"},
		})
	}
	if r.scriptsDir != "" {
		return importer.NewLocalImporter(importer.LocalImporterOptions{
			GlobalNames: globalNames,
			SourceDir:   r.scriptsDir,
			Extensions:  []string{".risor"},
		})
	}
	return nil
}

// LoadScript returns the source of a script. Paths inside an fs.FS are
// slash-separated and a leading "/" is ignored; on disk, relative paths are
// joined to the scripts directory and absolute paths are used as given.
func (r *Runtime) LoadScript(path string) (string, error) {
	if r.fsys != nil {
		fsPath := strings.TrimPrefix(filepath.ToSlash(path), "/")
		data, err := fs.ReadFile(r.fsys, fsPath)
		if err != nil {
			return "", fmt.Errorf("runtime: loading script %s from fs: %w", fsPath, err)
		}
		return string(data), nil
	}

	fullPath := path
	if !filepath.IsAbs(path) && r.scriptsDir != "" {
		fullPath = filepath.Join(r.scriptsDir, path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("runtime: loading script %s: %w", fullPath, err)
	}
	return string(data), nil
}

// buildGlobals returns the geometry host functions, the log object, and
// extra, with extra winning on name clashes.
func (r *Runtime) buildGlobals(extra map[string]any) map[string]any {
	globals := map[string]any{
		"point":    makePointFn(r.strict),
		"circle":   makeCircleFn(r.strict),
		"distance": makeDistanceFn(),
		"area":     makeAreaFn(),
		"validate": makeValidateFn(),
		"is_valid": makeIsValidFn(),
		"log":      mustProxy(&logObject{prefix: "planar", w: r.logWriter}),
	}
	for k, v := range extra {
		globals[k] = v
	}
	return globals
}

func mustProxy(v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		panic(fmt.Sprintf("runtime: cannot proxy %T: %v", v, err))
	}
	return p
}
