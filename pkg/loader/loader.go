// Package loader defines the module-loading capability that pkg/trace
// instruments.
//
// A [Loader] resolves a fully-qualified module name to a loaded [Module].
// Implementations own name resolution, file reading, and memoization; the
// tracer wraps a Loader without changing any of that behavior. The concrete
// Python source loader lives in the python subpackage.
package loader

import "context"

// Module is a loaded unit of code.
type Module struct {
	// Name is the fully-qualified dotted module name.
	Name string

	// Path is the file the module was loaded from.
	// Empty when the loader has no file backing the module.
	Path string

	// Imports are the fully-qualified names of the modules this module
	// imports directly, in source order.
	Imports []string
}

// Loader resolves a module name to loaded module content.
//
// Load either returns a successfully loaded module - possibly from a cache,
// in which case the module body is not re-processed - or an error. Callers
// must treat a cache hit and a fresh load identically.
type Loader interface {
	Load(ctx context.Context, name string) (*Module, error)
}

// LoadFunc adapts a function to the Loader interface.
type LoadFunc func(ctx context.Context, name string) (*Module, error)

// Load calls f.
func (f LoadFunc) Load(ctx context.Context, name string) (*Module, error) {
	return f(ctx, name)
}
