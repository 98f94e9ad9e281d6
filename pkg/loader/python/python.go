package python

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwalther/importgraph/pkg/errors"
	"github.com/mwalther/importgraph/pkg/loader"
	"github.com/mwalther/importgraph/pkg/observability"
)

// SourceLoader loads Python modules from source trees.
//
// Names are resolved against the configured search paths the way the Python
// import system resolves them against sys.path: "a.b.c" maps to a/b/c.py or
// to the package a/b/c/__init__.py. Loading a module "executes" its body in
// the only sense that matters for import tracing - every import statement in
// the file is replayed through the configured importer, and loaded modules
// are memoized so a body is processed at most once per run.
//
// SourceLoader is not safe for concurrent use.
type SourceLoader struct {
	paths    []string
	importer loader.Loader
	modules  map[string]*loader.Module
}

// New creates a SourceLoader searching the given root directories in order.
func New(searchPaths []string) *SourceLoader {
	l := &SourceLoader{
		paths:   searchPaths,
		modules: make(map[string]*loader.Module),
	}
	l.importer = l
	return l
}

// SetImporter routes nested imports through imp instead of the loader
// itself. Installing a tracer here is what makes transitive imports
// observable; without it only root modules would be seen.
func (l *SourceLoader) SetImporter(imp loader.Loader) {
	if imp != nil {
		l.importer = imp
	}
}

// AddSearchPath appends a root directory to the search paths.
func (l *SourceLoader) AddSearchPath(dir string) {
	l.paths = append(l.paths, dir)
}

// Load resolves and loads the named module.
//
// A module already in the cache is returned as-is without re-processing its
// body, matching interpreter memoization semantics. A fresh module is
// inserted into the cache before its imports are replayed, so cyclic imports
// terminate; when any of its imports fails, the module is evicted again and
// the failure propagates.
func (l *SourceLoader) Load(ctx context.Context, name string) (*loader.Module, error) {
	if err := errors.ValidateModuleName(name); err != nil {
		return nil, err
	}

	if m, ok := l.modules[name]; ok {
		observability.Loader().OnCacheHit(ctx, name)
		return m, nil
	}

	observability.Loader().OnLoadStart(ctx, name)
	start := time.Now()
	m, err := l.load(ctx, name)
	var importCount int
	if m != nil {
		importCount = len(m.Imports)
	}
	observability.Loader().OnLoadComplete(ctx, name, importCount, time.Since(start), err)
	return m, err
}

func (l *SourceLoader) load(ctx context.Context, name string) (*loader.Module, error) {
	path, isPkg, ok := l.resolve(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeModuleNotFound, "no module named %q", name)
	}

	// Importing a submodule first imports its parent package, routed
	// through the entry point so the relationship is observable.
	if parent := parentPackage(name); parent != "" {
		if _, loaded := l.modules[parent]; !loaded {
			if _, err := l.importer.Load(ctx, parent); err != nil {
				return nil, errors.Wrap(errors.ErrCodeLoadError, err, "loading package %q for %q", parent, name)
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLoadError, err, "reading %s", path)
	}

	stmts := scanImports(string(data))
	imports := l.qualify(name, isPkg, stmts)

	m := &loader.Module{Name: name, Path: path, Imports: imports}

	// Registered before the body replays its imports, mirroring how the
	// interpreter registers a module in sys.modules before executing it.
	// Without this, cyclic imports would never terminate.
	l.modules[name] = m

	for _, imp := range imports {
		if _, err := l.importer.Load(ctx, imp); err != nil {
			delete(l.modules, name)
			return nil, errors.Wrap(errors.ErrCodeLoadError, err, "module %q", name)
		}
	}

	return m, nil
}

// Loaded reports whether the named module has been loaded this run.
func (l *SourceLoader) Loaded(name string) bool {
	_, ok := l.modules[name]
	return ok
}

// PathOf returns the file path for a module: the loaded path when the
// module is in the cache, otherwise the path resolution would pick. Returns
// the empty string for unresolvable names.
func (l *SourceLoader) PathOf(name string) string {
	if m, ok := l.modules[name]; ok {
		return m.Path
	}
	if path, _, ok := l.resolve(name); ok {
		return path
	}
	return ""
}

// resolve maps a dotted name to a source file using the search paths.
// Packages (directories holding __init__.py) win over same-named modules,
// matching interpreter resolution order.
func (l *SourceLoader) resolve(name string) (path string, isPkg bool, ok bool) {
	rel := filepath.Join(strings.Split(name, ".")...)
	for _, root := range l.paths {
		init := filepath.Join(root, rel, "__init__.py")
		if fileExists(init) {
			return init, true, true
		}
		file := filepath.Join(root, rel+".py")
		if fileExists(file) {
			return file, false, true
		}
	}
	return "", false, false
}

// qualify turns scanned import statements into fully-qualified module names,
// de-duplicated in source order.
func (l *SourceLoader) qualify(name string, isPkg bool, stmts []importStmt) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(dep string) {
		if dep == "" || dep == name {
			return
		}
		if _, ok := seen[dep]; ok {
			return
		}
		seen[dep] = struct{}{}
		out = append(out, dep)
	}

	for _, s := range stmts {
		if s.plain {
			for _, item := range s.items {
				add(item)
			}
			continue
		}

		base := l.resolveRelative(name, isPkg, s.level, s.base)
		if base == "" && s.level > 0 {
			// Relative import rising above the search root; nothing
			// resolvable to record.
			continue
		}
		for _, item := range s.items {
			if item == "*" {
				add(base)
				continue
			}
			// "from X import y": y is either a submodule of X or an
			// attribute defined in X. Only a file on disk makes it a module.
			qualified := base + "." + item
			if base == "" {
				qualified = item
			}
			if _, _, ok := l.resolve(qualified); ok {
				add(qualified)
			} else {
				add(base)
			}
		}
	}
	return out
}

// resolveRelative computes the absolute module base for a (level, base)
// pair. Level 0 is an absolute import; level 1 is the current package;
// each further level climbs one package.
func (l *SourceLoader) resolveRelative(name string, isPkg bool, level int, base string) string {
	if level == 0 {
		return base
	}

	pkg := name
	if !isPkg {
		pkg = parentPackage(name)
	}
	parts := strings.Split(pkg, ".")
	if pkg == "" {
		parts = nil
	}

	drop := level - 1
	if drop > len(parts) {
		return ""
	}
	parts = parts[:len(parts)-drop]

	if base != "" {
		parts = append(parts, strings.Split(base, ".")...)
	}
	return strings.Join(parts, ".")
}

// parentPackage returns the package containing a dotted name, or "" for a
// top-level module.
func parentPackage(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
