package trace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwalther/importgraph/pkg/graph"
	"github.com/mwalther/importgraph/pkg/loader"
)

// fakeLoader simulates a module loader with a fixed import table and
// sys.modules-style memoization. Nested imports are routed through the
// importer, exactly like the real source loader.
type fakeLoader struct {
	imports  map[string][]string // module -> direct imports
	failing  map[string]bool     // modules whose load fails
	importer loader.Loader
	loaded   map[string]*loader.Module
	calls    []string // every Load request reaching the fake
}

func newFakeLoader(imports map[string][]string) *fakeLoader {
	f := &fakeLoader{
		imports: imports,
		failing: make(map[string]bool),
		loaded:  make(map[string]*loader.Module),
	}
	f.importer = f
	return f
}

func (f *fakeLoader) Load(ctx context.Context, name string) (*loader.Module, error) {
	f.calls = append(f.calls, name)

	if m, ok := f.loaded[name]; ok {
		return m, nil
	}
	if f.failing[name] {
		return nil, errors.New("boom: " + name)
	}
	deps, ok := f.imports[name]
	if !ok {
		return nil, errors.New("no module named " + name)
	}

	m := &loader.Module{Name: name, Imports: deps}
	f.loaded[name] = m
	for _, dep := range deps {
		if _, err := f.importer.Load(ctx, dep); err != nil {
			delete(f.loaded, name)
			return nil, err
		}
	}
	return m, nil
}

// runTrace wires a tracer around the fake and imports each root in order.
func runTrace(t *testing.T, fake *fakeLoader, roots ...string) (*graph.Graph, error) {
	t.Helper()
	g := graph.New()
	tracer := New(fake, g)
	fake.importer = tracer

	for _, root := range roots {
		if _, err := tracer.Load(context.Background(), root); err != nil {
			return g, err
		}
	}
	return g, nil
}

func wantEdges(t *testing.T, g *graph.Graph, want []graph.Edge) {
	t.Helper()
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("edges = %v, want %v", got, want)
	}
	for i, e := range want {
		if got[i] != e {
			t.Errorf("edge[%d] = %v, want %v", i, got[i], e)
		}
	}
}

func TestRootImportWithTransitiveImports(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"os":  {"sys", "io"},
		"sys": {},
		"io":  {},
	})

	g, err := runTrace(t, fake, "os")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	wantEdges(t, g, []graph.Edge{
		{From: graph.Root, To: "os"},
		{From: "os", To: "sys"},
		{From: "os", To: "io"},
	})
}

func TestTwoRootsWithSharedDependency(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"pkgA": {},
		"pkgB": {"pkgA"},
	})

	g, err := runTrace(t, fake, "pkgA", "pkgB")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	// (ROOT, pkgA) and (pkgB, pkgA) are distinct pairs and both present;
	// neither is duplicated.
	wantEdges(t, g, []graph.Edge{
		{From: graph.Root, To: "pkgA"},
		{From: graph.Root, To: "pkgB"},
		{From: "pkgB", To: "pkgA"},
	})

	// pkgA's body must not have been re-processed: the loader saw the
	// second pkgA request but served it from its cache.
	bodyLoads := 0
	for _, call := range fake.calls {
		if call == "pkgA" {
			bodyLoads++
		}
	}
	if bodyLoads != 2 {
		t.Errorf("pkgA load requests = %d, want 2 (one fresh, one cache hit)", bodyLoads)
	}
}

func TestCacheHitStillRecordsEdge(t *testing.T) {
	// Diamond: top imports left and right, both import shared. The second
	// request for shared is a pure cache hit at the loader, yet the edge
	// (right, shared) must still appear.
	fake := newFakeLoader(map[string][]string{
		"top":    {"left", "right"},
		"left":   {"shared"},
		"right":  {"shared"},
		"shared": {},
	})

	g, err := runTrace(t, fake, "top")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	if !g.HasEdge("left", "shared") {
		t.Error("missing edge (left, shared)")
	}
	if !g.HasEdge("right", "shared") {
		t.Error("missing edge (right, shared) - cache hits must still record edges")
	}
	if g.EdgeCount() != 5 {
		t.Errorf("edge count = %d, want 5", g.EdgeCount())
	}
}

func TestDuplicateRootImport(t *testing.T) {
	fake := newFakeLoader(map[string][]string{"mod": {}})

	g, err := runTrace(t, fake, "mod", "mod")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	wantEdges(t, g, []graph.Edge{{From: graph.Root, To: "mod"}})
}

func TestFailingRootStillRecordsEdge(t *testing.T) {
	fake := newFakeLoader(map[string][]string{})
	fake.failing["doomed"] = true

	g := graph.New()
	tracer := New(fake, g)
	fake.importer = tracer

	_, err := tracer.Load(context.Background(), "doomed")
	if err == nil {
		t.Fatal("expected load failure")
	}
	if !strings.Contains(err.Error(), "doomed") {
		t.Errorf("error should propagate unchanged, got %v", err)
	}

	if !g.HasEdge(graph.Root, "doomed") {
		t.Error("edge to failing module must be recorded (attempted import)")
	}
	if tracer.Depth() != 0 {
		t.Errorf("stack depth after failure = %d, want 0", tracer.Depth())
	}
}

func TestFailingTransitiveImportCleansStack(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"app":  {"bad", "good"},
		"good": {},
	})
	fake.failing["bad"] = true

	g := graph.New()
	tracer := New(fake, g)
	fake.importer = tracer

	_, err := tracer.Load(context.Background(), "app")
	if err == nil {
		t.Fatal("expected failure to propagate from transitive import")
	}
	if tracer.Depth() != 0 {
		t.Errorf("stack depth = %d, want 0", tracer.Depth())
	}

	// Edges recorded before the failure are not retracted.
	if !g.HasEdge(graph.Root, "app") {
		t.Error("missing edge (root, app)")
	}
	if !g.HasEdge("app", "bad") {
		t.Error("missing edge (app, bad)")
	}

	// A later sibling import sees a correctly restored stack.
	if _, err := tracer.Load(context.Background(), "good"); err != nil {
		t.Fatalf("sibling import after failure: %v", err)
	}
	if !g.HasEdge(graph.Root, "good") {
		t.Error("sibling import should originate at the root sentinel")
	}
}

func TestCyclicImports(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})

	g, err := runTrace(t, fake, "a")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	wantEdges(t, g, []graph.Edge{
		{From: graph.Root, To: "a"},
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	})
}

func TestDeepNesting(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"l0": {"l1"},
		"l1": {"l2"},
		"l2": {"l3"},
		"l3": {},
	})

	g, err := runTrace(t, fake, "l0")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	wantEdges(t, g, []graph.Edge{
		{From: graph.Root, To: "l0"},
		{From: "l0", To: "l1"},
		{From: "l1", To: "l2"},
		{From: "l2", To: "l3"},
	})
}

func TestEdgeFilter(t *testing.T) {
	fake := newFakeLoader(map[string][]string{
		"app":        {"vendor.lib", "local"},
		"local":      {},
		"vendor.lib": {},
	})

	g := graph.New()
	tracer := New(fake, g, WithFilter(func(from, to string) bool {
		return !strings.HasPrefix(to, "vendor.")
	}))
	fake.importer = tracer

	if _, err := tracer.Load(context.Background(), "app"); err != nil {
		t.Fatalf("trace: %v", err)
	}

	if g.HasEdge("app", "vendor.lib") {
		t.Error("filtered edge should not be recorded")
	}
	if !g.HasEdge("app", "local") {
		t.Error("unfiltered edge should be recorded")
	}
	// Filtering drops the edge, never the load itself.
	if _, ok := fake.loaded["vendor.lib"]; !ok {
		t.Error("filtered module should still be loaded")
	}
}

func TestTracerIsTransparent(t *testing.T) {
	fake := newFakeLoader(map[string][]string{"m": {}})

	g := graph.New()
	tracer := New(fake, g)
	fake.importer = tracer

	got, err := tracer.Load(context.Background(), "m")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if got != fake.loaded["m"] {
		t.Error("tracer must return the wrapped loader's module unchanged")
	}
}
