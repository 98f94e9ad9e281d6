package trace

import (
	"context"

	"github.com/mwalther/importgraph/pkg/graph"
	"github.com/mwalther/importgraph/pkg/loader"
	"github.com/mwalther/importgraph/pkg/observability"
)

// EdgeFilter decides whether an observed edge is recorded.
// From may be [graph.Root]. Returning false drops the edge but never the
// load itself - filtering is purely about the recorded graph.
type EdgeFilter func(from, to string) bool

// Option configures a Tracer.
type Option func(*Tracer)

// WithFilter installs an edge filter.
func WithFilter(f EdgeFilter) Option {
	return func(t *Tracer) { t.filter = f }
}

// Tracer wraps a [loader.Loader] so every load request - root or transitive -
// is attributed to its importer and recorded as a graph edge before the
// request is delegated.
//
// The tracer is otherwise transparent: the wrapped loader's result, errors,
// and caching behavior pass through unchanged. Nested loads reach the tracer
// when the underlying loader routes its own imports back through it (see
// python.SourceLoader.SetImporter), which is what makes transitive imports
// observable.
//
// A Tracer is built once per run around an explicit graph; it keeps no
// package-level state. It is not safe for concurrent use - imports nest via
// ordinary call-stack recursion on a single goroutine.
type Tracer struct {
	next   loader.Loader
	graph  *graph.Graph
	stack  []string
	filter EdgeFilter
}

// New creates a Tracer that records edges into g and delegates to next.
func New(next loader.Loader, g *graph.Graph, opts ...Option) *Tracer {
	t := &Tracer{next: next, graph: g}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load records the edge (current importer, name) and delegates to the
// wrapped loader.
//
// The importer is the innermost in-flight import, or [graph.Root] when the
// request came straight from the driver. The edge is recorded before
// delegation, so it exists even when the load ultimately fails: an edge
// means "attempted import", not "successful import". A repeated pair is a
// no-op, so loader-level cache hits never duplicate edges yet still get
// their edge - required for diamond-shaped dependency structures.
//
// The name is pushed onto the import stack for the duration of the
// delegated call and popped on every exit path, so sibling imports and
// error recovery always see a correctly restored stack.
func (t *Tracer) Load(ctx context.Context, name string) (*loader.Module, error) {
	from := t.importer()
	if t.filter == nil || t.filter(from, name) {
		if t.graph.AddEdge(graph.Edge{From: from, To: name}) {
			observability.Trace().OnEdge(ctx, from, name)
		}
	}

	t.stack = append(t.stack, name)
	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
	}()

	return t.next.Load(ctx, name)
}

// Graph returns the graph the tracer records into.
func (t *Tracer) Graph() *graph.Graph { return t.graph }

// Depth returns the number of in-flight imports. Outside of a Load call it
// is zero; the invariant holds even after failed loads.
func (t *Tracer) Depth() int { return len(t.stack) }

// importer returns the module currently being loaded, or the root sentinel
// when the import stack is empty.
func (t *Tracer) importer() string {
	if len(t.stack) == 0 {
		return graph.Root
	}
	return t.stack[len(t.stack)-1]
}
