// Package pkg provides the core libraries for importgraph import tracing.
//
// # Overview
//
// Importgraph observes module imports as they happen and records them as a
// directed graph. The pkg directory is organized around that flow:
//
//	Root module names
//	         ↓
//	    [trace] package (edge recording around every load)
//	         ↓
//	    [loader/python] package (resolve, scan, replay imports)
//	         ↓
//	    [graph] package (dedup, DOT/JSON emission)
//	         ↓
//	    [render] package (SVG/PDF/PNG output)
//
// # Quick Start
//
// Trace a module and emit DOT:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/mwalther/importgraph/pkg/graph"
//	    "github.com/mwalther/importgraph/pkg/loader/python"
//	    "github.com/mwalther/importgraph/pkg/trace"
//	)
//
//	ldr := python.New([]string{"src"})
//	g := graph.New()
//	tracer := trace.New(ldr, g)
//	ldr.SetImporter(tracer) // nested imports route back through the tracer
//
//	_, err := tracer.Load(context.Background(), "app.main")
//	if err != nil {
//	    // handle
//	}
//	graph.WriteDOT(os.Stdout, g, graph.DOTOptions{})
//
// # Main Packages
//
// [trace] - The import interceptor. Wraps any [loader.Loader] and records an
// (importer, imported) edge for every attempted load, including failures and
// loader cache hits.
//
// [loader] - The Loader capability contract. [loader/python] is the concrete
// implementation: dotted-name resolution against search paths, import
// statement scanning, module memoization, and directory discovery.
//
// [graph] - Insertion-ordered graph recorder with DOT and JSON emission.
//
// [render] - DOT to SVG via Graphviz, with PDF/PNG conversion through
// rsvg-convert.
//
// [cache] - File-backed artifact cache keyed by content hash, used to skip
// repeated renders of the same graph.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hook interfaces with no-op defaults for trace, loader,
// and cache events.
//
// [trace]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/trace
// [loader]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/loader
// [loader/python]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/loader/python
// [graph]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/graph
// [render]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/render
// [cache]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mwalther/importgraph/pkg/observability
package pkg
