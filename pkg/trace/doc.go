// Package trace instruments a module loader so that every import request
// passing through it is recorded as a directed graph edge.
//
// # Overview
//
// The [Tracer] is a decorator around the loader capability: it attributes
// each requested module to the module whose body triggered the request,
// records the (importer, imported) edge, then delegates. Attribution uses an
// explicit import stack - the chain of in-flight imports - rather than
// anything global, so a run is a plain value that can be constructed and
// discarded freely (and tested in isolation).
//
// # Wiring
//
// The loader must route its own nested imports back through the tracer,
// otherwise only root imports are observed:
//
//	src := python.New(paths)
//	tracer := trace.New(src, graph.New())
//	src.SetImporter(tracer) // nested imports now pass through the tracer
//
//	for _, name := range roots {
//	    if _, err := tracer.Load(ctx, name); err != nil {
//	        return err
//	    }
//	}
//
// # Edge Semantics
//
// An edge is recorded for every attempted import: failed loads and
// loader-level cache hits both produce their edge, and each ordered pair is
// recorded at most once per run. Recorded edges are never retracted, even
// when a later load fails.
package trace
