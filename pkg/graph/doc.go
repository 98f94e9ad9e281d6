// Package graph records observed import edges and emits them as a directed
// graph.
//
// # Overview
//
// A [Graph] is an insertion-ordered edge set: each ordered (importer,
// imported) pair appears at most once regardless of how many times the pair
// is observed. The tracer in pkg/trace is the only writer during a run; this
// package owns the structure and its output formats.
//
// # Root Sentinel
//
// Modules imported directly by the driver have no importing module. Their
// edges originate at the [Root] sentinel node so every root still shows up
// in the emitted graph:
//
//	g := graph.New()
//	g.AddEdge(graph.Edge{From: graph.Root, To: "os"})
//
// # Output Formats
//
// DOT for visualization tools:
//
//	err := graph.WriteDOT(os.Stdout, g, graph.DOTOptions{})
//
// produces
//
//	digraph "importgraph" {
//	  node [shape=rectangle];
//	  "__root__";
//	  "os";
//	  "__root__" -> "os";
//	}
//
// Node references are always quoted, so dotted module names survive as
// single tokens. JSON ([Marshal], [WriteJSON], [ReadFile]) stores traces in
// a node-link format for re-rendering or inspection by other tools.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Tracing is a single sequential pass,
// so no locking is needed.
package graph
