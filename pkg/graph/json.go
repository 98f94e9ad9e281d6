package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// wireGraph is the node-link JSON format for stored traces.
type wireGraph struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *Graph) ([]byte, error) {
	return json.MarshalIndent(wireGraph{Nodes: g.Nodes(), Edges: g.Edges()}, "", "  ")
}

// Unmarshal decodes JSON bytes produced by [Marshal] back into a graph.
// Duplicate nodes or edges in the input collapse silently.
func Unmarshal(data []byte) (*Graph, error) {
	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	g := New()
	for _, id := range w.Nodes {
		g.AddNode(id)
	}
	for _, e := range w.Edges {
		g.AddEdge(e)
	}
	return g, nil
}

// WriteJSON writes the graph as JSON to w.
func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wireGraph{Nodes: g.Nodes(), Edges: g.Edges()}); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// ReadFile reads a JSON graph file written by WriteJSON or Marshal.
func ReadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return Unmarshal(data)
}
