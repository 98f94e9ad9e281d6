package graph

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultGraphName is the identifier used in the digraph declaration when
// DOTOptions.Name is empty. The name carries no meaning for layout tools;
// it only has to be stable.
const DefaultGraphName = "importgraph"

// DOTOptions configures DOT emission.
type DOTOptions struct {
	// Name is the identifier in the digraph declaration.
	// Defaults to [DefaultGraphName].
	Name string

	// NodeShape is applied to the graph-wide node attribute list.
	// Empty means rectangle, matching how import graphs are usually drawn.
	NodeShape string
}

// WriteDOT writes the graph in Graphviz DOT syntax.
//
// Every node reference is quoted, so dotted module names like "os.path" stay
// a single token. Nodes are declared before edges; both appear in insertion
// order. A failure to write is returned to the caller - nothing is retried
// or silently dropped.
func WriteDOT(w io.Writer, g *Graph, opts DOTOptions) error {
	name := opts.Name
	if name == "" {
		name = DefaultGraphName
	}
	shape := opts.NodeShape
	if shape == "" {
		shape = "rectangle"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(name))
	fmt.Fprintf(&buf, "  node [shape=%s];\n", shape)

	for _, id := range g.Nodes() {
		fmt.Fprintf(&buf, "  %s;\n", quote(id))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s;\n", quote(e.From), quote(e.To))
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// ToDOT renders the graph to a DOT string.
func ToDOT(g *Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	_ = WriteDOT(&buf, g, opts) // bytes.Buffer writes cannot fail
	return buf.String()
}

// quote wraps s in double quotes, escaping backslashes and embedded quotes
// so the result is always one well-formed DOT identifier.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
