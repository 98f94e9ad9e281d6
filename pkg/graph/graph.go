package graph

// Root is the synthetic node anchoring imports requested directly by the
// driver. A module imported at the top level has no importer of its own, so
// its edge originates here and the output stays a single connected graph.
const Root = "__root__"

// Edge records that From triggered the loading of To. Both endpoints are
// fully-qualified module names, or Root for top-level imports.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an insertion-ordered set of import edges and their endpoint nodes.
// Adding a node or edge that is already present is a no-op, so repeated
// import attempts of the same module never produce duplicates.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use; the tracer mutates it from a single goroutine.
type Graph struct {
	nodes   []string
	edges   []Edge
	nodeSet map[string]struct{}
	edgeSet map[Edge]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodeSet: make(map[string]struct{}),
		edgeSet: make(map[Edge]struct{}),
	}
}

// AddNode adds a node, preserving insertion order.
// Returns false if the node was already present.
func (g *Graph) AddNode(id string) bool {
	if _, ok := g.nodeSet[id]; ok {
		return false
	}
	g.nodeSet[id] = struct{}{}
	g.nodes = append(g.nodes, id)
	return true
}

// AddEdge adds a directed edge and both endpoint nodes.
// Returns false if the same ordered pair was already recorded.
func (g *Graph) AddEdge(e Edge) bool {
	if _, ok := g.edgeSet[e]; ok {
		return false
	}
	g.AddNode(e.From)
	g.AddNode(e.To)
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	return true
}

// HasEdge reports whether the ordered pair has been recorded.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// HasNode reports whether the node has been recorded.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeSet[id]
	return ok
}

// Nodes returns the node IDs in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the edges in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degrees holds the fan-in and fan-out of a single node.
type Degrees struct {
	In  int // edges pointing at the node
	Out int // edges originating at the node
}

// DegreeTable computes fan-in and fan-out for every node.
func (g *Graph) DegreeTable() map[string]Degrees {
	table := make(map[string]Degrees, len(g.nodes))
	for _, id := range g.nodes {
		table[id] = Degrees{}
	}
	for _, e := range g.edges {
		d := table[e.From]
		d.Out++
		table[e.From] = d

		d = table[e.To]
		d.In++
		table[e.To] = d
	}
	return table
}
