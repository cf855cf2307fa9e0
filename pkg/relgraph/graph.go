package relgraph

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Node is a styled graph vertex. Attributes map directly onto Graphviz node
// attributes; empty fields are omitted from the DOT output.
type Node struct {
	ID      uuid.UUID
	Label   string
	Shape   string // Graphviz shape name; empty means the engine default
	Tooltip string
	URL     string // Link target for clickable SVG output
	Class   string // CSS class, the entity's kind tag
	Image   string // Node image, used for character thumbnails
}

// Edge is a directed, labeled connection between two nodes.
type Edge struct {
	From  uuid.UUID
	To    uuid.UUID
	Label string
}

type edgeKey struct {
	from, to uuid.UUID
	label    string
}

// Graph is an ordered collection of nodes and edges with graph-level layout
// attributes. Insertion order is preserved so serialization is deterministic.
//
// The zero value is not usable; use [NewGraph].
type Graph struct {
	name    string
	root    uuid.UUID
	margin  float64
	splines bool

	nodes   []*Node
	nodeIdx map[uuid.UUID]*Node
	edges   []Edge
	edgeSet map[edgeKey]bool
}

// NewGraph creates an empty graph with the layout attributes every rendered
// graph carries: a 1.0 margin and spline edge routing.
func NewGraph(name string) *Graph {
	return &Graph{
		name:    name,
		margin:  1.0,
		splines: true,
		nodeIdx: make(map[uuid.UUID]*Node),
		edgeSet: make(map[edgeKey]bool),
	}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// SetRoot marks the node Graphviz radial layouts should center on.
func (g *Graph) SetRoot(id uuid.UUID) { g.root = id }

// SetMargin overrides the default page margin.
func (g *Graph) SetMargin(m float64) { g.margin = m }

// SetSplines toggles spline edge routing.
func (g *Graph) SetSplines(on bool) { g.splines = on }

// AddNode inserts a node. Adding a node whose ID is already present is a
// no-op; the first insertion wins. Reports whether the node was inserted.
func (g *Graph) AddNode(n *Node) bool {
	if _, exists := g.nodeIdx[n.ID]; exists {
		return false
	}
	g.nodes = append(g.nodes, n)
	g.nodeIdx[n.ID] = n
	return true
}

// HasNode reports whether a node with the given ID is present.
func (g *Graph) HasNode(id uuid.UUID) bool {
	_, ok := g.nodeIdx[id]
	return ok
}

// AddEdge inserts a directed edge. Self loops and exact duplicates are
// dropped. Reports whether the edge was inserted.
func (g *Graph) AddEdge(from, to uuid.UUID, label string) bool {
	if from == to {
		return false
	}
	key := edgeKey{from, to, label}
	if g.edgeSet[key] {
		return false
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label})
	g.edgeSet[key] = true
	return true
}

// Nodes returns the nodes in insertion order. The slice is shared; callers
// must not modify it.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// DOT serializes the graph to Graphviz DOT format.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.name)
	if g.root != uuid.Nil {
		fmt.Fprintf(&buf, "  root=%q;\n", g.root.String())
	}
	fmt.Fprintf(&buf, "  margin=%s;\n", strconv.FormatFloat(g.margin, 'f', -1, 64))
	fmt.Fprintf(&buf, "  splines=%s;\n", strconv.FormatBool(g.splines))
	buf.WriteString("\n")

	for _, n := range g.nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID.String(), n.attrs())
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From.String(), e.To.String(), e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.String(), e.To.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (n *Node) attrs() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "label=%q", n.Label)
	if n.Shape != "" {
		fmt.Fprintf(&buf, ", shape=%s", n.Shape)
	}
	if n.Tooltip != "" {
		fmt.Fprintf(&buf, ", tooltip=%q", n.Tooltip)
	}
	if n.URL != "" {
		fmt.Fprintf(&buf, ", URL=%q", n.URL)
	}
	if n.Class != "" {
		fmt.Fprintf(&buf, ", class=%q", n.Class)
	}
	if n.Image != "" {
		fmt.Fprintf(&buf, ", image=%q", n.Image)
	}
	return buf.String()
}
