package graph

import (
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/dpkgview/pkg/control"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Kind distinguishes packages present in the status file from dependency
// targets that no stanza provides.
type Kind int

const (
	// KindPackage is a node backed by a stanza.
	KindPackage Kind = iota
	// KindMissing is a dependency target with no stanza of its own.
	KindMissing
)

// String returns the kind's name as used in JSON output.
func (k Kind) String() string {
	if k == KindMissing {
		return "missing"
	}
	return "package"
}

// Node is one package in the graph.
type Node struct {
	ID      string
	Summary string
	Kind    Kind
}

// Missing reports whether no stanza provides this package.
func (n Node) Missing() bool { return n.Kind == KindMissing }

// Edge is a dependency from one package to another.
type Edge struct {
	From string
	To   string
}

// Graph is a directed dependency graph. Cycles are allowed; dpkg status
// files routinely contain them.
//
// The zero value is not usable; use [New] or [FromRecords].
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// FromRecords builds the graph of every named record.
//
// Duplicate stanzas collapse into one node whose summary comes from the last
// stanza, matching how detail queries treat them; their dependency edges are
// merged. Dividers are skipped. Repeated edges are added once.
func FromRecords(records []control.Record) *Graph {
	g := New()
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		if n, ok := g.nodes[rec.Name]; ok {
			n.Summary = rec.Summary
			continue
		}
		_ = g.AddNode(Node{ID: rec.Name, Summary: rec.Summary})
	}

	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		for _, dep := range rec.Depends {
			if control.IsDivider(dep) {
				continue
			}
			if _, ok := g.nodes[dep]; !ok {
				_ = g.AddNode(Node{ID: dep, Kind: KindMissing})
			}
			if !g.HasEdge(rec.Name, dep) {
				_ = g.AddEdge(Edge{From: rec.Name, To: dep})
			}
		}
	}
	return g
}

// AddNode adds n to the graph.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = &n
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// HasEdge reports whether an edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.outgoing[from], to)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		nodes = append(nodes, *g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the packages id depends on, in source order.
// The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the packages that depend on id, in file order.
// The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// Sources returns the IDs of nodes nothing depends on, sorted.
func (g *Graph) Sources() []string {
	var ids []string
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		if len(g.incoming[id]) == 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Sinks returns the IDs of nodes that depend on nothing, sorted.
func (g *Graph) Sinks() []string {
	var ids []string
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		if len(g.outgoing[id]) == 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Neighborhood returns the subgraph made of id, its direct dependencies and
// its direct dependents. Only edges touching id are kept. The second result
// is false if id is not in the graph.
func (g *Graph) Neighborhood(id string) (*Graph, bool) {
	center, ok := g.nodes[id]
	if !ok {
		return nil, false
	}

	sub := New()
	_ = sub.AddNode(*center)
	for _, child := range g.outgoing[id] {
		if _, ok := sub.nodes[child]; !ok {
			_ = sub.AddNode(*g.nodes[child])
		}
		_ = sub.AddEdge(Edge{From: id, To: child})
	}
	for _, parent := range g.incoming[id] {
		if _, ok := sub.nodes[parent]; !ok {
			_ = sub.AddNode(*g.nodes[parent])
		}
		if !sub.HasEdge(parent, id) {
			_ = sub.AddEdge(Edge{From: parent, To: id})
		}
	}
	return sub, true
}
