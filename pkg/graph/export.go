package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	ID      string `json:"id"`
	Summary string `json:"summary,omitempty"`
	Kind    string `json:"kind"`
}

type edgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (g *Graph) export() graphJSON {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graphJSON{
		Nodes: make([]nodeJSON, len(nodes)),
		Edges: make([]edgeJSON, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = nodeJSON{ID: n.ID, Summary: n.Summary, Kind: n.Kind.String()}
	}
	for i, e := range edges {
		out.Edges[i] = edgeJSON{From: e.From, To: e.To}
	}
	return out
}

// WriteJSON encodes g as indented JSON and writes it to w.
// Nodes are sorted by ID; edges keep insertion order.
func WriteJSON(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.export()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
