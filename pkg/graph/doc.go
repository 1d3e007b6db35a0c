// Package graph builds a whole-file dependency graph from parsed control
// records.
//
// # Overview
//
// Where [index] answers one package at a time, a [Graph] holds every
// package of a status file at once. Each named stanza becomes a node and
// each dependency token becomes an edge from the stanza to the package it
// names. Alternatives ("a | b") contribute one edge per alternative; the
// divider itself is not a node.
//
// Dependency targets that no stanza provides become nodes of kind
// [KindMissing], so a reader can tell unresolved dependencies apart:
//
//	g := graph.FromRecords(records)
//	for _, n := range g.Nodes() {
//	    if n.Missing() {
//	        fmt.Println("unresolved:", n.ID)
//	    }
//	}
//
// # Traversal
//
// [Graph.Children] lists what a package depends on and [Graph.Parents] lists
// its dependents. [Graph.Neighborhood] extracts the subgraph around one
// package, which is what the CLI renders for a single-package export.
//
// # Export
//
// [WriteJSON] encodes the graph as {"nodes": [...], "edges": [...]} with
// nodes sorted by ID. [ToDOT] produces Graphviz source and [RenderSVG]
// renders it in-process with [github.com/goccy/go-graphviz].
//
// # Concurrency
//
// A Graph is not safe for concurrent modification. Once built it can be read
// from multiple goroutines.
//
// [index]: github.com/matzehuels/dpkgview/pkg/index
package graph
