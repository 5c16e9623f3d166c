// Package flow defines the dataflow document model: named data artifacts and
// the functions that consume and produce them.
//
// A [Graph] is constructed once by decoding a specification file (see
// [Import] and [Read]) and is treated as immutable afterwards. Input and
// output references are plain strings, not foreign keys; nothing in this
// package checks that they resolve to a declared artifact. The renderer
// emits them verbatim and Graphviz creates implicit nodes for unseen names.
package flow

import "slices"

// Graph is a complete dataflow document: every data artifact and every
// function it declares, in input order.
type Graph struct {
	Data      []Data
	Functions []Function
}

// Data is a single piece of data in a dataflow graph. Its name doubles as
// the graph node identifier and label.
type Data struct {
	// Name of this data, as shown on the rendered diagram.
	Name string
	// Source is the application or service that maintains or provides
	// this data. Carried through for documentation, not used in rendering.
	Source string
	// Description is an optional human-readable description.
	Description string
}

// Function is a process in a dataflow graph.
type Function struct {
	// Name of this function, as shown on the rendered diagram.
	Name string
	// Owner is the service or team which performs this process. Functions
	// sharing an owner string are coloured identically.
	Owner string
	// Inputs are names of data consumed by this function, each rendered
	// as an incoming edge.
	Inputs []string
	// Outputs are names of data produced by this function, each rendered
	// as an outgoing edge.
	Outputs []string
}

// Owners returns the sorted, deduplicated set of distinct owner strings
// across all functions. This roster is the sole driver of colour
// assignment: it is invariant under function order and duplicate owners.
func (g *Graph) Owners() []string {
	owners := make([]string, 0, len(g.Functions))
	for _, f := range g.Functions {
		owners = append(owners, f.Owner)
	}
	slices.Sort(owners)
	return slices.Compact(owners)
}

// NodeCount returns the number of declared nodes (artifacts plus functions).
func (g *Graph) NodeCount() int {
	return len(g.Data) + len(g.Functions)
}

// EdgeCount returns the number of edges the graph will render.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, f := range g.Functions {
		n += len(f.Inputs) + len(f.Outputs)
	}
	return n
}
