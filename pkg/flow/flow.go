package flow

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrNoData is returned by [Build] when the edge list is empty after
	// filtering. Callers should treat this as a display-only state, not a crash.
	ErrNoData = errors.New("no flow data")

	// ErrInvalidEndpoint is returned by [Build] when an edge has an empty
	// source or target label. Upstream codecs drop such rows before the
	// engine runs; Build rejects them as a last line of defense.
	ErrInvalidEndpoint = errors.New("edge endpoint must not be empty")

	// ErrInvalidValue is returned by [Build] when an edge value is negative
	// or not finite.
	ErrInvalidValue = errors.New("edge value must be finite and non-negative")
)

// Edge is a single weighted flow from Source to Target.
// Duplicate (Source, Target) pairs are allowed and treated as independent flows.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// Graph is a weighted directed flow graph derived from an edge list.
//
// The node set is the distinct labels appearing as a source or target of any
// edge, kept in first-appearance order. That order fixes the node indices
// used by every later stage (positions, colors, link endpoints), so it must
// be stable for reproducible output.
//
// Graph is immutable after Build and safe for concurrent reads.
type Graph struct {
	edges    []Edge
	order    []string
	index    map[string]int
	outgoing map[string][]string
	incoming map[string][]string
}

// Build derives a Graph from an edge list.
//
// Returns ErrNoData for an empty list, ErrInvalidEndpoint for edges with
// empty labels, and ErrInvalidValue for negative or non-finite values.
func Build(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrNoData
	}

	g := &Graph{
		edges:    slices.Clone(edges),
		index:    make(map[string]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}

	for _, e := range g.edges {
		if e.Source == "" || e.Target == "" {
			return nil, ErrInvalidEndpoint
		}
		if e.Value < 0 || math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, ErrInvalidValue
		}
		g.register(e.Source)
		g.register(e.Target)
		g.outgoing[e.Source] = append(g.outgoing[e.Source], e.Target)
		g.incoming[e.Target] = append(g.incoming[e.Target], e.Source)
	}

	return g, nil
}

// register adds id to the ordered node registry if it is new.
func (g *Graph) register(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// Nodes returns all node labels in first-appearance order.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns a copy of the edge list in input order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index returns the builder-order index of the node and true,
// or 0 and false if the label is unknown.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Children returns the targets of all edges leaving the node, with one entry
// per edge. The returned slice is a read-only view.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the sources of all edges entering the node, with one entry
// per edge. The returned slice is a read-only view.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// InDegree returns the number of edges entering the node, counting duplicates.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutDegree returns the number of edges leaving the node, counting duplicates.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// Roots returns the nodes that never appear as an edge target,
// in builder order. A graph may have multiple roots, or none when every
// node sits on a cycle.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// Inflow returns the sum of values over edges entering the node.
func (g *Graph) Inflow(id string) float64 {
	var sum float64
	for _, e := range g.edges {
		if e.Target == id {
			sum += e.Value
		}
	}
	return sum
}

// Outflow returns the sum of values over edges leaving the node.
func (g *Graph) Outflow(id string) float64 {
	var sum float64
	for _, e := range g.edges {
		if e.Source == id {
			sum += e.Value
		}
	}
	return sum
}
