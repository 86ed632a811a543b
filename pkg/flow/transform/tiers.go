package transform

import (
	"errors"

	"github.com/blydeben/sankey-app/pkg/flow"
)

var (
	// ErrNoRoots is returned by [AssignTiers] when every node appears as
	// some edge's target, i.e. the graph is fully cyclic. Tier assignment
	// needs at least one zero-tier seed to start from.
	ErrNoRoots = errors.New("graph has no root node")

	// ErrCyclicGraph is returned by [AssignTiers] when a cycle is reachable
	// in the graph. Cyclic flows have no meaningful longest-path depth.
	ErrCyclicGraph = errors.New("cyclic graph not supported")
)

// Tiers maps each node to its tier (column), the longest path length from
// any root. The zero value is an empty assignment.
type Tiers struct {
	byNode map[string]int
	max    int
}

// Of returns the tier of the node. Unknown nodes report tier 0.
func (t Tiers) Of(id string) int { return t.byNode[id] }

// Max returns the highest tier across all nodes, 0 for a single-column graph.
func (t Tiers) Max() int { return t.max }

// AssignTiers computes the tier of every node as the longest path length
// from any root, so no node is ever placed left of one of its ancestors.
//
// # Algorithm
//
// A Kahn-style topological relaxation replaces the naive recursive
// propagation, which revisits nodes unboundedly on cyclic input:
//
//  1. Seed the queue with all roots (in-degree 0) at tier 0
//  2. Drain a node; raise each child to max(child tier, parent tier + 1)
//  3. A child joins the queue once all of its inbound edges are consumed
//
// Each node is drained exactly once, so the whole pass is O(V+E) and a node
// reachable from multiple roots or paths still ends up at the maximum tier
// over all of them.
//
// # Errors
//
// Returns ErrNoRoots when no node has in-degree 0, and ErrCyclicGraph when
// any node is left undrained (it sits on a cycle, or is reachable only
// through one). Both are fatal: the layout is undefined for such input.
func AssignTiers(g *flow.Graph) (Tiers, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return Tiers{}, flow.ErrNoData
	}

	inDegree := make(map[string]int, len(nodes))
	tiers := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, id := range nodes {
		degree := g.InDegree(id)
		inDegree[id] = degree
		if degree == 0 {
			queue = append(queue, id)
		}
	}
	if len(queue) == 0 {
		return Tiers{}, ErrNoRoots
	}

	drained := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		drained++

		for _, child := range g.Children(curr) {
			if tier := tiers[curr] + 1; tier > tiers[child] {
				tiers[child] = tier
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	if drained != len(nodes) {
		return Tiers{}, ErrCyclicGraph
	}

	max := 0
	for _, tier := range tiers {
		if tier > max {
			max = tier
		}
	}
	return Tiers{byNode: tiers, max: max}, nil
}
