package layout

import (
	"github.com/blydeben/sankey-app/pkg/flow"
	"github.com/blydeben/sankey-app/pkg/flow/transform"
)

// Aggregate computes the flow magnitude of every node, indexed by builder
// order.
//
// A node's magnitude is the sum of its inbound edge values. Roots have no
// inbound edges, so they report their outbound sum instead. Root-ness is
// decided structurally (no inbound edges), not by the inbound sum being
// zero: a non-root whose inbound flows sum to exactly zero reports zero
// rather than silently switching to its outbound total.
func Aggregate(g *flow.Graph) []float64 {
	nodes := g.Nodes()
	values := make([]float64, len(nodes))
	for i, id := range nodes {
		if g.InDegree(id) == 0 {
			values[i] = g.Outflow(id)
		} else {
			values[i] = g.Inflow(id)
		}
	}
	return values
}

// Tier0Total sums the values of all edges leaving a tier-0 node. It is the
// denominator for percentage labels of every node, so a percentage always
// reads "share of total tier-0 outflow", not share of the node's own tier.
func Tier0Total(g *flow.Graph, tiers transform.Tiers) float64 {
	var total float64
	for _, e := range g.Edges() {
		if tiers.Of(e.Source) == 0 {
			total += e.Value
		}
	}
	return total
}
