package layout

import (
	"github.com/blydeben/sankey-app/pkg/flow"
	"github.com/blydeben/sankey-app/pkg/flow/transform"
)

// bandMargin is the fraction of a tier band reserved at each end before
// spreading nodes across the remaining span.
const bandMargin = 0.05

// Position is a node's placement in normalized [0,1]×[0,1] space.
type Position struct {
	X float64
	Y float64
}

// Positions computes the placement of every node, indexed by builder order.
//
// Horizontally, tiers spread evenly across [0,1]: x = tier/maxTier. A
// single-tier graph has no spread to compute and every node sits at the
// 0.5 midpoint instead.
//
// Vertically, each tier owns a band of height 1/(maxTier+1), stacked so tier
// 0 occupies the topmost band. A lone node centers on its band; multiple
// nodes spread between 5% margins in builder order, which keeps spacing
// even and deterministic with no overlap.
func Positions(g *flow.Graph, tiers transform.Tiers) []Position {
	nodes := g.Nodes()
	positions := make([]Position, len(nodes))
	maxTier := tiers.Max()

	for i, id := range nodes {
		if maxTier > 0 {
			positions[i].X = float64(tiers.Of(id)) / float64(maxTier)
		} else {
			positions[i].X = 0.5
		}
	}

	// Group builder indices by tier, preserving builder order within each group.
	groups := make(map[int][]int)
	for i, id := range nodes {
		tier := tiers.Of(id)
		groups[tier] = append(groups[tier], i)
	}

	for tier, indices := range groups {
		top := 1 - float64(tier)/float64(maxTier+1)
		bottom := 1 - float64(tier+1)/float64(maxTier+1)

		if len(indices) == 1 {
			positions[indices[0]].Y = (top + bottom) / 2
			continue
		}

		margin := bandMargin * (top - bottom)
		step := ((top - bottom) - 2*margin) / float64(len(indices)-1)
		for j, idx := range indices {
			positions[idx].Y = bottom + margin + float64(j)*step
		}
	}

	return positions
}
