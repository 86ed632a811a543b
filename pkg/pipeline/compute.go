package pipeline

import (
	"errors"

	"github.com/blydeben/sankey-app/pkg/diagram"
	apperrors "github.com/blydeben/sankey-app/pkg/errors"
	"github.com/blydeben/sankey-app/pkg/flow"
	"github.com/blydeben/sankey-app/pkg/flow/transform"
	"github.com/blydeben/sankey-app/pkg/format"
	"github.com/blydeben/sankey-app/pkg/layout"
	"github.com/blydeben/sankey-app/pkg/palette"
)

// Compute runs the complete build → layout pipeline without caching.
// It is a pure function of its inputs: the same edges and options always
// produce the same diagram.
func Compute(edges []flow.Edge, opts Options) (diagram.Diagram, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return diagram.Diagram{}, err
	}
	g, tiers, err := buildGraph(edges)
	if err != nil {
		return diagram.Diagram{}, err
	}
	return assemble(g, tiers, opts)
}

// buildGraph validates the edge list, assembles the flow graph, and
// assigns tiers. Errors are mapped to their structured codes here so
// that every caller reports them consistently.
func buildGraph(edges []flow.Edge) (*flow.Graph, transform.Tiers, error) {
	g, err := flow.Build(edges)
	if err != nil {
		if errors.Is(err, flow.ErrNoData) {
			return nil, transform.Tiers{}, apperrors.Wrap(apperrors.ErrCodeNoData, err, "empty edge list")
		}
		return nil, transform.Tiers{}, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid edge list")
	}

	tiers, err := transform.AssignTiers(g)
	if err != nil {
		switch {
		case errors.Is(err, transform.ErrNoRoots):
			return nil, transform.Tiers{}, apperrors.Wrap(apperrors.ErrCodeNoRoots, err, "every node has inbound flow")
		case errors.Is(err, transform.ErrCyclicGraph):
			return nil, transform.Tiers{}, apperrors.Wrap(apperrors.ErrCodeCyclicGraph, err, "flow graph contains a cycle")
		default:
			return nil, transform.Tiers{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "tier assignment failed")
		}
	}
	return g, tiers, nil
}

// assemble computes positions, values, labels, and colors for the graph
// and packs them into a diagram. Options must already be validated.
func assemble(g *flow.Graph, tiers transform.Tiers, opts Options) (diagram.Diagram, error) {
	positions := layout.Positions(g, tiers)
	values := layout.Aggregate(g)
	total := layout.Tier0Total(g, tiers)

	display := opts.Display()
	pal := opts.ResolvedPalette()

	nodes := make([]diagram.Node, g.NodeCount())
	for i, id := range g.Nodes() {
		label, err := display.FormatValue(values[i], total)
		if err != nil {
			if errors.Is(err, format.ErrZeroDenominator) {
				return diagram.Diagram{}, apperrors.Wrap(apperrors.ErrCodeZeroDenominator, err,
					"cannot express %q as a percentage", id)
			}
			return diagram.Diagram{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "format label for %q", id)
		}
		nodes[i] = diagram.Node{
			ID:    id,
			Tier:  tiers.Of(id),
			X:     positions[i].X,
			Y:     positions[i].Y,
			Value: values[i],
			Label: label,
			Color: pal.Color(i),
		}
	}

	links := make([]diagram.Link, g.EdgeCount())
	for i, e := range g.Edges() {
		src, _ := g.Index(e.Source)
		tgt, _ := g.Index(e.Target)
		rgba, err := palette.LinkRGBA(pal.Color(src))
		if err != nil {
			return diagram.Diagram{}, apperrors.Wrap(apperrors.ErrCodeInvalidColor, err, "link color for %q", e.Source)
		}
		links[i] = diagram.Link{
			Source: src,
			Target: tgt,
			Value:  e.Value,
			Color:  rgba,
		}
	}

	return diagram.Diagram{
		Title: opts.Title,
		Units: opts.Units,
		Nodes: nodes,
		Links: links,
	}, nil
}
