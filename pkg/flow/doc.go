// Package flow models weighted directed flow graphs for Sankey layouts.
//
// # Overview
//
// A Sankey diagram is described entirely by its edge list: each row names a
// source, a target, and a non-negative flow value. [Build] derives everything
// else (the distinct node set, adjacency, and root detection) from that
// list alone. There is no incremental state; every input change rebuilds the
// graph from scratch.
//
// # Builder Order
//
// Nodes are registered in first-appearance order while scanning the edge
// list. This order is load-bearing: it fixes the array indices that the
// layout, color, and link stages all share, so two runs over the same input
// always produce identical output.
//
//	g, err := flow.Build([]flow.Edge{
//		{Source: "A", Target: "B", Value: 100},
//		{Source: "A", Target: "C", Value: 200},
//	})
//	g.Nodes() // ["A", "B", "C"]
//	g.Roots() // ["A"]
//
// # Related Packages
//
// The [transform] subpackage assigns tiers (columns) via bounded
// longest-path relaxation and is where cyclic input is rejected.
//
// [transform]: github.com/blydeben/sankey-app/pkg/flow/transform
package flow
