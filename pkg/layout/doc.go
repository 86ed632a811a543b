// Package layout maps tiered flow graphs onto normalized 2D coordinates
// and aggregates per-node flow magnitudes.
//
// [Positions] spreads tiers evenly across the x axis and stacks per-tier
// vertical bands top to bottom, spacing nodes within a band in builder
// order. [Aggregate] and [Tier0Total] compute the values the label stage
// formats. All results are indexed by builder order, matching the node
// registry in [flow.Graph].
package layout
