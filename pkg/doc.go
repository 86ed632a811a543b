// Package pkg provides the core libraries for Sankey diagram layout.
//
// # Overview
//
// Sankey turns weighted source→target edge lists into deterministic,
// renderer-agnostic diagram layouts. The pkg directory is organized
// around the stages of that computation:
//
//  1. [flow] - Edge list validation and the flow graph ([flow/transform] assigns tiers)
//  2. [layout] - Node positions and value aggregation
//  3. [format] - Label text (absolute values or percentages)
//  4. [palette] - Node and link colors
//  5. [diagram] - The serializable output type
//  6. [pipeline] - Orchestration and caching ([cache] holds the backends)
//  7. [io] - CSV and JSON edge list import
//
// # Architecture
//
// The typical data flow:
//
//	CSV/JSON edge list
//	         ↓
//	    [flow] package (graph structure + tier assignment)
//	         ↓
//	    [layout] package (positions + aggregated values)
//	         ↓
//	    [format] + [palette] packages (labels + colors)
//	         ↓
//	    [diagram] JSON output
//
// # Quick Start
//
// Compute a diagram in one call:
//
//	edges := []flow.Edge{
//	    {Source: "A", Target: "B", Value: 100},
//	    {Source: "A", Target: "C", Value: 200},
//	}
//	d, err := pipeline.Compute(edges, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	diagram.Write(d, os.Stdout)
//
// Everything above is deterministic: the same edges and options always
// produce byte-identical output, which is what makes content-hash
// caching in [cache] sound.
package pkg
