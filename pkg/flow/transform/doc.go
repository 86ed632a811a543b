// Package transform assigns flow graph nodes to tiers (columns).
//
// # Tier Assignment
//
// [AssignTiers] computes each node's depth as the longest path length from
// any root. The longest-path policy (rather than shortest) guarantees that
// for every edge the target's tier is strictly greater than the source's, so
// no flow is ever drawn backward or sideways.
//
// # Cycles
//
// Cyclic input has no valid tiering. Rather than recursing until the stack
// overflows, [AssignTiers] uses a queue-based traversal that touches each
// node at most once and reports [ErrCyclicGraph] deterministically. A fully
// cyclic graph, which has no root to seed from, reports [ErrNoRoots].
package transform
