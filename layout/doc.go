// Package layout procedurally populates a core.Graph with a random,
// collision-avoiding, connected 2D layout.
//
// What
//
//   - Draws a target node count uniformly from [MinNodes, MaxNodes].
//   - Places node 0 exactly at the configured centre.
//   - Places every further node with three strategies in strict priority
//     order, each with its own attempt budget:
//     Ring   – random angle and radius in the [MinRadius, MaxRadius] band,
//     plus bounded jitter, clamped into bounds;
//     Grid   – deterministic cell from the node index (side ⌈√target⌉+1),
//     plus jitter of at most 20% of the spacing, clamped into bounds;
//     Random – uniform inside bounds.
//     A candidate is accepted when every placed node is at least
//     SafeMinDistance away.
//   - If all budgets fail for node i, placement stops and the realized count
//     is i. The placed nodes are kept.
//   - Connects the realized nodes with a nearest-neighbor spanning tree
//     (exactly n−1 edges), then adds a few extra edges per node, preferring
//     close pairs: p = max(0.05, 0.6 − d/MaxConnectDistance).
//
// Why
//
//	Ring placement gives radial layouts first, the grid guarantees coverage
//	when the ring band is crowded, and uniform sampling is the last resort.
//	The tree phase alone guarantees connectivity, so the probabilistic extra
//	edges can never disconnect the graph.
//
// Determinism
//
//	All randomness flows from one *rand.Rand. WithSeed(n) reproduces the same
//	layout for the same config; without it a time-seeded source is used.
//
// Errors
//
//	Generate never fails and never panics. Placement failure degrades the
//	node count; the Report says by how much. Option constructors panic on nil
//	arguments, as programmer errors.
//
// Complexity (n = target count, A = total attempt budget)
//
//   - Placement: O(n · A · log n) with the R-tree separation check.
//   - Connectivity: O(n²) distance evaluations.
package layout
