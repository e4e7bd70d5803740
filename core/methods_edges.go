// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - Neighbors(id) keeps insertion order.
//   - Edges() is sorted by (A, B) with A < B.

package core

import "slices"

// AddEdge connects a and b in both directions.
//
// Implementation:
//   - Stage 1: Reject self-loops before touching the catalog.
//   - Stage 2: Under the write lock, resolve both endpoints.
//   - Stage 3: Reject an existing connection, then append each id to the
//     other's neighbor list so symmetry holds after every successful call.
//
// Errors:
//   - ErrSelfLoop: a == b.
//   - ErrNodeNotFound: either endpoint is missing.
//   - ErrDuplicateEdge: a and b are already adjacent.
//
// Complexity:
//   - Time O(deg(a)) for the duplicate scan, Space O(1) amortized.
func (g *Graph) AddEdge(a, b int) error {
	if a == b {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return ErrNodeNotFound
	}
	if slices.Contains(na.Neighbors, b) {
		return ErrDuplicateEdge
	}
	na.Neighbors = append(na.Neighbors, b)
	nb.Neighbors = append(nb.Neighbors, a)

	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[a]
	if !ok {
		return false
	}

	return slices.Contains(n.Neighbors, b)
}

// Neighbors returns a copy of id's neighbor list in insertion order,
// or nil if id is unknown.
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil
	}

	return append([]int(nil), n.Neighbors...)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.Neighbors)
	}

	return total / 2
}

// Edges returns every undirected edge once, with A < B, sorted by (A, B).
// Renderers draw exactly this list.
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, id := range g.sortedIDs() {
		nbrs := slices.Clone(g.nodes[id].Neighbors)
		slices.Sort(nbrs)
		for _, nb := range nbrs {
			if id < nb {
				out = append(out, Edge{A: id, B: nb})
			}
		}
	}

	return out
}
