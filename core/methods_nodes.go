// File: methods_nodes.go
// Role: Node lifecycle, queries and display-state mutation.
//
// Determinism:
//   - IDs() and Nodes() return nodes sorted by id ascending.

package core

import (
	"sort"

	"github.com/paulmach/orb"
)

// AddNode inserts a node with no neighbors in the Unvisited state.
//
// Errors:
//   - ErrNegativeID: if id < 0.
//   - ErrDuplicateNode: if id is already present. The existing node is left
//     untouched so adjacency stays symmetric.
//
// Complexity:
//   - Time O(log V) for the spatial index insert, Space O(1).
func (g *Graph) AddNode(id int, pos orb.Point) error {
	if id < 0 {
		return ErrNegativeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}
	g.nodes[id] = &Node{ID: id, Position: pos, State: Unvisited}
	g.index.Insert(id, pos)

	return nil
}

// HasNode reports whether id names a node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a snapshot of the node with the given id.
func (g *Graph) Node(id int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return snapshot(n), true
}

// Position returns the centre of node id.
func (g *Graph) Position(id int) (orb.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return orb.Point{}, false
	}

	return n.Position, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// IDs returns every node id sorted ascending.
// Complexity: O(V log V).
func (g *Graph) IDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDs()
}

// Nodes returns snapshots of every node sorted by id.
// Complexity: O(V log V + E).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedIDs()
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, snapshot(g.nodes[id]))
	}

	return out
}

// Clear removes every node and edge. The node radius is preserved.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int]*Node)
	g.index.Clear()
}

// SetState sets the display state of node id and reports whether it exists.
func (g *Graph) SetState(id int, s NodeState) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.State = s

	return true
}

// ResetStates marks every node Unvisited.
func (g *Graph) ResetStates() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.State = Unvisited
	}
}

// sortedIDs must be called with g.mu held.
func (g *Graph) sortedIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
