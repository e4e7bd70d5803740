// Package core provides the graph model shared by the layout generator and
// the BFS controller: positioned nodes keyed by a non-negative integer id,
// undirected unweighted adjacency, point hit-testing and deterministic
// enumeration for renderers.
//
// The Graph G = (V,E) guarantees:
//
//   - Symmetric adjacency: b ∈ N(a) ⇔ a ∈ N(b).
//   - No self-loops and no duplicate neighbor entries.
//   - Neighbor lists keep insertion order (BFS expands neighbors in that order).
//   - IDs(), Nodes() and Edges() are sorted by id, so drawing code can
//     de-duplicate undirected edges with a < b and get the same output every frame.
//
// Ownership:
//
//	The Graph owns every Node exclusively. Callers refer to nodes by id;
//	Node(id) and Nodes() return value snapshots, never aliases, so mutating a
//	returned Node has no effect on the graph.
//
// Display state:
//
//	Each node carries a NodeState (Unvisited, InQueue, Current, Visited).
//	It is render-only: the BFS controller writes it through SetState /
//	ResetStates after every transition and nothing in this module reads it
//	back for algorithmic decisions.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, pos orb.Point) error   // O(log V)
//	HasNode(id int) bool                   // O(1)
//	Node(id int) (Node, bool)              // O(deg)
//	Clear()                                // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b int) error                // O(deg)
//	HasEdge(a, b int) bool                 // O(deg)
//	Neighbors(id int) []int                // O(deg)
//
//	// Enumeration
//	IDs() []int                            // O(V log V)
//	Nodes() []Node                         // O(V log V + E)
//	Edges() []Edge                         // O(V log V + E)
//
//	// Display & interaction
//	SetState(id int, s NodeState) bool     // O(1)
//	ResetStates()                          // O(V)
//	NodeAt(p orb.Point) (int, bool)        // O(log V + k)
//
// Concurrency:
//
//	All methods take an internal sync.RWMutex. The intended discipline is
//	still a single update→render loop; the lock only makes a stray read from
//	a render goroutine safe.
package core
