// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, NodeState, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bfsviz/spatial"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates a node id below zero.
	ErrNegativeID = errors.New("core: node id is negative")

	// ErrDuplicateNode indicates AddNode was called with an id already in use.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the two nodes are already adjacent.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// DefaultNodeRadius is the hit-test radius used when WithNodeRadius is not given.
const DefaultNodeRadius = 40.0

// NodeState is the render-only classification of a node.
type NodeState int

const (
	// Unvisited nodes have not been discovered by the current run.
	Unvisited NodeState = iota

	// InQueue nodes are discovered and waiting in the FIFO queue.
	InQueue

	// Current is the node most recently dequeued.
	Current

	// Visited nodes were discovered and already left the queue.
	Visited
)

// String returns the lower-case display name of s.
func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InQueue:
		return "in-queue"
	case Current:
		return "current"
	case Visited:
		return "visited"
	default:
		return "unknown"
	}
}

// Node is a positioned vertex.
//
// Values returned by Graph accessors are snapshots; Neighbors is a fresh
// slice the caller may keep.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID int

	// Position is the node centre in world coordinates.
	Position orb.Point

	// State is the current display classification.
	State NodeState

	// Neighbors lists adjacent ids in insertion order.
	Neighbors []int
}

// Edge is one undirected connection, normalized so that A < B.
type Edge struct {
	A, B int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithNodeRadius sets the hit-test radius used by NodeAt.
// Non-positive values are ignored.
func WithNodeRadius(r float64) GraphOption {
	return func(g *Graph) {
		if r > 0 {
			g.radius = r
		}
	}
}

// Graph is the positioned, undirected, unweighted graph model.
type Graph struct {
	mu sync.RWMutex

	radius float64
	nodes  map[int]*Node  // id → owned node
	index  *spatial.Index // node centres for NodeAt
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		radius: DefaultNodeRadius,
		nodes:  make(map[int]*Node),
		index:  spatial.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NodeRadius returns the configured hit-test radius.
func (g *Graph) NodeRadius() float64 {
	return g.radius
}

// snapshot copies n so callers never alias graph-owned memory.
func snapshot(n *Node) Node {
	out := *n
	out.Neighbors = append([]int(nil), n.Neighbors...)

	return out
}
