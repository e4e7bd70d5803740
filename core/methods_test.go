// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle rules and sentinel errors.
//   - Anchor the ordering guarantees renderers rely on (IDs/Nodes/Edges sorted).
//   - Verify snapshots never alias graph-owned memory.

package core_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/core"
)

// buildSquare constructs nodes 0..3 on a 200-unit square with edges 0-1, 0-2, 1-3.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, p := range []orb.Point{{0, 0}, {200, 0}, {0, 200}, {200, 200}} {
		require.NoError(t, g.AddNode(id, p))
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))

	return g
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddNode(0, orb.Point{1, 2}))
	assert.True(t, g.HasNode(0))
	assert.Equal(t, 1, g.Len())

	err := g.AddNode(-1, orb.Point{})
	assert.True(t, errors.Is(err, core.ErrNegativeID))

	// duplicate id keeps the original position
	err = g.AddNode(0, orb.Point{9, 9})
	assert.True(t, errors.Is(err, core.ErrDuplicateNode))
	pos, ok := g.Position(0)
	require.True(t, ok)
	assert.Equal(t, orb.Point{1, 2}, pos)

	n, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, core.Unvisited, n.State)
	assert.Empty(t, n.Neighbors)

	_, ok = g.Node(7)
	assert.False(t, ok)
}

func TestGraph_AddEdge(t *testing.T) {
	g := buildSquare(t)

	assert.True(t, errors.Is(g.AddEdge(2, 2), core.ErrSelfLoop))
	assert.True(t, errors.Is(g.AddEdge(0, 9), core.ErrNodeNotFound))
	assert.True(t, errors.Is(g.AddEdge(9, 0), core.ErrNodeNotFound))
	assert.True(t, errors.Is(g.AddEdge(1, 0), core.ErrDuplicateEdge))

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(42, 0))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_NeighborOrderAndSymmetry(t *testing.T) {
	g := buildSquare(t)

	// insertion order is preserved
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 3}, g.Neighbors(1))
	assert.Equal(t, []int{0}, g.Neighbors(2))
	assert.Equal(t, []int{1}, g.Neighbors(3))
	assert.Nil(t, g.Neighbors(99))

	for _, n := range g.Nodes() {
		seen := map[int]bool{}
		for _, nb := range n.Neighbors {
			assert.NotEqual(t, n.ID, nb, "self loop at %d", n.ID)
			assert.False(t, seen[nb], "duplicate neighbor %d at %d", nb, n.ID)
			seen[nb] = true
			assert.Contains(t, g.Neighbors(nb), n.ID, "asymmetric %d-%d", n.ID, nb)
		}
	}
}

func TestGraph_EnumerationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{5, 1, 3, 0} {
		require.NoError(t, g.AddNode(id, orb.Point{float64(id) * 100, 0}))
	}
	require.NoError(t, g.AddEdge(5, 0))
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 3))

	assert.Equal(t, []int{0, 1, 3, 5}, g.IDs())

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	for i, want := range []int{0, 1, 3, 5} {
		assert.Equal(t, want, nodes[i].ID)
	}

	assert.Equal(t, []core.Edge{{A: 0, B: 3}, {A: 0, B: 5}, {A: 1, B: 3}}, g.Edges())
}

func TestGraph_SnapshotsDoNotAlias(t *testing.T) {
	g := buildSquare(t)

	n, _ := g.Node(0)
	n.Neighbors[0] = 99
	n.State = core.Current
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))

	got, _ := g.Node(0)
	assert.Equal(t, core.Unvisited, got.State)

	nb := g.Neighbors(0)
	nb[1] = 42
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
}

func TestGraph_States(t *testing.T) {
	g := buildSquare(t)

	assert.True(t, g.SetState(1, core.InQueue))
	assert.True(t, g.SetState(2, core.Current))
	assert.False(t, g.SetState(77, core.Visited))

	n, _ := g.Node(1)
	assert.Equal(t, core.InQueue, n.State)

	g.ResetStates()
	for _, n := range g.Nodes() {
		assert.Equal(t, core.Unvisited, n.State)
	}
}

func TestGraph_Clear(t *testing.T) {
	g := buildSquare(t)
	g.Clear()

	assert.Zero(t, g.Len())
	assert.Empty(t, g.Edges())
	_, ok := g.NodeAt(orb.Point{0, 0})
	assert.False(t, ok)

	// ids are reusable after Clear
	require.NoError(t, g.AddNode(0, orb.Point{5, 5}))
	id, ok := g.NodeAt(orb.Point{5, 5})
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestGraph_NodeAt(t *testing.T) {
	g := core.NewGraph(core.WithNodeRadius(25))
	require.NoError(t, g.AddNode(0, orb.Point{100, 100}))
	require.NoError(t, g.AddNode(1, orb.Point{130, 100}))
	require.NoError(t, g.AddNode(2, orb.Point{400, 400}))
	assert.InDelta(t, 25.0, g.NodeRadius(), 1e-9)

	tests := []struct {
		name   string
		p      orb.Point
		wantID int
		wantOK bool
	}{
		{"centre", orb.Point{400, 400}, 2, true},
		{"boundary inclusive", orb.Point{400, 425}, 2, true},
		{"just outside", orb.Point{400, 425.5}, -1, false},
		{"overlap lowest id wins", orb.Point{115, 100}, 0, true},
		{"only second circle", orb.Point{150, 100}, 1, true},
		{"empty space", orb.Point{0, 0}, -1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := g.NodeAt(tc.p)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGraph_DefaultRadius(t *testing.T) {
	g := core.NewGraph(core.WithNodeRadius(-3))
	assert.InDelta(t, core.DefaultNodeRadius, g.NodeRadius(), 1e-9)
}

func TestNodeState_String(t *testing.T) {
	assert.Equal(t, "unvisited", core.Unvisited.String())
	assert.Equal(t, "in-queue", core.InQueue.String())
	assert.Equal(t, "current", core.Current.String())
	assert.Equal(t, "visited", core.Visited.String())
	assert.Equal(t, "unknown", core.NodeState(42).String())
}
