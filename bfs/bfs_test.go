package bfs_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
)

// TestRun_Errors verifies that invalid inputs are rejected.
func TestRun_Errors(t *testing.T) {
	_, err := bfs.Run(nil, 0)
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	_, err = bfs.Run(core.NewGraph(), 0)
	assert.True(t, errors.Is(err, bfs.ErrStartNotFound))
}

// TestRun_SingleNode covers the trivial one-node graph.
func TestRun_SingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(5, orb.Point{}))

	res, err := bfs.Run(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, res.Order)
	assert.Equal(t, 0, res.Depth[5])
	assert.Empty(t, res.Parent)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, path)
}

// TestRun_CycleAndDepths covers a 4-cycle 0-1-2-3-0.
func TestRun_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddNode(i, orb.Point{float64(i) * 200, 0}))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%4))
	}

	res, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 3: 0, 2: 1}, res.Parent)
}

// TestRun_Disconnected leaves unreachable nodes out of the result.
func TestRun_Disconnected(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddNode(4, orb.Point{900, 900}))

	res, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNotReached)

	n, ok := g.Node(4)
	require.True(t, ok)
	assert.Equal(t, core.Unvisited, n.State)
	n, _ = g.Node(3)
	assert.Equal(t, core.Visited, n.State)
}
