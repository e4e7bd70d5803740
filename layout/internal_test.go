package layout

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
)

func TestAcceptance(t *testing.T) {
	const maxConnect = 396.0

	assert.InDelta(t, 0.6, acceptance(0, maxConnect), 1e-12)
	assert.InDelta(t, 0.1, acceptance(198, maxConnect), 1e-12)
	// far pairs bottom out at the floor
	assert.InDelta(t, 0.05, acceptance(1000, maxConnect), 1e-12)
	assert.InDelta(t, 0.05, acceptance(10, 0), 1e-12)
}

func TestGridPosition_Cells(t *testing.T) {
	cfg := config.Default().Layout
	cfg.Bounds = config.Bounds{Left: 0, Right: 10000, Top: 0, Bottom: 10000}
	p := newPlacer(cfg, rand.New(rand.NewSource(1)), 8)

	// ⌈√8⌉+1 = 4 columns
	require.Equal(t, 4, p.gridSide)

	spacing := cfg.GridSpacing()
	tol := spacing * gridJitterFraction / 2
	cases := []struct {
		node   int
		gx, gy int
	}{
		{1, 0, 0},
		{4, 3, 0},
		{5, 0, 1},
		{7, 2, 1},
	}
	for _, tc := range cases {
		pos := p.gridPosition(tc.node)
		assert.InDelta(t, float64(tc.gx+1)*spacing, pos.X(), tol, "node %d x", tc.node)
		assert.InDelta(t, float64(tc.gy+1)*spacing, pos.Y(), tol, "node %d y", tc.node)
	}
}

func TestRingPosition_Band(t *testing.T) {
	cfg := config.Default().Layout
	cfg.Bounds = config.Bounds{Left: -1e6, Right: 1e6, Top: -1e6, Bottom: 1e6}
	p := newPlacer(cfg, rand.New(rand.NewSource(2)), 10)

	c := cfg.Center.Orb()
	slack := cfg.RandomOffsetRange() // half-range per axis, both axes
	for i := 0; i < 200; i++ {
		pos := p.ringPosition(i)
		r := planar.Distance(c, pos)
		assert.GreaterOrEqual(t, r, cfg.MinRadius-slack)
		assert.LessOrEqual(t, r, cfg.MaxRadius+slack)
	}
}

func TestConnectTree_TiesGoToLowestIndex(t *testing.T) {
	g := core.NewGraph()
	positions := []orb.Point{{0, 0}, {200, 0}, {100, 0}}
	for i, pos := range positions {
		require.NoError(t, g.AddNode(i, pos))
	}

	// node 2 is 100 from both 0 and 1
	assert.Equal(t, 2, connectTree(g, positions))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(2, 1))
}

func TestValid_RejectsOnlyStrictlyCloser(t *testing.T) {
	cfg := config.Default().Layout
	p := newPlacer(cfg, rand.New(rand.NewSource(1)), 2)
	p.commit(0, orb.Point{0, 0})

	safe := cfg.SafeMinDistance()
	assert.True(t, p.valid(orb.Point{safe, 0}))
	assert.False(t, p.valid(orb.Point{safe - 0.5, 0}))
}
