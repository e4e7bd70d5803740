package spatial_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/spatial"
)

func TestIndex_Within(t *testing.T) {
	ix := spatial.New()
	ix.Insert(2, orb.Point{10, 0})
	ix.Insert(0, orb.Point{0, 0})
	ix.Insert(1, orb.Point{3, 4})
	require.Equal(t, 3, ix.Len())

	// radius 5 reaches (3,4) exactly; boundary is inclusive
	assert.Equal(t, []int{0, 1}, ix.Within(orb.Point{0, 0}, 5))
	assert.Equal(t, []int{0, 1, 2}, ix.Within(orb.Point{5, 0}, 5))
	assert.Empty(t, ix.Within(orb.Point{100, 100}, 5))
	// zero radius only matches the coincident point
	assert.Equal(t, []int{2}, ix.Within(orb.Point{10, 0}, 0))
}

func TestIndex_HasCloser(t *testing.T) {
	ix := spatial.New()
	ix.Insert(0, orb.Point{0, 0})

	assert.True(t, ix.HasCloser(orb.Point{1, 1}, 2))
	// exactly d away is not closer
	assert.False(t, ix.HasCloser(orb.Point{3, 4}, 5))
	assert.False(t, ix.HasCloser(orb.Point{30, 40}, 5))
}

func TestIndex_Clear(t *testing.T) {
	ix := spatial.New()
	for i := 0; i < 50; i++ {
		ix.Insert(i, orb.Point{float64(i), float64(i)})
	}
	require.Equal(t, 50, ix.Len())

	ix.Clear()
	assert.Zero(t, ix.Len())
	assert.False(t, ix.HasCloser(orb.Point{1, 1}, 10))
}
