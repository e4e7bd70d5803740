// File: methods_hit.go
// Role: Point hit-testing for pointer input.

package core

import "github.com/paulmach/orb"

// NodeAt returns the id of the node whose circle (centre Position, radius
// NodeRadius) contains p, boundary included. When circles overlap the lowest
// id wins so repeated clicks resolve identically.
//
// Complexity:
//   - Time O(log V + k), k = nodes whose bounding square contains p.
func (g *Graph) NodeAt(p orb.Point) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.index.Within(p, g.radius)
	if len(ids) == 0 {
		return -1, false
	}

	return ids[0], true
}
