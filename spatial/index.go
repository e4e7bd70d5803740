// Package spatial provides a small R-tree backed point index used for
// node hit-testing and placement separation checks.
//
// Points are stored as degenerate rectangles (side 2·pointTolerance); range
// queries first collect candidates whose boxes intersect the query square and
// then refine them with the exact Euclidean distance.
//
// Complexity (n = indexed points):
//   - Insert: O(log n) amortized.
//   - Within / HasCloser: O(log n + k) where k = candidates in the query square.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// R-tree tuning; small fan-out suits the tens of nodes a layout holds.
const (
	dimensions     = 2
	minChildren    = 2
	maxChildren    = 8
	pointTolerance = 1e-9
)

// entry wraps one indexed point for R-tree storage.
type entry struct {
	id   int
	pt   orb.Point
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index manages point queries keyed by integer id.
// It is not safe for concurrent mutation.
type Index struct {
	tree *rtreego.Rtree
}

// New creates an empty index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(dimensions, minChildren, maxChildren)}
}

// Insert adds point p under id. Duplicate ids are not detected here;
// callers own id uniqueness.
func (ix *Index) Insert(id int, p orb.Point) {
	ix.tree.Insert(&entry{
		id:   id,
		pt:   p,
		rect: toPoint(p).ToRect(pointTolerance),
	})
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Clear drops every indexed point.
func (ix *Index) Clear() {
	ix.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
}

// Within returns the ids whose point lies at distance <= r from p,
// sorted ascending. A non-positive r matches only coincident points.
func (ix *Index) Within(p orb.Point, r float64) []int {
	var ids []int
	for _, e := range ix.candidates(p, r) {
		if planar.Distance(p, e.pt) <= r {
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)

	return ids
}

// HasCloser reports whether any indexed point lies strictly closer than d to p.
func (ix *Index) HasCloser(p orb.Point, d float64) bool {
	for _, e := range ix.candidates(p, d) {
		if planar.Distance(p, e.pt) < d {
			return true
		}
	}

	return false
}

// candidates returns the entries whose boxes intersect the square of
// half-side r centred on p.
func (ix *Index) candidates(p orb.Point, r float64) []*entry {
	if r < pointTolerance {
		r = pointTolerance
	}
	hits := ix.tree.SearchIntersect(toPoint(p).ToRect(r))
	out := make([]*entry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*entry))
	}

	return out
}

func toPoint(p orb.Point) rtreego.Point {
	return rtreego.Point{p.X(), p.Y()}
}
