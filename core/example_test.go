package core_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bfsviz/core"
)

// ExampleGraph_Edges shows the de-duplicated edge list a renderer draws.
func ExampleGraph_Edges() {
	g := core.NewGraph()
	_ = g.AddNode(0, orb.Point{0, 0})
	_ = g.AddNode(1, orb.Point{150, 0})
	_ = g.AddNode(2, orb.Point{0, 150})
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(0, 2)

	for _, e := range g.Edges() {
		fmt.Printf("%d-%d\n", e.A, e.B)
	}
	// Output:
	// 0-1
	// 0-2
}

// ExampleGraph_NodeAt hit-tests a click against node circles.
func ExampleGraph_NodeAt() {
	g := core.NewGraph(core.WithNodeRadius(40))
	_ = g.AddNode(7, orb.Point{500, 300})

	if id, ok := g.NodeAt(orb.Point{520, 310}); ok {
		fmt.Println("clicked node", id)
	}
	_, ok := g.NodeAt(orb.Point{600, 300})
	fmt.Println("miss:", !ok)
	// Output:
	// clicked node 7
	// miss: true
}
