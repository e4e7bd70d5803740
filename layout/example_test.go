package layout_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/layout"
)

// ExampleGenerate lays out a seeded graph and checks its spanning tree.
func ExampleGenerate() {
	cfg := config.Default().Layout
	cfg.MinNodes, cfg.MaxNodes = 8, 8

	g := core.NewGraph()
	rep := layout.Generate(g, cfg, layout.WithSeed(2024))

	fmt.Println("nodes:", g.Len())
	fmt.Println("tree edges:", rep.TreeEdges)
	fmt.Println("edges ≥ tree:", g.EdgeCount() >= rep.TreeEdges)
	// Output:
	// nodes: 8
	// tree edges: 7
	// edges ≥ tree: true
}
