package layout_test

import (
	"testing"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/layout"
)

// BenchmarkGenerate_Default measures one full layout with default settings.
func BenchmarkGenerate_Default(b *testing.B) {
	cfg := config.Default().Layout
	g := core.NewGraph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		layout.Generate(g, cfg, layout.WithSeed(int64(i)))
	}
}

// BenchmarkGenerate_Large stresses placement with a wide region and many nodes.
func BenchmarkGenerate_Large(b *testing.B) {
	cfg := config.ForWindow(8000, 4500).Layout
	cfg.MinNodes, cfg.MaxNodes = 150, 150

	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		layout.Generate(g, cfg, layout.WithSeed(int64(i)))
	}
}
