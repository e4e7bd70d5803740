package bfs

import (
	"maps"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
)

// Run traverses g from start to completion and returns the discovery order,
// depths and parent links. Hooks and logger options apply as for
// NewController. Returns ErrGraphNil or ErrStartNotFound for invalid input.
//
// Run drives a Controller, so it updates node display states as a side
// effect; every reached node ends Visited.
func Run(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	c := NewController(g, config.Traversal{}, opts...)
	c.StartBFS(start)
	// Step reports false once the controller leaves Running
	for c.Step() {
	}

	return &Result{
		Order:  c.VisitOrder(),
		Depth:  maps.Clone(c.depth),
		Parent: maps.Clone(c.parent),
	}, nil
}
