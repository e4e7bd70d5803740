// SPDX-License-Identifier: MIT
// Package: bfsviz/layout
//
// generate.go — Generate, the single public entry point, and its Report.

package layout

import (
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
)

// Report summarizes one Generate call.
type Report struct {
	// Target is the drawn node count.
	Target int `yaml:"target"`
	// Realized is the number of nodes actually placed (≤ Target).
	Realized int `yaml:"realized"`
	// Placements counts placed nodes per strategy.
	Placements Placements `yaml:"placements"`
	// Strategies[i] is the strategy that placed node i.
	Strategies []Strategy `yaml:"-"`
	// TreeEdges is the spanning-tree edge count (Realized-1 when Realized > 0).
	TreeEdges int `yaml:"tree_edges"`
	// ExtraEdges is the number of probabilistic edges added on top.
	ExtraEdges int `yaml:"extra_edges"`
}

// Degraded reports whether placement stopped before reaching Target.
func (r Report) Degraded() bool {
	return r.Realized < r.Target
}

// Generate clears g and fills it with a connected layout described by cfg.
// Nodes get ids 0..Realized-1 in placement order. A nil g yields a zero Report.
func Generate(g *core.Graph, cfg config.Layout, opts ...Option) Report {
	if g == nil {
		return Report{}
	}
	gc := newGeneratorConfig(opts...)
	cfg = normalize(cfg)
	g.Clear()

	target := cfg.MinNodes + gc.rng.Intn(cfg.MaxNodes-cfg.MinNodes+1)
	gc.log.WithField("target", target).Debug("layout: placing nodes")

	rep := Report{Target: target, Strategies: make([]Strategy, 0, target)}
	positions := make([]orb.Point, 0, target)
	p := newPlacer(cfg, gc.rng, target)
	for i := 0; i < target; i++ {
		pos, s, attempt, ok := p.place(i)
		if !ok {
			gc.log.WithFields(logrus.Fields{"node": i, "target": target}).
				Debug("layout: placement budgets exhausted, reducing node count")
			break
		}
		// ids are fresh after Clear, so AddNode cannot fail here
		_ = g.AddNode(i, pos)
		p.commit(i, pos)
		positions = append(positions, pos)
		rep.Placements.add(s)
		rep.Strategies = append(rep.Strategies, s)
		gc.log.WithFields(logrus.Fields{"node": i, "strategy": s.String(), "attempt": attempt}).
			Debug("layout: node placed")
	}
	rep.Realized = len(positions)

	rep.TreeEdges = connectTree(g, positions)
	rep.ExtraEdges = connectExtra(g, positions, cfg, gc.rng)

	gc.log.WithFields(logrus.Fields{
		"target":      rep.Target,
		"realized":    rep.Realized,
		"tree_edges":  rep.TreeEdges,
		"extra_edges": rep.ExtraEdges,
	}).Debug("layout: generated")

	return rep
}

// normalize makes cfg safe for Generate without rejecting it: counts and
// budgets are floored and swapped ranges are reordered.
func normalize(cfg config.Layout) config.Layout {
	cfg.MinNodes = max(cfg.MinNodes, 1)
	cfg.MaxNodes = max(cfg.MaxNodes, 1)
	if cfg.MaxNodes < cfg.MinNodes {
		cfg.MinNodes, cfg.MaxNodes = cfg.MaxNodes, cfg.MinNodes
	}
	if cfg.MaxRadius < cfg.MinRadius {
		cfg.MinRadius, cfg.MaxRadius = cfg.MaxRadius, cfg.MinRadius
	}
	if cfg.Bounds.Right < cfg.Bounds.Left {
		cfg.Bounds.Left, cfg.Bounds.Right = cfg.Bounds.Right, cfg.Bounds.Left
	}
	if cfg.Bounds.Bottom < cfg.Bounds.Top {
		cfg.Bounds.Top, cfg.Bounds.Bottom = cfg.Bounds.Bottom, cfg.Bounds.Top
	}
	cfg.RingAttempts = max(cfg.RingAttempts, 0)
	cfg.GridAttempts = max(cfg.GridAttempts, 0)
	cfg.RandomAttempts = max(cfg.RandomAttempts, 0)
	cfg.ExtraEdgesMin = max(cfg.ExtraEdgesMin, 0)
	cfg.ExtraEdgesMax = max(cfg.ExtraEdgesMax, 0)
	if cfg.ExtraEdgesMax < cfg.ExtraEdgesMin {
		cfg.ExtraEdgesMin, cfg.ExtraEdgesMax = cfg.ExtraEdgesMax, cfg.ExtraEdgesMin
	}

	return cfg
}
