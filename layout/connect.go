// SPDX-License-Identifier: MIT
// Package: bfsviz/layout
//
// connect.go — two-phase edge construction.
//
// Phase 1 (tree): for i = 1..n-1 connect i to the nearest already-connected
// node among 0..i-1; ties go to the lowest index. Exactly n-1 edges.
// Phase 2 (extra): for each i, k ∈ [ExtraEdgesMin, ExtraEdgesMax] attempts;
// each attempt scans j = i+1..n-1 and stops at the first accepted edge.

package layout

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
)

// Extra-edge acceptance curve: p = max(probabilityFloor, probabilityCeiling − d/maxConnect).
const (
	probabilityCeiling = 0.6
	probabilityFloor   = 0.05
)

// connectTree adds the nearest-neighbor spanning tree and returns its edge count.
func connectTree(g *core.Graph, positions []orb.Point) int {
	n := len(positions)
	if n == 0 {
		return 0
	}

	connected := make([]bool, n)
	connected[0] = true
	edges := 0
	for i := 1; i < n; i++ {
		best := -1
		bestDist := math.MaxFloat64
		for j := 0; j < i; j++ {
			if !connected[j] {
				continue
			}
			if d := planar.Distance(positions[i], positions[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 {
			continue
		}
		if err := g.AddEdge(i, best); err == nil {
			edges++
		}
		connected[i] = true
	}

	return edges
}

// connectExtra adds distance-biased extra edges and returns how many were added.
func connectExtra(g *core.Graph, positions []orb.Point, cfg config.Layout, rng *rand.Rand) int {
	n := len(positions)
	maxConnect := cfg.MaxConnectDistance()
	span := cfg.ExtraEdgesMax - cfg.ExtraEdgesMin + 1

	added := 0
	for i := 0; i < n; i++ {
		attempts := cfg.ExtraEdgesMin + rng.Intn(span)
		for a := 0; a < attempts; a++ {
			for j := i + 1; j < n; j++ {
				if g.HasEdge(i, j) {
					continue
				}
				d := planar.Distance(positions[i], positions[j])
				if rng.Float64() < acceptance(d, maxConnect) {
					if err := g.AddEdge(i, j); err == nil {
						added++
					}
					break
				}
			}
		}
	}

	return added
}

// acceptance is the extra-edge probability for two nodes d apart.
func acceptance(d, maxConnect float64) float64 {
	if maxConnect <= 0 {
		return probabilityFloor
	}

	return math.Max(probabilityFloor, probabilityCeiling-d/maxConnect)
}
