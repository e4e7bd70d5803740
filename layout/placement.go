// SPDX-License-Identifier: MIT
// Package: bfsviz/layout
//
// placement.go — three-tier node placement (ring → grid → random).
//
// RNG draw order per candidate (stable for a fixed seed):
//   • ring:   angle, radius, jitterX, jitterY
//   • grid:   jitterX, jitterY
//   • random: x, y

package layout

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/spatial"
)

// gridJitterFraction bounds grid jitter to 20% of the spacing.
const gridJitterFraction = 0.2

// placer owns the per-call placement state.
type placer struct {
	cfg      config.Layout
	rng      *rand.Rand
	gridSide int
	safe     float64
	occupied *spatial.Index
}

func newPlacer(cfg config.Layout, rng *rand.Rand, target int) *placer {
	return &placer{
		cfg:      cfg,
		rng:      rng,
		gridSide: int(math.Ceil(math.Sqrt(float64(target)))) + 1,
		safe:     cfg.SafeMinDistance(),
		occupied: spatial.New(),
	}
}

// place finds a position for node i. It reports the strategy that succeeded
// and the 1-based attempt within that strategy's budget; ok is false once
// every budget is exhausted.
func (p *placer) place(i int) (pos orb.Point, s Strategy, attempt int, ok bool) {
	if i == 0 {
		return p.cfg.Center.Orb(), Center, 1, true
	}

	tiers := []struct {
		strategy Strategy
		budget   int
		next     func(i int) orb.Point
	}{
		{Ring, p.cfg.RingAttempts, p.ringPosition},
		{Grid, p.cfg.GridAttempts, p.gridPosition},
		{Random, p.cfg.RandomAttempts, p.randomPosition},
	}
	for _, tier := range tiers {
		for a := 1; a <= tier.budget; a++ {
			cand := tier.next(i)
			if p.valid(cand) {
				return cand, tier.strategy, a, true
			}
		}
	}

	return orb.Point{}, Random, 0, false
}

// commit records an accepted position for later separation checks.
func (p *placer) commit(id int, pos orb.Point) {
	p.occupied.Insert(id, pos)
}

// valid reports whether pos keeps SafeMinDistance from every committed node.
func (p *placer) valid(pos orb.Point) bool {
	return !p.occupied.HasCloser(pos, p.safe)
}

func (p *placer) ringPosition(int) orb.Point {
	c := p.cfg.Center
	angle := p.rng.Float64() * 2 * math.Pi
	radius := p.cfg.MinRadius + p.rng.Float64()*(p.cfg.MaxRadius-p.cfg.MinRadius)

	offset := p.cfg.RandomOffsetRange()
	pos := orb.Point{
		c.X + radius*math.Cos(angle) + (p.rng.Float64()-0.5)*offset,
		c.Y + radius*math.Sin(angle) + (p.rng.Float64()-0.5)*offset,
	}

	return p.cfg.Bounds.Clamp(pos)
}

// gridPosition maps node i to cell i-1; node 0 sits at the centre, hence the shift.
func (p *placer) gridPosition(i int) orb.Point {
	gx := (i - 1) % p.gridSide
	gy := (i - 1) / p.gridSide

	spacing := p.cfg.GridSpacing()
	jitter := spacing * gridJitterFraction
	pos := orb.Point{
		p.cfg.Bounds.Left + float64(gx+1)*spacing + (p.rng.Float64()-0.5)*jitter,
		p.cfg.Bounds.Top + float64(gy+1)*spacing + (p.rng.Float64()-0.5)*jitter,
	}

	return p.cfg.Bounds.Clamp(pos)
}

func (p *placer) randomPosition(int) orb.Point {
	b := p.cfg.Bounds
	x := b.Left + p.rng.Float64()*(b.Right-b.Left)
	y := b.Top + p.rng.Float64()*(b.Bottom-b.Top)

	return orb.Point{x, y}
}
