// SPDX-License-Identifier: MIT
// Package: bfsviz/layout
//
// options.go — functional options and their resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors PANIC on nil inputs; Generate itself never panics.
//   • Determinism is explicit: seed via WithSeed or WithRand.

package layout

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// generatorConfig aggregates the knobs that are not layout geometry.
type generatorConfig struct {
	// rng drives every random draw; nil is resolved to a time-seeded source.
	rng *rand.Rand
	// log receives per-node placement traces at debug level.
	log logrus.FieldLogger
}

// Option customizes a single Generate call.
type Option func(*generatorConfig)

// WithSeed creates a deterministic source from seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithLogger routes placement traces to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("layout: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.log = l
	}
}

// newGeneratorConfig applies opts in order (last wins) and resolves defaults.
func newGeneratorConfig(opts ...Option) generatorConfig {
	var cfg generatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		cfg.log = discardLogger()
	}

	return cfg
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
