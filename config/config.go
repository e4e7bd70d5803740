// Package config holds the immutable, named options consumed by the layout
// generator, the traversal controller and the terminal front end.
//
// A Config is a plain value: build it with Default, ForWindow or Load and
// pass it (or one of its sections) down explicitly. Nothing in this module
// reads configuration from package-level state.
package config

import (
	"time"

	"github.com/paulmach/orb"
)

// Window ratios the layout region is derived from.
const (
	centerXRatio     = 0.65
	centerYRatio     = 0.5
	minRadiusRatio   = 0.15
	maxRadiusRatio   = 0.22
	leftBoundRatio   = 0.35
	rightBoundRatio  = 0.95
	topBoundRatio    = 0.15
	bottomBoundRatio = 0.85
)

// Defaults for every named option.
const (
	DefaultWindowWidth            = 1600
	DefaultWindowHeight           = 900
	DefaultNodeRadius             = 40.0
	DefaultMinDistanceMultiplier  = 3.0
	DefaultSafetyMargin           = 1.1
	DefaultGridSpacingMultiplier  = 1.5
	DefaultRandomOffsetMultiplier = 0.3
	DefaultPlacementAttempts      = 50
	DefaultMinNodes               = 6
	DefaultMaxNodes               = 12
	DefaultExtraEdgesMin          = 1
	DefaultExtraEdgesMax          = 3
	DefaultStepDelay              = time.Second
	DefaultLogLevel               = "info"
)

// Config is the root configuration document.
type Config struct {
	// Window is the world extent renderers map onto their surface.
	Window Window `yaml:"window"`

	// Node holds per-node geometry shared by hit-testing and drawing.
	Node Node `yaml:"node"`

	// Layout parameterizes the procedural generator.
	Layout Layout `yaml:"layout"`

	// Traversal parameterizes the BFS controller.
	Traversal Traversal `yaml:"traversal"`

	// Log selects level and sink for the CLI logger.
	Log Log `yaml:"log"`
}

// Window is the logical drawing area in world units.
type Window struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Node holds node geometry.
type Node struct {
	Radius float64 `yaml:"radius" validate:"gt=0"`
}

// Point is a YAML friendly 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Bounds is the rectangular placement region. Y grows downwards, so Top < Bottom.
type Bounds struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right" validate:"gtfield=Left"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom" validate:"gtfield=Top"`
}

// Bound returns the region as an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.Left, b.Top},
		Max: orb.Point{b.Right, b.Bottom},
	}
}

// Clamp moves p onto the nearest point inside the region.
func (b Bounds) Clamp(p orb.Point) orb.Point {
	return orb.Point{
		max(b.Left, min(b.Right, p.X())),
		max(b.Top, min(b.Bottom, p.Y())),
	}
}

// Layout parameterizes node placement and connectivity.
type Layout struct {
	// MinNodes and MaxNodes bound the uniformly drawn target node count.
	MinNodes int `yaml:"min_nodes" validate:"gte=1"`
	MaxNodes int `yaml:"max_nodes" validate:"gtefield=MinNodes"`

	// MinRadius and MaxRadius bound the ring band around Center.
	MinRadius float64 `yaml:"min_radius" validate:"gte=0"`
	MaxRadius float64 `yaml:"max_radius" validate:"gtefield=MinRadius"`

	// Center is where node 0 is placed and the ring is centred.
	Center Point `yaml:"center"`

	// Bounds clamps every placed position.
	Bounds Bounds `yaml:"bounds"`

	// MinNodeDistance is the raw base separation. It scales the ring jitter
	// and the grid spacing; placement validity uses SafeMinDistance.
	MinNodeDistance float64 `yaml:"min_node_distance" validate:"gt=0"`

	// SafetyMargin multiplies MinNodeDistance into SafeMinDistance.
	SafetyMargin float64 `yaml:"safety_margin" validate:"gt=0"`

	// GridSpacingMultiplier multiplies MinNodeDistance into the grid spacing.
	GridSpacingMultiplier float64 `yaml:"grid_spacing_multiplier" validate:"gt=0"`

	// RandomOffsetMultiplier multiplies MinNodeDistance into the ring jitter range.
	RandomOffsetMultiplier float64 `yaml:"random_offset_multiplier" validate:"gte=0"`

	// Per-strategy attempt budgets.
	RingAttempts   int `yaml:"ring_attempts" validate:"gte=0"`
	GridAttempts   int `yaml:"grid_attempts" validate:"gte=0"`
	RandomAttempts int `yaml:"random_attempts" validate:"gte=0"`

	// ExtraEdgesMin and ExtraEdgesMax bound the extra connection attempts per node.
	ExtraEdgesMin int `yaml:"extra_edges_min" validate:"gte=0"`
	ExtraEdgesMax int `yaml:"extra_edges_max" validate:"gtefield=ExtraEdgesMin"`
}

// SafeMinDistance is the minimum allowed separation between placed nodes.
func (l Layout) SafeMinDistance() float64 {
	return l.MinNodeDistance * l.SafetyMargin
}

// RandomOffsetRange is the full width of the ring placement jitter.
func (l Layout) RandomOffsetRange() float64 {
	return l.MinNodeDistance * l.RandomOffsetMultiplier
}

// GridSpacing is the distance between grid fallback cells.
func (l Layout) GridSpacing() float64 {
	return l.MinNodeDistance * l.GridSpacingMultiplier
}

// MaxConnectDistance scales the extra-edge acceptance probability.
func (l Layout) MaxConnectDistance() float64 {
	return l.MaxRadius * 2
}

// Traversal parameterizes the BFS controller.
type Traversal struct {
	// StepDelay is the auto-step interval.
	StepDelay time.Duration `yaml:"step_delay" validate:"gte=0"`

	// AutoStep is the initial auto-step flag.
	AutoStep bool `yaml:"auto_step"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	// File receives log output; empty means stderr (discard while the TUI runs).
	File string `yaml:"file"`
}

// Default returns the configuration for the default 1600×900 world.
func Default() Config {
	return ForWindow(DefaultWindowWidth, DefaultWindowHeight)
}

// ForWindow derives center, ring band and bounds from the window ratios and
// fills every other option with its default.
func ForWindow(width, height float64) Config {
	minDistance := DefaultNodeRadius * DefaultMinDistanceMultiplier

	return Config{
		Window: Window{Width: width, Height: height},
		Node:   Node{Radius: DefaultNodeRadius},
		Layout: Layout{
			MinNodes:  DefaultMinNodes,
			MaxNodes:  DefaultMaxNodes,
			MinRadius: height * minRadiusRatio,
			MaxRadius: height * maxRadiusRatio,
			Center:    Point{X: width * centerXRatio, Y: height * centerYRatio},
			Bounds: Bounds{
				Left:   width * leftBoundRatio,
				Right:  width * rightBoundRatio,
				Top:    height * topBoundRatio,
				Bottom: height * bottomBoundRatio,
			},
			MinNodeDistance:        minDistance,
			SafetyMargin:           DefaultSafetyMargin,
			GridSpacingMultiplier:  DefaultGridSpacingMultiplier,
			RandomOffsetMultiplier: DefaultRandomOffsetMultiplier,
			RingAttempts:           DefaultPlacementAttempts,
			GridAttempts:           DefaultPlacementAttempts,
			RandomAttempts:         DefaultPlacementAttempts,
			ExtraEdgesMin:          DefaultExtraEdgesMin,
			ExtraEdgesMax:          DefaultExtraEdgesMax,
		},
		Traversal: Traversal{StepDelay: DefaultStepDelay},
		Log:       Log{Level: DefaultLogLevel},
	}
}
