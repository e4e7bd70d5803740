// Package bfs provides tunable options, states and error definitions
// for the step-addressable breadth-first traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for the validated entry points (Run, Result.PathTo).
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start id is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNotReached is returned by PathTo for nodes the run never discovered.
	ErrNotReached = errors.New("bfs: node not reached")
)

// NoNode stands for "no node" in Snapshot fields.
const NoNode = -1

// State is the run state of a Controller.
type State int

const (
	// Ready is the initial state and the state after Reset.
	Ready State = iota
	// Running accepts Step and Tick.
	Running
	// Paused holds the traversal until Resume.
	Paused
	// Finished means the queue drained.
	Finished
)

// String returns the upper-case state label shown by renderers.
func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	case Finished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Option configures a Controller via functional arguments.
type Option func(*options)

// options holds hooks and knobs applied at construction.
type options struct {
	// autoStep overrides config.Traversal.AutoStep when set.
	autoStep *bool

	// onEnqueue is called when a node is discovered, with its depth.
	onEnqueue func(id, depth int)

	// onDequeue is called when a node becomes current.
	onDequeue func(id, depth int)

	// onTransition is called after every state change.
	onTransition func(from, to State)

	log logrus.FieldLogger
}

// defaultOptions returns no-op hooks and a discard logger.
func defaultOptions() options {
	return options{
		onEnqueue:    func(int, int) {},
		onDequeue:    func(int, int) {},
		onTransition: func(State, State) {},
		log:          discardLogger(),
	}
}

// WithAutoStep sets the initial auto-step flag.
func WithAutoStep(on bool) Option {
	return func(o *options) {
		o.autoStep = &on
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a node becomes current.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithOnTransition registers a callback to run after each state change.
func WithOnTransition(fn func(from, to State)) Option {
	return func(o *options) {
		if fn != nil {
			o.onTransition = fn
		}
	}
}

// WithLogger routes transition traces (debug level) to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Snapshot is a read-only copy of the controller for renderers.
type Snapshot struct {
	State      State
	Queue      []int
	VisitOrder []int
	// Current and Start are NoNode when unset.
	Current   int
	Start     int
	AutoStep  bool
	StepDelay time.Duration
}

// Result holds the outcome of a completed traversal:
//   - Order: nodes in discovery sequence.
//   - Depth: map from node id to its distance (in edges) from the start.
//   - Parent: map from node id to its predecessor in the BFS tree.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNotReached if dest was not discovered.
func (r *Result) PathTo(dest int) ([]int, error) {
	return pathTo(r.Depth, r.Parent, dest)
}

func pathTo(depth, parent map[int]int, dest int) ([]int, error) {
	if _, ok := depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
