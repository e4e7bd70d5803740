package bfs

import (
	"io"
	"time"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
)

// Controller drives a breadth-first traversal over a core.Graph one step at
// a time. Commands issued in the wrong state, or with unknown ids, are
// ignored and report false. A Controller is not safe for concurrent use.
type Controller struct {
	graph *core.Graph
	opts  options

	state   State
	queue   *arrayqueue.Queue // FIFO of node ids
	visited *hashset.Set      // discovered ids, not only processed ones
	order   []int
	current int
	start   int
	depth   map[int]int
	parent  map[int]int

	autoStep      bool
	stepDelay     time.Duration
	sinceLastStep time.Duration
}

// NewController returns a Ready controller over g. The step delay and the
// initial auto-step flag come from cfg; WithAutoStep overrides the latter.
func NewController(g *core.Graph, cfg config.Traversal, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller{
		graph:     g,
		opts:      o,
		state:     Ready,
		queue:     arrayqueue.New(),
		visited:   hashset.New(),
		current:   NoNode,
		start:     NoNode,
		depth:     map[int]int{},
		parent:    map[int]int{},
		autoStep:  cfg.AutoStep,
		stepDelay: max(cfg.StepDelay, 0),
	}
	if o.autoStep != nil {
		c.autoStep = *o.autoStep
	}

	return c
}

// StartBFS restarts the traversal from id. Ignored if id is not a node.
func (c *Controller) StartBFS(id int) bool {
	if c.graph == nil || !c.graph.HasNode(id) {
		return false
	}
	to, ok := next(c.state, cmdStart)
	if !ok {
		return false
	}
	c.clear()
	c.start = id
	c.discover(id, NoNode)
	c.moveTo(to, cmdStart)
	c.refresh()

	return true
}

// Step processes the head of the queue. Only effective while Running.
func (c *Controller) Step() bool {
	if _, ok := next(c.state, cmdStep); !ok {
		return false
	}
	if c.queue.Empty() {
		c.finish()
		c.refresh()

		return true
	}

	v, _ := c.queue.Dequeue()
	id := v.(int)
	c.current = id
	c.opts.onDequeue(id, c.depth[id])
	for _, nb := range c.graph.Neighbors(id) {
		if !c.visited.Contains(nb) {
			c.discover(nb, id)
		}
	}
	if c.queue.Empty() {
		c.finish()
	}
	c.refresh()

	return true
}

// Pause suspends a Running traversal.
func (c *Controller) Pause() bool {
	return c.apply(cmdPause)
}

// Resume continues a Paused traversal.
func (c *Controller) Resume() bool {
	return c.apply(cmdResume)
}

// Reset returns to Ready from any state and marks every node Unvisited.
func (c *Controller) Reset() bool {
	to, ok := next(c.state, cmdReset)
	if !ok {
		return false
	}
	c.clear()
	c.moveTo(to, cmdReset)
	if c.graph != nil {
		c.graph.ResetStates()
	}

	return true
}

// SetAutoStep toggles tick-driven stepping.
func (c *Controller) SetAutoStep(on bool) bool {
	c.autoStep = on

	return true
}

// SetStepDelay sets the auto-step interval. Negative delays are ignored.
func (c *Controller) SetStepDelay(d time.Duration) bool {
	if d < 0 {
		return false
	}
	c.stepDelay = d

	return true
}

// Tick advances the auto-step clock by delta. At most one Step fires per
// call; the accumulator then restarts from zero.
func (c *Controller) Tick(delta time.Duration) bool {
	if !c.autoStep || c.state != Running {
		return false
	}
	c.sinceLastStep += delta
	if c.sinceLastStep < c.stepDelay {
		return false
	}
	c.sinceLastStep = 0

	return c.Step()
}

// apply runs a command whose only effect is the state change itself.
func (c *Controller) apply(cmd command) bool {
	to, ok := next(c.state, cmd)
	if !ok {
		return false
	}
	c.moveTo(to, cmd)

	return true
}

func (c *Controller) moveTo(to State, cmd command) {
	from := c.state
	c.state = to
	c.opts.log.WithFields(logrus.Fields{
		"from":    from.String(),
		"to":      to.String(),
		"command": cmd.String(),
	}).Debug("bfs: transition")
	if from != to {
		c.opts.onTransition(from, to)
	}
}

func (c *Controller) finish() {
	c.current = NoNode
	if to, ok := next(c.state, cmdDrain); ok {
		c.moveTo(to, cmdDrain)
	}
}

// discover marks id visited, records depth and parent, and enqueues it.
func (c *Controller) discover(id, parent int) {
	d := 0
	if parent != NoNode {
		d = c.depth[parent] + 1
		c.parent[id] = parent
	}
	c.depth[id] = d
	c.visited.Add(id)
	c.order = append(c.order, id)
	c.queue.Enqueue(id)
	c.opts.onEnqueue(id, d)
}

// clear drops all per-run state, the tick accumulator included.
func (c *Controller) clear() {
	c.queue.Clear()
	c.visited.Clear()
	c.order = c.order[:0]
	c.current = NoNode
	c.start = NoNode
	c.depth = map[int]int{}
	c.parent = map[int]int{}
	c.sinceLastStep = 0
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
