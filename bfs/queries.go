package bfs

import (
	"time"

	"github.com/katalvlaran/bfsviz/core"
)

// State returns the current run state.
func (c *Controller) State() State { return c.state }

// Queue returns the pending ids in FIFO order.
func (c *Controller) Queue() []int {
	vals := c.queue.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}

// VisitOrder returns ids in discovery order.
func (c *Controller) VisitOrder() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)

	return out
}

// Current returns the most recently dequeued node, if any.
func (c *Controller) Current() (int, bool) {
	return c.current, c.current != NoNode
}

// Start returns the start node of the current run, if any.
func (c *Controller) Start() (int, bool) {
	return c.start, c.start != NoNode
}

// AutoStep reports whether Tick may fire steps.
func (c *Controller) AutoStep() bool { return c.autoStep }

// StepDelay returns the auto-step interval.
func (c *Controller) StepDelay() time.Duration { return c.stepDelay }

// Visited reports whether id was discovered in the current run.
func (c *Controller) Visited(id int) bool {
	return c.visited.Contains(id)
}

// Depth returns the BFS layer of id in the current run.
func (c *Controller) Depth(id int) (int, bool) {
	d, ok := c.depth[id]

	return d, ok
}

// PathTo returns the BFS-tree path from the start node to id.
// Returns ErrNotReached if id was not discovered yet.
func (c *Controller) PathTo(id int) ([]int, error) {
	return pathTo(c.depth, c.parent, id)
}

// Snapshot copies the controller state for rendering.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Queue:      c.Queue(),
		VisitOrder: c.VisitOrder(),
		Current:    c.current,
		Start:      c.start,
		AutoStep:   c.autoStep,
		StepDelay:  c.stepDelay,
	}
}

// refresh recomputes display states: unvisited, then visited, then
// in-queue, then current. Later passes override earlier ones.
func (c *Controller) refresh() {
	if c.graph == nil {
		return
	}
	c.graph.ResetStates()
	for _, id := range c.order {
		c.graph.SetState(id, core.Visited)
	}
	for _, id := range c.Queue() {
		c.graph.SetState(id, core.InQueue)
	}
	if c.current != NoNode {
		c.graph.SetState(c.current, core.Current)
	}
}
