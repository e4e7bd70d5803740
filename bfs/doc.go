// Package bfs provides a step-addressable breadth-first traversal over a
// core.Graph, built for frame-by-frame visualization.
//
// What
//
//   - Controller is an explicit state machine with four states:
//     Ready (initial, after Reset), Running, Paused and Finished.
//   - Commands: StartBFS(id), Step(), Pause(), Resume(), Reset(),
//     SetAutoStep(bool), SetStepDelay(d), Tick(delta).
//     Each returns whether it took effect; invalid commands are ignored.
//   - Queries: State, Queue (FIFO order), VisitOrder, Current, Start,
//     AutoStep, StepDelay, Visited, Depth, PathTo and Snapshot.
//   - After StartBFS and after every Step the controller rewrites the
//     display state of every node in the graph, in this order:
//     Unvisited → Visited (visit order) → InQueue (queue) → Current.
//   - Run drives a Controller to completion and returns a Result.
//
// Transitions
//
//	         StartBFS            Pause
//	Ready ───────────▶ Running ────────▶ Paused
//	  ▲                 │  ▲   ◀────────  │
//	  │                 │  │    Resume    │
//	  │       queue empty│  │StartBFS      │
//	  │                 ▼  │              │
//	  └──── Reset ──── Finished ◀─────────┘ (Reset from anywhere → Ready)
//
//	The full table lives in transitions.go; pairs absent from it are no-ops.
//	StartBFS is accepted in every state and implies a reset.
//
// Auto-step
//
//	Tick(delta) only acts while auto-step is on and the state is Running. It
//	accumulates delta; once the accumulator reaches StepDelay it fires one
//	Step and restarts from zero, so long frames never fire more than one
//	step.
//
// Determinism
//
//	Neighbors are enqueued in the graph's stored adjacency order, so the
//	visit sequence is fully reproducible for a given graph.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Step:  O(deg(v)) plus an O(V) display refresh.
//   - Run:   O(V·V + E) with the per-step refresh, O(V) memory.
//
// Usage
//
//	c := bfs.NewController(g, cfg.Traversal, bfs.WithLogger(log))
//	c.StartBFS(0)
//	for c.State() == bfs.Running {
//	    c.Step()
//	}
//
//	// or, as a one-shot traversal:
//	res, err := bfs.Run(g, 0)
//	path, err := res.PathTo(3)
//
// Errors
//
//   - The Controller has no error channel.
//   - ErrGraphNil / ErrStartNotFound from Run.
//   - ErrNotReached from PathTo.
package bfs
