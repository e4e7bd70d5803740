package bfs

// command names an input to the state machine.
type command int

const (
	cmdStart command = iota
	cmdStep
	cmdPause
	cmdResume
	cmdReset
	// cmdDrain is issued internally when Step finds the queue empty.
	cmdDrain
)

func (c command) String() string {
	switch c {
	case cmdStart:
		return "start"
	case cmdStep:
		return "step"
	case cmdPause:
		return "pause"
	case cmdResume:
		return "resume"
	case cmdReset:
		return "reset"
	case cmdDrain:
		return "drain"
	default:
		return "unknown"
	}
}

// transitions is the complete state × command table. A missing pair means
// the command is ignored in that state.
var transitions = map[State]map[command]State{
	Ready: {
		cmdStart: Running,
		cmdReset: Ready,
	},
	Running: {
		cmdStart: Running,
		cmdStep:  Running,
		cmdPause: Paused,
		cmdReset: Ready,
		cmdDrain: Finished,
	},
	Paused: {
		cmdStart:  Running,
		cmdResume: Running,
		cmdReset:  Ready,
	},
	Finished: {
		cmdStart: Running,
		cmdReset: Ready,
	},
}

// next looks up the target state; ok is false for ignored commands.
func next(s State, c command) (State, bool) {
	to, ok := transitions[s][c]

	return to, ok
}
