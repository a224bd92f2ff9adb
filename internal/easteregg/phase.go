package easteregg

// Phase is the lifecycle state of the hidden game.
type Phase int

const (
	PhaseInactive Phase = iota // Hidden; only the detector listens
	PhaseRunning               // Ticks are scheduled
	PhaseGameOver              // Stopped on a collision, waiting for restart or close
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Active reports whether the game is visible.
func (p Phase) Active() bool {
	return p == PhaseRunning || p == PhaseGameOver
}
