package state

// GameState represents the current state of a play session
type GameState int

const (
	StateRunning GameState = iota
	StatePaused
	StateFrozen
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateFrozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// Halted reports whether the simulation no longer advances in this state.
// A paused session can resume; a frozen one cannot.
func (s GameState) Halted() bool {
	return s == StateFrozen
}
