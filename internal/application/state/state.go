package state

// GameState represents the current state of a session
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Paused reports whether entities are frozen in this state
func (s GameState) Paused() bool {
	return s != StatePlaying
}

// CanTransitionTo reports whether s may switch to next.
// Playing ends on a player hit; GameOver restarts into Playing.
func (s GameState) CanTransitionTo(next GameState) bool {
	switch s {
	case StatePlaying:
		return next == StateGameOver
	case StateGameOver:
		return next == StatePlaying
	default:
		return false
	}
}
