package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateStageClear // every enemy is down, the wipe to the next level is running
	StateGameOver   // all lives spent, the level is about to restart from level 0
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStageClear:
		return "StageClear"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the encounter advances in this state.
// Only a pause freezes the simulation; clear and game over keep ticking
// so their countdowns can run.
func (s GameState) Simulating() bool {
	return s != StatePaused
}
