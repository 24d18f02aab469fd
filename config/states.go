package config

// GameStateID identifies the session's top-level state.
type GameStateID int

const (
	StateMenu GameStateID = iota
	StatePlaying
	StateUpgrading
	StatePaused
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateUpgrading:
		return "Upgrading"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}
