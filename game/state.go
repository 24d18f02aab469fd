package game

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/geoshooter/config"
)

var ErrInvalidTransition = errors.New("invalid state transition")

// transitions lists the states reachable from each state.
var transitions = map[cfg.GameStateID][]cfg.GameStateID{
	cfg.StateMenu:      {cfg.StatePlaying},
	cfg.StatePlaying:   {cfg.StatePaused, cfg.StateUpgrading, cfg.StateGameOver, cfg.StateMenu},
	cfg.StatePaused:    {cfg.StatePlaying, cfg.StateMenu},
	cfg.StateUpgrading: {cfg.StatePlaying},
	cfg.StateGameOver:  {cfg.StatePlaying, cfg.StateMenu},
}

// CanTransition reports whether to is reachable from from in one step.
func CanTransition(from, to cfg.GameStateID) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to cfg.GameStateID) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}
	return nil
}
