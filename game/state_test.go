package game

import (
	"testing"

	cfg "github.com/automoto/geoshooter/config"
	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from, to cfg.GameStateID
		ok       bool
	}{
		{cfg.StateMenu, cfg.StatePlaying, true},
		{cfg.StateMenu, cfg.StatePaused, false},
		{cfg.StateMenu, cfg.StateGameOver, false},
		{cfg.StatePlaying, cfg.StatePaused, true},
		{cfg.StatePlaying, cfg.StateUpgrading, true},
		{cfg.StatePlaying, cfg.StateGameOver, true},
		{cfg.StatePaused, cfg.StatePlaying, true},
		{cfg.StatePaused, cfg.StateUpgrading, false},
		{cfg.StateUpgrading, cfg.StatePlaying, true},
		{cfg.StateUpgrading, cfg.StatePaused, false},
		{cfg.StateUpgrading, cfg.StateMenu, false},
		{cfg.StateGameOver, cfg.StatePlaying, true},
		{cfg.StateGameOver, cfg.StateMenu, true},
		{cfg.StateGameOver, cfg.StatePaused, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to))
			err := checkTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
