package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestPlayerSpeedFollowsStickTilt(t *testing.T) {
	tests := []struct {
		name string
		move geometry.Vec2
		want float64
	}{
		{"half tilt", geometry.V(0.5, 0), 0.5},
		{"full tilt", geometry.V(1, 0), 1},
		{"diagonal is capped", geometry.V(1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			ship := factory.CreatePlayer(e)
			start := components.Transform.Get(ship).Position
			GetOrCreateInput(e).Move = tt.move

			UpdatePlayer(e)

			moved := components.Transform.Get(ship).Position.Sub(start).Len()
			speed := components.Player.Get(ship).Speed
			assert.InDelta(t, tt.want*speed*delta(e), moved, 1e-9)
		})
	}
}

func TestPlayerStaysInsideArena(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	GetOrCreateInput(e).Move = geometry.V(-1, 0)

	for i := 0; i < 600; i++ {
		UpdatePlayer(e)
	}

	want := -(cfg.Game.Width/2 - cfg.Player.EdgeMargin)
	assert.Equal(t, want, components.Transform.Get(ship).Position.X)
}
