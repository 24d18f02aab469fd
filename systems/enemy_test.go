package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/stretchr/testify/assert"
)

func TestEnemiesDriftWithWorldScroll(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.Zero, 5)
	components.Enemy.Get(enemy).ShootTimer = 100
	components.Movement.SetValue(enemy, components.MovementData{Kind: components.MoveStraight, Speed: 150})

	steps := cfg.Game.TickRate
	for i := 0; i < steps; i++ {
		UpdateEnemies(e)
	}

	want := -(150 + cfg.Game.ScrollSpeed) * float64(steps) * delta(e)
	assert.InDelta(t, want, components.Transform.Get(enemy).Position.Y, 1e-6)
	assert.Equal(t, 0.0, components.Transform.Get(enemy).Position.X)
}

func TestSineEnemyStillDescends(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.Zero, 5)
	components.Enemy.Get(enemy).ShootTimer = 100
	components.Movement.SetValue(enemy, components.MovementData{
		Kind:      components.MoveSine,
		Amplitude: 100,
		Frequency: 2,
	})

	UpdateEnemies(e)

	assert.InDelta(t, -cfg.Game.ScrollSpeed*delta(e), components.Transform.Get(enemy).Position.Y, 1e-9)
	assert.NotZero(t, components.Transform.Get(enemy).Position.X)
}
