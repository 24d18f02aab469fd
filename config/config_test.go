package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpForLevel(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, 1300, Progression.ExpForLevel(1))
	assert.Equal(t, 10400, Progression.ExpForLevel(4))
	assert.Equal(t, 3676, Progression.ExpForLevel(2))
}

func TestDifficulty(t *testing.T) {
	t.Cleanup(Reset)

	assert.InDelta(t, 1.0, Difficulty(1), 1e-9)
	assert.InDelta(t, 2.8, Difficulty(7), 1e-9)
}

func TestCooldownTier(t *testing.T) {
	tier := Boss.Cooldowns["pressure"]
	assert.Equal(t, 1.4, tier.For(1))
	assert.Equal(t, 1.05, tier.For(2))
	assert.Equal(t, 0.8, tier.For(3))
}

func TestApplyBalanceOverridesOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyBalance([]byte(`
game:
  bulletSpeed: 640
enemies:
  diamond:
    health: 3
bossCooldowns:
  default:
    phase1: 2.0
    phase2: 1.5
    phase3: 1.1
spawn:
  minInterval: 0.25
`))
	require.NoError(t, err)

	assert.Equal(t, 640.0, Game.BulletSpeed)
	assert.Equal(t, 300.0, Game.PlayerSpeed)
	assert.Equal(t, 3, Enemy.Types["diamond"].Health)
	assert.Equal(t, 100, Enemy.Types["diamond"].Score)
	assert.Equal(t, 2.0, Boss.Cooldowns["default"].Phase1)
	assert.Equal(t, 0.25, Spawn.MinInterval)
}

func TestApplyBalanceRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyBalance([]byte("enemies:\n  dimond:\n    health: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimond")
}

func TestApplyBalanceRejectionChangesNothing(t *testing.T) {
	t.Cleanup(Reset)

	err := ApplyBalance([]byte(`
game:
  bulletSpeed: 640
enemies:
  diamond:
    health: 9
  hexagon:
    health: 9
  small:
    health: 9
  dimond:
    health: 3
spawn:
  minInterval: 0.25
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimond")

	assert.Equal(t, 500.0, Game.BulletSpeed)
	assert.Equal(t, 2, Enemy.Types["diamond"].Health)
	assert.Equal(t, 5, Enemy.Types["hexagon"].Health)
	assert.Equal(t, 1, Enemy.Types["small"].Health)
	assert.Equal(t, 0.3, Spawn.MinInterval)
}

func TestLoadBalanceMissingFile(t *testing.T) {
	err := LoadBalance("does-not-exist.yaml")
	require.Error(t, err)
}
