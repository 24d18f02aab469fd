package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestHUDSnapshotDuringBossFight(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	components.WeaponInventory.Get(ship).AddOrUpgrade(components.WeaponShotgun)
	game := GetOrCreateGame(e)
	game.Score = 1234
	game.Coins = 7

	state := GetOrCreateBossState(e)
	state.Active = true
	state.BossName = "Hex Fortress"
	state.TotalHealth = 1000
	state.CurrentHealth = 255

	s := HUDSnapshot(e)
	assert.Equal(t, 1234, s.Score)
	assert.Equal(t, 7, s.Coins)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 5, s.MaxLives)
	assert.Equal(t, "SLv1", s.Weapons)
	assert.True(t, s.BossActive)
	assert.Equal(t, "Hex Fortress", s.BossName)
	assert.Equal(t, "255/1000 (25.5%)", s.BossHealth)
	assert.InDelta(t, 0.255, s.BossRatio, 1e-9)
}

func TestHUDSnapshotClampsNegativeBossHealth(t *testing.T) {
	e := newTestECS()
	state := GetOrCreateBossState(e)
	state.Active = true
	state.TotalHealth = 400
	state.CurrentHealth = -12

	assert.Equal(t, "0/400 (0.0%)", HUDSnapshot(e).BossHealth)
}

func TestHUDSnapshotWithoutBoss(t *testing.T) {
	e := newTestECS()
	s := HUDSnapshot(e)
	assert.False(t, s.BossActive)
	assert.Empty(t, s.BossHealth)
	assert.Empty(t, s.Weapons)
}
