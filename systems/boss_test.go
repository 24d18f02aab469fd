package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossSpawnsAtLevelTen(t *testing.T) {
	e := newTestECS()
	GetOrCreateGame(e).PlayerLevel = 9
	UpdateBossSpawner(e)
	assert.Equal(t, 0, countOf(e, components.Boss))

	GetOrCreateGame(e).PlayerLevel = 10
	UpdateBossSpawner(e)

	entry, ok := tags.Boss.First(e.World)
	require.True(t, ok)
	boss := components.Boss.Get(entry)
	state := GetOrCreateBossState(e)

	assert.True(t, state.Active)
	assert.Equal(t, 10, state.LastBossLevel)
	assert.Equal(t, boss.Type.Config().Health, state.TotalHealth)
	assert.Equal(t, state.TotalHealth, boss.MaxHealth)
	assert.Equal(t, boss.Type.Name(), state.BossName)

	// A second call while the fight is on changes nothing.
	UpdateBossSpawner(e)
	assert.Equal(t, 1, countOf(e, components.Boss))
}

func TestBossRespawnsOnlyAtNextTier(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)
	game.PlayerLevel = 10
	UpdateBossSpawner(e)
	ClearBosses(e)
	require.False(t, GetOrCreateBossState(e).Active)

	game.PlayerLevel = 19
	UpdateBossSpawner(e)
	assert.Equal(t, 0, countOf(e, components.Boss))

	game.PlayerLevel = 20
	UpdateBossSpawner(e)
	entry, ok := tags.Boss.First(e.World)
	require.True(t, ok)
	boss := components.Boss.Get(entry)
	assert.Equal(t, 2*boss.Type.Config().Health, boss.MaxHealth)
	assert.Equal(t, 20, GetOrCreateBossState(e).LastBossLevel)
}

func TestBossHealthScalesByTier(t *testing.T) {
	base := components.BossHexFortress.Config().Health
	assert.Equal(t, base, BossHealth(components.BossHexFortress, 10))
	assert.Equal(t, 3*base, BossHealth(components.BossHexFortress, 30))
}

func TestEveryBossHasAVolley(t *testing.T) {
	rng := testRNG()
	for _, bt := range components.AllBossTypes {
		volley, ok := bossVolleys[bt]
		require.True(t, ok, bt.Key())
		for phase := 1; phase <= 3; phase++ {
			boss := components.BossData{Type: bt, Phase: phase, Health: 100, MaxHealth: 100}
			assert.NotEmpty(t, volley(&boss, rng), "%s phase %d", bt.Key(), phase)
		}
	}
}

func TestRotatingVolleysAdvancePattern(t *testing.T) {
	boss := components.BossData{Type: components.BossHexFortress, Phase: 1}
	for i := 0; i < 12; i++ {
		hexFortressVolley(&boss, nil)
	}
	assert.Equal(t, 0, boss.AttackPattern)

	hexFortressVolley(&boss, nil)
	assert.Equal(t, 1, boss.AttackPattern)
}

func TestBossEntranceThenAttack(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateBoss(e, components.BossDiamondKing, 100)
	boss := components.Boss.Get(entry)

	for i := 0; i < 10000 && !boss.Entered; i++ {
		UpdateBoss(e)
	}
	require.True(t, boss.Entered)
	restY := cfg.Game.Height/2 - cfg.Boss.RestOffset
	assert.InDelta(t, restY, components.Transform.Get(entry).Position.Y, 0.01)
	assert.Equal(t, 0, countOf(e, components.BossBullet), "no attacks during the entrance")

	boss.AttackTimer = 0
	UpdateBoss(e)

	// Phase 1 diamond king fan: 7 bullets.
	assert.Equal(t, 7, countOf(e, components.BossBullet))
	assert.Equal(t, boss.Type.Cooldown(1), boss.AttackTimer)
}

func TestBossPhaseFollowsDamage(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateBoss(e, components.BossCircleGuardian, 100)
	boss := components.Boss.Get(entry)
	boss.Entered = true
	boss.Entrance = nil
	boss.AttackTimer = 100

	damageBoss(e, entry, 50)
	UpdateBoss(e)
	assert.Equal(t, 2, boss.Phase)
	assert.Equal(t, 50, GetOrCreateBossState(e).CurrentHealth)
}

func TestClearBossesRemovesBulletsToo(t *testing.T) {
	e := newTestECS()
	entry := factory.CreateBoss(e, components.BossCrossLaser, 100)
	boss := components.Boss.Get(entry)
	fireBossVolley(e, boss, components.Transform.Get(entry).Position, testRNG())
	require.Equal(t, 12, countOf(e, components.BossBullet))
	GetOrCreateBossState(e).Active = true

	ClearBosses(e)

	assert.Equal(t, 0, countOf(e, components.Boss))
	assert.Equal(t, 0, countOf(e, components.BossBullet))
	assert.False(t, GetOrCreateBossState(e).Active)
}
