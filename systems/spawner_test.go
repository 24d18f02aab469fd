package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestEnemyScalesWithDifficulty(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, components.EnemyDiamond, geometry.Zero, cfg.Difficulty(7), testRNG())

	data := components.Enemy.Get(enemy)
	assert.Equal(t, 6, data.Health)
	assert.Equal(t, 6, data.MaxHealth)
	assert.Equal(t, 280, data.Score)
	assert.GreaterOrEqual(t, data.ShootInterval, cfg.Enemy.MinShootInterval)
	assert.Less(t, data.ShootTimer, data.ShootInterval)
}

func TestSpawnInterval(t *testing.T) {
	assert.InDelta(t, 1.5, SpawnInterval(1, false), 1e-9)
	assert.InDelta(t, 3.0, SpawnInterval(1, true), 1e-9)
	assert.InDelta(t, cfg.Spawn.MinInterval, SpawnInterval(100, false), 1e-9)
}

func TestEliteChance(t *testing.T) {
	assert.Equal(t, 0.0, EliteChance(2))
	assert.InDelta(t, 0.029, EliteChance(3), 1e-9)
	assert.Equal(t, cfg.Spawn.EliteMaxChance, EliteChance(100))
}

func TestNoElitesDuringBossFight(t *testing.T) {
	rng := testRNG()
	seen := map[components.EnemyType]int{}
	for i := 0; i < 1000; i++ {
		seen[PickEnemyType(rng, 50, true)]++
	}
	for typ := range seen {
		assert.Contains(t, []components.EnemyType{components.EnemySmall, components.EnemyDiamond}, typ)
	}
	assert.Greater(t, seen[components.EnemySmall], seen[components.EnemyDiamond])
}

func TestElitesAppearAtHighLevel(t *testing.T) {
	rng := testRNG()
	elites := 0
	for i := 0; i < 5000; i++ {
		if PickEnemyType(rng, 50, false).IsElite() {
			elites++
		}
	}
	assert.Greater(t, elites, 0)
}

func TestSpawnerFiresWhenTimerReachesInterval(t *testing.T) {
	e := newTestECS()
	GetOrCreateSpawnTimer(e).Timer = SpawnInterval(1, false)

	UpdateSpawner(e)
	assert.Equal(t, 1, countOf(e, components.Enemy))
	assert.Equal(t, 0.0, GetOrCreateSpawnTimer(e).Timer)

	UpdateSpawner(e)
	assert.Equal(t, 1, countOf(e, components.Enemy))

	components.Enemy.Each(e.World, func(enemy *donburi.Entry) {
		pos := components.Transform.Get(enemy).Position
		assert.Equal(t, cfg.Game.Height/2+cfg.Enemy.SpawnMargin, pos.Y)
		assert.LessOrEqual(t, pos.X, cfg.Game.Width/2-cfg.Spawn.EdgeInset)
		assert.GreaterOrEqual(t, pos.X, -cfg.Game.Width/2+cfg.Spawn.EdgeInset)
	})
}

func TestExtraSpawnsPickTheirOwnColumns(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Spawn.SecondSpawnChance = 1
	cfg.Spawn.ThirdSpawnChance = 1

	e := newTestECS()
	GetOrCreateGame(e).PlayerLevel = cfg.Spawn.ThirdSpawnLevel
	timer := GetOrCreateSpawnTimer(e)
	timer.Timer = SpawnInterval(cfg.Difficulty(cfg.Spawn.ThirdSpawnLevel), false)

	UpdateSpawner(e)
	assert.Equal(t, 3, countOf(e, components.Enemy))

	columns := map[float64]bool{}
	rows := map[float64]bool{}
	components.Enemy.Each(e.World, func(enemy *donburi.Entry) {
		pos := components.Transform.Get(enemy).Position
		columns[pos.X] = true
		rows[pos.Y] = true
		assert.LessOrEqual(t, pos.X, cfg.Game.Width/2-cfg.Spawn.EdgeInset)
		assert.GreaterOrEqual(t, pos.X, -cfg.Game.Width/2+cfg.Spawn.EdgeInset)
	})
	assert.Len(t, columns, 3)
	assert.Len(t, rows, 3)
}
