package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner is the spawn director. It paces enemy waves by player level
// and throttles them while a boss is up.
func UpdateSpawner(ecs *ecs.ECS) {
	timer := GetOrCreateSpawnTimer(ecs)
	level := GetOrCreateGame(ecs).PlayerLevel
	bossActive := GetOrCreateBossState(ecs).Active
	rng := GetOrCreateRNG(ecs)

	timer.Difficulty = cfg.Difficulty(level)
	timer.Interval = SpawnInterval(timer.Difficulty, bossActive)

	timer.Timer += delta(ecs)
	if timer.Timer < timer.Interval {
		return
	}
	timer.Timer = 0

	y := cfg.Game.Height/2 + cfg.Enemy.SpawnMargin
	factory.CreateEnemy(ecs, PickEnemyType(rng, level, bossActive), geometry.V(spawnX(rng), y), timer.Difficulty, rng)

	if bossActive {
		return
	}
	// Each extra spawn gets its own column.
	if level >= cfg.Spawn.SecondSpawnLevel && rng.Float64() < cfg.Spawn.SecondSpawnChance {
		pos := geometry.V(spawnX(rng), y+cfg.Spawn.SecondSpawnOffset)
		factory.CreateEnemy(ecs, components.EnemyDiamond, pos, timer.Difficulty, rng)
	}
	if level >= cfg.Spawn.ThirdSpawnLevel && rng.Float64() < cfg.Spawn.ThirdSpawnChance {
		pos := geometry.V(spawnX(rng), y+cfg.Spawn.ThirdSpawnOffset)
		factory.CreateEnemy(ecs, components.EnemySmall, pos, timer.Difficulty, rng)
	}
}

// spawnX draws a column uniformly between the edge insets.
func spawnX(rng *rand.Rand) float64 {
	return -cfg.Game.Width/2 + cfg.Spawn.EdgeInset + rng.Float64()*(cfg.Game.Width-2*cfg.Spawn.EdgeInset)
}

// SpawnInterval is the base interval shortened by difficulty, floored, and
// doubled during a boss fight.
func SpawnInterval(difficulty float64, bossActive bool) float64 {
	interval := math.Max(cfg.Game.EnemySpawnInterval/difficulty, cfg.Spawn.MinInterval)
	if bossActive {
		interval *= cfg.Spawn.BossIntervalFactor
	}
	return interval
}

// EliteChance is the per-spawn elite probability at level, zero below the
// elite floor.
func EliteChance(level int) float64 {
	if level < cfg.Spawn.EliteMinLevel {
		return 0
	}
	return math.Min(cfg.Spawn.EliteBaseChance+float64(level)*cfg.Spawn.EliteLevelStep, cfg.Spawn.EliteMaxChance)
}

// PickEnemyType draws the next enemy type. Elites never spawn during a boss
// fight.
func PickEnemyType(rng *rand.Rand, level int, bossActive bool) components.EnemyType {
	if bossActive {
		if rng.Float64() < cfg.Spawn.BossSmallChance {
			return components.EnemySmall
		}
		return components.EnemyDiamond
	}

	if chance := EliteChance(level); chance > 0 && rng.Float64() < chance {
		return components.EliteTypes[rng.Intn(len(components.EliteTypes))]
	}

	hex := math.Min(cfg.Spawn.HexBaseChance+float64(level)*cfg.Spawn.HexLevelStep, cfg.Spawn.HexMaxChance)
	small := cfg.Spawn.SmallChance
	r := rng.Float64()
	switch {
	case r < 1-hex-small:
		return components.EnemyDiamond
	case rng.Float64() < hex/(hex+small):
		return components.EnemyHexagon
	default:
		return components.EnemySmall
	}
}
