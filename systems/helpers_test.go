package systems

import (
	"math/rand"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestECS returns an empty world with a seeded RNG and a fresh run.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	SeedRNG(e, testRNG())
	GetOrCreateGame(e).StartRun(3, 5, 0, 4)
	return e
}

// spawnEnemy places a diamond at pos with the given health.
func spawnEnemy(e *ecs.ECS, pos geometry.Vec2, health int) *donburi.Entry {
	enemy := factory.CreateEnemy(e, components.EnemyDiamond, pos, 1, testRNG())
	components.Enemy.Get(enemy).Health = health
	return enemy
}

func countOf(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// resolveCollisions runs detection and every combat handler once.
func resolveCollisions(e *ecs.ECS) {
	UpdateCollisions(e)
	UpdateEnemyCombat(e)
	UpdateBossCombat(e)
	UpdatePlayerCombat(e)
	UpdateAuraCombat(e)
}
