package systems

import (
	"log"
	"math"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBossSpawner starts a boss fight each time the player reaches a new
// multiple of cfg.Boss.LevelStep.
func UpdateBossSpawner(ecs *ecs.ECS) {
	state := GetOrCreateBossState(ecs)
	if state.Active {
		return
	}
	if _, ok := tags.Boss.First(ecs.World); ok {
		return
	}

	step := cfg.Boss.LevelStep
	bossLevel := GetOrCreateGame(ecs).PlayerLevel / step * step
	if bossLevel == 0 || bossLevel <= state.LastBossLevel {
		return
	}

	rng := GetOrCreateRNG(ecs)
	t := components.AllBossTypes[rng.Intn(len(components.AllBossTypes))]
	health := BossHealth(t, bossLevel)

	state.LastBossLevel = bossLevel
	state.Active = true
	state.TotalHealth = health
	state.CurrentHealth = health
	state.BossName = t.Name()

	factory.CreateBoss(ecs, t, health)
	log.Printf("Boss spawned: %s with %d HP", t.Name(), health)
}

// BossHealth scales a boss's base health by its tier: x1 at level 10, x2 at
// level 20 and so on.
func BossHealth(t components.BossType, bossLevel int) int {
	mul := float64(bossLevel) / float64(cfg.Boss.LevelStep)
	return int(float64(t.Config().Health) * mul)
}

// UpdateBoss runs the entrance slide, then recomputes the phase, sways the
// boss and fires its volley when the attack timer runs out.
func UpdateBoss(ecs *ecs.ECS) {
	dt := delta(ecs)
	rng := GetOrCreateRNG(ecs)
	state := GetOrCreateBossState(ecs)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		t := components.Transform.Get(e)

		if !boss.Entered {
			y, done := boss.Entrance.Update(float32(dt))
			t.Position.Y = float64(y)
			if done {
				boss.Entered = true
				boss.Entrance = nil
			}
			return
		}

		boss.Phase = boss.CurrentPhase()
		state.CurrentHealth = boss.Health

		boss.MoveTimer += dt
		t.Position.X = math.Sin(boss.MoveTimer*cfg.Boss.SwayRate) * cfg.Boss.SwayAmplitude

		boss.AttackTimer -= dt
		if boss.AttackTimer <= 0 {
			fireBossVolley(ecs, boss, t.Position, rng)
			boss.AttackTimer = boss.Type.Cooldown(boss.Phase)
		}
	})
}

// ClearBosses removes any boss and its bullets and ends the fight.
func ClearBosses(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	components.BossBullet.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		destroy(ecs, e)
	}
	GetOrCreateBossState(ecs).Clear()
}
