package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGame returns the singleton GameData, creating it if needed.
func GetOrCreateGame(e *ecs.ECS) *components.GameData {
	if _, ok := components.Game.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Game))
		components.Game.SetValue(ent, components.GameData{PlayerLevel: 1})
	}

	ent, _ := components.Game.First(e.World)
	return components.Game.Get(ent)
}

// GetOrCreateBossState returns the singleton BossState, creating it if needed.
func GetOrCreateBossState(e *ecs.ECS) *components.BossStateData {
	if _, ok := components.BossState.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.BossState))
	}

	ent, _ := components.BossState.First(e.World)
	return components.BossState.Get(ent)
}

// GetOrCreateClock returns the singleton frame clock. A fresh clock steps at
// the configured tick rate.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{Delta: cfg.Delta()})
	}

	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// GetOrCreateRNG returns the singleton random source. Without SeedRNG it is
// seeded from the wall clock.
func GetOrCreateRNG(e *ecs.ECS) *rand.Rand {
	if _, ok := components.RNG.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.RNG))
		components.RNG.SetValue(ent, components.RNGData{
			Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}

	ent, _ := components.RNG.First(e.World)
	return components.RNG.Get(ent).Rand
}

// SeedRNG replaces the random source so a run can be replayed.
func SeedRNG(e *ecs.ECS, r *rand.Rand) {
	GetOrCreateRNG(e)
	ent, _ := components.RNG.First(e.World)
	components.RNG.Get(ent).Rand = r
}

// GetOrCreateSpawnTimer returns the spawn director's state.
func GetOrCreateSpawnTimer(e *ecs.ECS) *components.SpawnTimerData {
	if _, ok := components.SpawnTimer.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SpawnTimer))
		components.SpawnTimer.SetValue(ent, components.SpawnTimerData{
			Interval:   cfg.Game.EnemySpawnInterval,
			Difficulty: 1,
		})
	}

	ent, _ := components.SpawnTimer.First(e.World)
	return components.SpawnTimer.Get(ent)
}

// GetOrCreateCollisionEvents returns the collision mailbox.
func GetOrCreateCollisionEvents(e *ecs.ECS) *components.CollisionEventsData {
	if _, ok := components.CollisionEvents.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.CollisionEvents))
	}

	ent, _ := components.CollisionEvents.First(e.World)
	return components.CollisionEvents.Get(ent)
}

// GetOrCreateInput returns the control state the host writes each frame.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Input))
	}

	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}

func delta(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).Delta
}

// entryOf resolves a handle, reporting false for stale or removed entities.
func entryOf(e *ecs.ECS, ent donburi.Entity) (*donburi.Entry, bool) {
	if !e.World.Valid(ent) {
		return nil, false
	}
	return e.World.Entry(ent), true
}

func destroy(e *ecs.ECS, entry *donburi.Entry) {
	if entry != nil && entry.Valid() {
		e.World.Remove(entry.Entity())
	}
}
