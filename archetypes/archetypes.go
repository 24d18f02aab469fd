package archetypes

import (
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Collider,
		components.Visual,
		components.WeaponInventory,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Movement,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	PlayerBullet = newArchetype(
		tags.PlayerShot,
		components.Bullet,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	EnemyBullet = newArchetype(
		tags.EnemyShot,
		components.Bullet,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	BossBullet = newArchetype(
		tags.EnemyShot,
		components.BossBullet,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	WeaponBullet = newArchetype(
		tags.PlayerShot,
		components.WeaponBullet,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	LightningCast = newArchetype(
		components.LightningCast,
		components.Transform,
	)
	LightningChain = newArchetype(
		tags.Effect,
		components.LightningChain,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Transform,
		components.Collider,
		components.Visual,
	)
	Particle = newArchetype(
		tags.Effect,
		components.Particle,
		components.Transform,
		components.Visual,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
