package systems

import (
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBossCombat resolves player shots hitting a boss. Rockets burst on
// the hull and hit the boss alone.
func UpdateBossCombat(ecs *ecs.ECS) {
	for _, ev := range collisionEvents(ecs) {
		self, other, otherLayer, ok := ev.Other(collision.LayerEnemy)
		if !ok || otherLayer != collision.LayerPlayerBullet {
			continue
		}
		boss, ok := entryOf(ecs, self)
		if !ok || !boss.HasComponent(components.Boss) {
			continue
		}
		shot, ok := entryOf(ecs, other)
		if !ok {
			continue
		}

		var damage int
		switch {
		case shot.HasComponent(components.Bullet):
			damage = components.Bullet.Get(shot).Damage
			destroy(ecs, shot)

		case shot.HasComponent(components.WeaponBullet):
			if shot.HasComponent(components.HitList) && !components.HitList.Get(shot).Record(self) {
				continue
			}
			damage = components.WeaponBullet.Get(shot).Damage
			if shot.HasComponent(components.Rocket) {
				r := components.Rocket.Get(shot)
				pos := components.Transform.Get(shot).Position
				factory.CreateRocketShards(ecs, pos, factory.ShardCount(r.ExplosionRadius), r.Speed, GetOrCreateRNG(ecs))
				destroy(ecs, shot)
			} else {
				consumeHit(ecs, shot)
			}

		default:
			continue
		}

		damageBoss(ecs, boss, damage)
	}
}
