package systems

import (
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyCombat resolves player shots hitting regular enemies.
func UpdateEnemyCombat(ecs *ecs.ECS) {
	for _, ev := range collisionEvents(ecs) {
		self, other, otherLayer, ok := ev.Other(collision.LayerEnemy)
		if !ok || otherLayer != collision.LayerPlayerBullet {
			continue
		}
		enemy, ok := entryOf(ecs, self)
		if !ok || !enemy.HasComponent(components.Enemy) {
			continue
		}
		shot, ok := entryOf(ecs, other)
		if !ok {
			continue
		}

		enemyPos := components.Transform.Get(enemy).Position
		shotPos := components.Transform.Get(shot).Position

		switch {
		case shot.HasComponent(components.Bullet):
			damage := components.Bullet.Get(shot).Damage
			destroy(ecs, shot)
			factory.CreateHitSparks(ecs, shotPos, GetOrCreateRNG(ecs))
			damageEnemy(ecs, enemy, damage)

		case shot.HasComponent(components.WeaponBullet):
			if shot.HasComponent(components.HitList) && !components.HitList.Get(shot).Record(self) {
				continue
			}
			if shot.HasComponent(components.Rocket) {
				explodeRocket(ecs, shot)
				continue
			}
			wb := components.WeaponBullet.Get(shot)
			factory.CreateHitSparks(ecs, sparkPosition(wb.Type, enemyPos, shotPos), GetOrCreateRNG(ecs))
			damageEnemy(ecs, enemy, wb.Damage)
			consumeHit(ecs, shot)
		}
	}
}

// sparkPosition places hit sparks on the enemy for wide weapons and on the
// projectile otherwise.
func sparkPosition(t components.WeaponType, enemyPos, shotPos geometry.Vec2) geometry.Vec2 {
	if t == components.WeaponLaser || t == components.WeaponBeam {
		return enemyPos
	}
	return shotPos
}
