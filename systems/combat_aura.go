package systems

import (
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAuraCombat lets aura orbs swallow enemy and boss bullets.
func UpdateAuraCombat(ecs *ecs.ECS) {
	for _, ev := range collisionEvents(ecs) {
		self, other, otherLayer, ok := ev.Other(collision.LayerEnemyBullet)
		if !ok || otherLayer != collision.LayerPlayerBullet {
			continue
		}
		orb, ok := entryOf(ecs, other)
		if !ok || !orb.HasComponent(components.AuraOrb) {
			continue
		}
		if shot, ok := entryOf(ecs, self); ok {
			destroy(ecs, shot)
		}
	}
}
