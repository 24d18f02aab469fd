package systems

import (
	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLightning resolves pending casts. Each cast walks greedily to the
// nearest unhit enemy or boss within range, damaging every hop.
func UpdateLightning(ecs *ecs.ECS) {
	var casts []*donburi.Entry
	components.LightningCast.Each(ecs.World, func(e *donburi.Entry) {
		casts = append(casts, e)
	})

	for _, cast := range casts {
		c := *components.LightningCast.Get(cast)
		origin := components.Transform.Get(cast).Position
		destroy(ecs, cast)

		points := chainLightning(ecs, origin, c)
		if len(points) > 1 {
			factory.CreateLightningChain(ecs, points)
		}
	}
}

// chainLightning returns the chain path starting at origin.
func chainLightning(ecs *ecs.ECS, origin geometry.Vec2, c components.LightningCastData) []geometry.Vec2 {
	points := []geometry.Vec2{origin}
	hit := map[donburi.Entity]bool{}
	current := origin
	r2 := c.Range * c.Range

	for jumps := c.Jumps; jumps > 0; jumps-- {
		var next *donburi.Entry
		bestDist := r2
		consider := func(e *donburi.Entry) {
			if hit[e.Entity()] {
				return
			}
			d := components.Transform.Get(e).Position.DistSq(current)
			if d < bestDist || (next == nil && d <= r2) {
				next, bestDist = e, d
			}
		}
		// Bosses are scanned first so they win exact ties.
		tags.Boss.Each(ecs.World, consider)
		tags.Enemy.Each(ecs.World, consider)
		if next == nil {
			break
		}

		hit[next.Entity()] = true
		current = components.Transform.Get(next).Position
		points = append(points, current)
		damageTarget(ecs, next, c.Damage)
	}
	return points
}
