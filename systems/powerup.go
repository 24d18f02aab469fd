package systems

import (
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps lets pickups drift down with the scroll until they fall
// out of the arena.
func UpdatePowerUps(ecs *ecs.ECS) {
	dt := delta(ecs)
	var toRemove []*donburi.Entry

	components.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(geometry.V(0, -cfg.Game.ScrollSpeed*dt))
		if t.Position.Y < -cfg.Game.Height/2-cfg.Weapon.OffscreenMargin {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}
