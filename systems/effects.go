package systems

import (
	"github.com/automoto/geoshooter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects moves particles and retires expired particles and lightning
// chains.
func UpdateEffects(ecs *ecs.ECS) {
	dt := delta(ecs)
	var toRemove []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			toRemove = append(toRemove, e)
			return
		}
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(p.Velocity.Scale(dt))
	})

	components.LightningChain.Each(ecs.World, func(e *donburi.Entry) {
		c := components.LightningChain.Get(e)
		c.Remaining -= dt
		if c.Remaining <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}
