package systems

import (
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var collidables = donburi.NewQuery(filter.Contains(components.Collider, components.Transform))

// UpdateCollisions snapshots every collidable entity and publishes this
// tick's overlapping pairs. It must run after all movement systems.
func UpdateCollisions(ecs *ecs.ECS) {
	events := GetOrCreateCollisionEvents(ecs)
	events.Queue.Swap()

	var bodies []collision.Body
	collidables.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		bodies = append(bodies, collision.Body{
			Entity:   e.Entity(),
			Position: components.Transform.Get(e).Position,
			Shape:    c.Shape,
			Layer:    c.Layer,
			Mask:     c.Mask,
		})
	})

	events.Queue.SetBuffer(collision.Detect(bodies, events.Queue.Buffer()))
}

// collisionEvents returns the events published this tick.
func collisionEvents(ecs *ecs.ECS) []collision.Event {
	return GetOrCreateCollisionEvents(ecs).Queue.Current()
}
