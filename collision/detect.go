package collision

import (
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

// Body is one collidable entity in a frame snapshot.
type Body struct {
	Entity   donburi.Entity
	Position geometry.Vec2
	Shape    geometry.CollisionShape
	Layer    Layer
	Mask     Mask
}

// Event reports an overlapping pair. A is always the body that came first in
// the snapshot.
type Event struct {
	EntityA donburi.Entity
	EntityB donburi.Entity
	LayerA  Layer
	LayerB  Layer
}

// Other returns the entity and layer opposite to the side on layer l, and
// whether either side is on l. When both sides share l, A is treated as self.
func (e Event) Other(l Layer) (self, other donburi.Entity, otherLayer Layer, ok bool) {
	switch {
	case e.LayerA == l:
		return e.EntityA, e.EntityB, e.LayerB, true
	case e.LayerB == l:
		return e.EntityB, e.EntityA, e.LayerA, true
	}
	return 0, 0, 0, false
}

// Detect appends an event for every pair i<j whose shapes overlap and where
// at least one side's mask accepts the other's layer.
func Detect(bodies []Body, out []Event) []Event {
	for i := 0; i < len(bodies); i++ {
		a := &bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := &bodies[j]
			if !a.Mask.Allows(b.Layer) && !b.Mask.Allows(a.Layer) {
				continue
			}
			if !geometry.Overlaps(a.Position, a.Shape, b.Position, b.Shape) {
				continue
			}
			out = append(out, Event{
				EntityA: a.Entity,
				EntityB: b.Entity,
				LayerA:  a.Layer,
				LayerB:  b.Layer,
			})
		}
	}
	return out
}
