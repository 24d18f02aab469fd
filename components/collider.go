package components

import (
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

// ColliderData makes an entity part of the collision scan.
type ColliderData struct {
	Shape geometry.CollisionShape
	Layer collision.Layer
	Mask  collision.Mask
}

var Collider = donburi.NewComponentType[ColliderData]()

// CollisionEventsData is the singleton mailbox between the detector and the
// combat handlers.
type CollisionEventsData struct {
	Queue collision.Queue
}

var CollisionEvents = donburi.NewComponentType[CollisionEventsData]()
