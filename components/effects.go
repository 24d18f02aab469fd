package components

import (
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

// ParticleData is a cosmetic fragment. It never collides.
type ParticleData struct {
	Velocity geometry.Vec2
	Lifetime float64
}

var Particle = donburi.NewComponentType[ParticleData]()
