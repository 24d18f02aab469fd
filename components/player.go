package components

import (
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed           float64
	Invincible      bool
	InvincibleTimer float64
	ShootTimer      float64 // default gun
	ShootCooldown   float64
}

var Player = donburi.NewComponentType[PlayerData]()

// InputData is the per-tick control state written by the host.
type InputData struct {
	Move geometry.Vec2 // each axis in [-1, 1]
	Fire bool
}

var Input = donburi.NewComponentType[InputData]()
