package components

import (
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

// BulletStyle only changes how an enemy bullet looks.
type BulletStyle int

const (
	StyleShard BulletStyle = iota
	StyleNeedle
	StyleRing
)

// BulletData is a plain straight-flying shot: the player's default gun or a
// regular enemy's fire. It always dies on its first hit.
type BulletData struct {
	Velocity       geometry.Vec2
	Damage         int
	IsPlayerBullet bool
	Style          BulletStyle
}

var Bullet = donburi.NewComponentType[BulletData]()
