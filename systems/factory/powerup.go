package factory

import (
	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerUp drops a pickup at pos. It drifts down with the scroll.
func CreatePowerUp(ecs *ecs.ECS, pos geometry.Vec2, t components.PowerUpType) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(ecs)

	r := cfg.Game.PowerUpRadius
	components.PowerUp.SetValue(p, components.PowerUpData{Type: t})
	components.Transform.SetValue(p, components.TransformData{Position: pos, Z: 4})
	components.Collider.SetValue(p, components.ColliderData{
		Shape: geometry.CircleCollider{Radius: r},
		Layer: collision.LayerPowerUp,
		Mask:  collision.AllMask(),
	})

	var inner geometry.Shape
	switch t {
	case components.PowerUpShield:
		inner = geometry.Arc{Radius: r * 0.6, StartAngle: 0, EndAngle: 3.14, Color: geometry.ColorPowerUp, StrokeWidth: 2}
	case components.PowerUpExtraLife:
		inner = geometry.Polygon{Vertices: geometry.RegularPolygon(3, r*0.6), Color: geometry.ColorPowerUp, Fill: true}
	case components.PowerUpWeaponUpgrade:
		inner = geometry.Polygon{Vertices: geometry.RegularPolygon(4, r*0.6), Color: geometry.ColorPowerUp, Fill: true}
	default:
		inner = geometry.Circle{Radius: r * 0.4, Color: geometry.ColorPowerUp, Fill: true}
	}
	components.Visual.SetValue(p, components.VisualData{
		Blueprint: geometry.Blueprint{
			Name: "powerup",
			Shapes: []geometry.Shape{
				geometry.Circle{Radius: r, Color: geometry.ColorPowerUp, StrokeWidth: 2},
				inner,
			},
			Collision: geometry.CircleCollider{Radius: r},
		},
	})
	return p
}
