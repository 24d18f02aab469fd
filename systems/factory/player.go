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

// CreatePlayer spawns the ship at its start position with an empty
// inventory and the default gun.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Speed:         cfg.Game.PlayerSpeed,
		ShootCooldown: cfg.Game.ShootCooldown,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: geometry.V(0, -cfg.Game.Height*cfg.Player.SpawnYFactor),
		Z:        10,
	})
	components.Collider.SetValue(player, components.ColliderData{
		Shape: geometry.CircleCollider{Radius: cfg.Player.Radius},
		Layer: collision.LayerPlayer,
		Mask:  collision.PlayerMask(),
	})
	components.Visual.SetValue(player, components.VisualData{
		Blueprint: playerBlueprint(),
	})
	components.WeaponInventory.SetValue(player, components.NewWeaponInventory())

	return player
}

func playerBlueprint() geometry.Blueprint {
	r := cfg.Player.Radius
	return geometry.Blueprint{
		Name: "player",
		Shapes: []geometry.Shape{
			geometry.Polygon{
				Vertices: []geometry.Vec2{
					{X: 0, Y: r * 1.2},
					{X: -r, Y: -r * 0.8},
					{X: 0, Y: -r * 0.4},
					{X: r, Y: -r * 0.8},
				},
				Color:       geometry.ColorPlayer,
				StrokeWidth: 2,
			},
		},
		Collision: geometry.CircleCollider{Radius: r},
	}
}
