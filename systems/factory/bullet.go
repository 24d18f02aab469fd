package factory

import (
	"image/color"

	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns one default-gun shot flying straight up.
func CreatePlayerBullet(ecs *ecs.ECS, pos geometry.Vec2) *donburi.Entry {
	b := archetypes.PlayerBullet.Spawn(ecs)

	components.Bullet.SetValue(b, components.BulletData{
		Velocity:       geometry.V(0, cfg.Game.BulletSpeed),
		Damage:         cfg.Player.BulletDamage,
		IsPlayerBullet: true,
	})
	components.Transform.SetValue(b, components.TransformData{Position: pos, Z: 8})
	components.Collider.SetValue(b, components.ColliderData{
		Shape: geometry.CircleCollider{Radius: cfg.Player.BulletRadius},
		Layer: collision.LayerPlayerBullet,
		Mask:  collision.PlayerBulletMask(),
	})
	components.Visual.SetValue(b, components.VisualData{
		Blueprint: dotBlueprint("default_bullet", cfg.Player.BulletRadius, geometry.ColorPlayerShot),
	})
	return b
}

// CreateEnemyBullet spawns a regular enemy shot. Style is cosmetic.
func CreateEnemyBullet(ecs *ecs.ECS, pos, velocity geometry.Vec2, style components.BulletStyle) *donburi.Entry {
	b := archetypes.EnemyBullet.Spawn(ecs)

	r := cfg.Enemy.BulletRadius
	components.Bullet.SetValue(b, components.BulletData{
		Velocity: velocity,
		Damage:   1,
		Style:    style,
	})
	components.Transform.SetValue(b, components.TransformData{Position: pos, Z: 7})
	components.Collider.SetValue(b, components.ColliderData{
		Shape: geometry.CircleCollider{Radius: r},
		Layer: collision.LayerEnemyBullet,
		Mask:  collision.EnemyBulletMask(),
	})
	components.Visual.SetValue(b, components.VisualData{
		Blueprint: enemyBulletBlueprint(style, r),
		Rotation:  velocity.Angle(),
	})
	return b
}

func enemyBulletBlueprint(style components.BulletStyle, r float64) geometry.Blueprint {
	switch style {
	case components.StyleNeedle:
		return geometry.Blueprint{
			Name: "enemy_bullet_needle",
			Shapes: []geometry.Shape{
				geometry.Line{
					From:        geometry.V(-r*1.6, 0),
					To:          geometry.V(r*1.6, 0),
					Color:       geometry.ColorEnemyShot,
					StrokeWidth: 2,
				},
			},
			Collision: geometry.CircleCollider{Radius: r},
		}
	case components.StyleRing:
		return geometry.Blueprint{
			Name: "enemy_bullet_ring",
			Shapes: []geometry.Shape{
				geometry.Circle{Radius: r, Color: geometry.ColorEnemyShot, StrokeWidth: 2},
			},
			Collision: geometry.CircleCollider{Radius: r},
		}
	default:
		return geometry.Blueprint{
			Name: "enemy_bullet",
			Shapes: []geometry.Shape{
				geometry.Polygon{
					Vertices: geometry.RegularPolygon(4, r),
					Color:    geometry.ColorEnemyShot,
					Fill:     true,
				},
			},
			Collision: geometry.CircleCollider{Radius: r},
		}
	}
}

// CreateBossBullet spawns a boss shot. Boss bullets expire after
// cfg.Boss.BulletLifetime even while on screen.
func CreateBossBullet(ecs *ecs.ECS, pos, velocity geometry.Vec2, damage int) *donburi.Entry {
	b := archetypes.BossBullet.Spawn(ecs)

	r := cfg.Boss.BulletRadius
	components.BossBullet.SetValue(b, components.BossBulletData{
		Velocity: velocity,
		Damage:   damage,
		Lifetime: cfg.Boss.BulletLifetime,
	})
	components.Transform.SetValue(b, components.TransformData{Position: pos, Z: 7})
	components.Collider.SetValue(b, components.ColliderData{
		Shape: geometry.CircleCollider{Radius: r},
		Layer: collision.LayerEnemyBullet,
		Mask:  collision.EnemyBulletMask(),
	})
	components.Visual.SetValue(b, components.VisualData{
		Blueprint: dotBlueprint("boss_bullet", r, geometry.ColorBossShot),
	})
	return b
}

func dotBlueprint(name string, r float64, c color.RGBA) geometry.Blueprint {
	return geometry.Blueprint{
		Name:      name,
		Shapes:    []geometry.Shape{geometry.Circle{Radius: r, Color: c, Fill: true}},
		Collision: geometry.CircleCollider{Radius: r},
	}
}
