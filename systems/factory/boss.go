package factory

import (
	"image/color"

	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns a boss above the arena. It slides down to its resting
// height before it may attack.
func CreateBoss(ecs *ecs.ECS, t components.BossType, health int) *donburi.Entry {
	base := t.Config()
	startY := cfg.Game.Height/2 + cfg.Boss.SpawnOffset
	restY := cfg.Game.Height/2 - cfg.Boss.RestOffset
	duration := (startY - restY) / cfg.Boss.EntranceSpeed

	boss := archetypes.Boss.Spawn(ecs)
	components.Boss.SetValue(boss, components.BossData{
		Type:        t,
		Health:      health,
		MaxHealth:   health,
		Phase:       1,
		AttackTimer: cfg.Boss.FirstAttack,
		Score:       base.Score,
		Entrance:    gween.New(float32(startY), float32(restY), float32(duration), ease.Linear),
	})
	components.Transform.SetValue(boss, components.TransformData{
		Position: geometry.V(0, startY),
		Z:        6,
	})

	bp := bossBlueprint(t, base.Radius)
	components.Collider.SetValue(boss, components.ColliderData{
		Shape: bp.Collision,
		Layer: collision.LayerEnemy,
		Mask:  collision.EnemyMask(),
	})
	components.Visual.SetValue(boss, components.VisualData{Blueprint: bp})

	return boss
}

func bossBlueprint(t components.BossType, r float64) geometry.Blueprint {
	c := geometry.ColorBoss
	// The hull is drawn larger than the hitbox.
	size := r / 0.8

	var shapes []geometry.Shape
	switch t {
	case components.BossDiamondKing:
		shapes = nested(geometry.RegularPolygon(4, size), geometry.RegularPolygon(4, size*0.5), c)
	case components.BossHexFortress:
		shapes = nested(geometry.RegularPolygon(6, size), geometry.RegularPolygon(6, size*0.6), c)
	case components.BossTriangleFighter:
		shapes = nested(geometry.RegularPolygon(3, size), geometry.RegularPolygon(3, size*0.45), c)
	case components.BossStarMothership:
		shapes = nested(star(5, size, size*0.45), geometry.RegularPolygon(5, size*0.3), c)
	case components.BossCircleGuardian:
		shapes = []geometry.Shape{
			geometry.Circle{Radius: size, Color: c, StrokeWidth: 3},
			geometry.Circle{Radius: size * 0.6, Color: c, StrokeWidth: 2},
			geometry.Circle{Radius: size * 0.25, Color: c, Fill: true},
		}
	case components.BossCrossLaser:
		w := size * 0.35
		shapes = []geometry.Shape{
			geometry.Polygon{Vertices: geometry.RectVertices(size*2, w), Color: c, Fill: true},
			geometry.Polygon{Vertices: geometry.RectVertices(w, size*2), Color: c, Fill: true},
		}
	case components.BossSpiralShooter:
		shapes = []geometry.Shape{
			geometry.Arc{Radius: size, StartAngle: 0, EndAngle: 3.9, Color: c, StrokeWidth: 4},
			geometry.Arc{Radius: size * 0.65, StartAngle: 2, EndAngle: 5.9, Color: c, StrokeWidth: 3},
			geometry.Circle{Radius: size * 0.25, Color: c, Fill: true},
		}
	case components.BossSplitCore:
		shapes = nested(geometry.RegularPolygon(8, size), geometry.RegularPolygon(4, size*0.5), c)
	case components.BossTrackerPrime:
		shapes = nested(geometry.RegularPolygon(5, size), geometry.RegularPolygon(3, size*0.5), c)
	default:
		shapes = []geometry.Shape{
			geometry.Circle{Radius: size, Color: c, StrokeWidth: 3},
			geometry.Polygon{Vertices: geometry.RegularPolygon(4, size*0.7), Color: c, StrokeWidth: 2},
			geometry.Circle{Radius: size * 0.2, Color: geometry.ColorSpark, Fill: true},
		}
	}

	return geometry.Blueprint{
		Name:      t.Key(),
		Shapes:    shapes,
		Collision: geometry.CircleCollider{Radius: r},
	}
}

func nested(outer, inner []geometry.Vec2, c color.RGBA) []geometry.Shape {
	return []geometry.Shape{
		geometry.Polygon{Vertices: outer, Color: c, Fill: true, StrokeWidth: 3},
		geometry.Polygon{Vertices: inner, Color: geometry.WithAlpha(geometry.ColorSpark, 0.3), Fill: true, StrokeWidth: 2},
	}
}

func star(points int, outer, inner float64) []geometry.Vec2 {
	verts := make([]geometry.Vec2, 0, points*2)
	for i, v := range geometry.RegularPolygon(points*2, 1) {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		verts = append(verts, v.Scale(r))
	}
	return verts
}
