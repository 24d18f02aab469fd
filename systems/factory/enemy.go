package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of type t scaled by difficulty, with a random
// movement pattern and a random initial shoot delay.
func CreateEnemy(ecs *ecs.ECS, t components.EnemyType, pos geometry.Vec2, difficulty float64, rng *rand.Rand) *donburi.Entry {
	base := t.Config()
	interval := math.Max(base.ShootInterval/difficulty, cfg.Enemy.MinShootInterval)
	health := int(math.Ceil(float64(base.Health) * difficulty))

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Type:          t,
		Health:        health,
		MaxHealth:     health,
		Score:         int(math.Floor(float64(base.Score) * difficulty)),
		ShootTimer:    rng.Float64() * interval,
		ShootInterval: interval,
	})
	components.Movement.SetValue(enemy, RandomMovement(rng, difficulty, base.Elite))
	components.Transform.SetValue(enemy, components.TransformData{Position: pos, Z: 5})

	bp := enemyBlueprint(t, base.Radius)
	components.Collider.SetValue(enemy, components.ColliderData{
		Shape: bp.Collision,
		Layer: collision.LayerEnemy,
		Mask:  collision.EnemyMask(),
	})
	components.Visual.SetValue(enemy, components.VisualData{Blueprint: bp})

	return enemy
}

// RandomMovement picks one of three drift patterns. Faster at higher
// difficulty, much slower for elites.
func RandomMovement(rng *rand.Rand, difficulty float64, elite bool) components.MovementData {
	mul := 1 + (difficulty-1)*0.5
	if elite {
		mul *= cfg.Enemy.EliteSpeedFactor
	}
	speed := cfg.Game.EnemyBaseSpeed * mul

	switch rng.Intn(3) {
	case 0:
		j := cfg.Enemy.StraightJitter
		return components.MovementData{
			Kind:  components.MoveStraight,
			Speed: speed * uniform(rng, 1-j, 1+j),
		}
	case 1:
		return components.MovementData{
			Kind:      components.MoveSine,
			Speed:     speed * cfg.Enemy.SineSpeedFactor,
			Amplitude: uniform(rng, cfg.Enemy.SineAmplitudeMin, cfg.Enemy.SineAmplitudeMax),
			Frequency: uniform(rng, cfg.Enemy.SineFrequencyMin, cfg.Enemy.SineFrequencyMax),
		}
	default:
		return components.MovementData{Kind: components.MoveStraight, Speed: speed}
	}
}

func enemyBlueprint(t components.EnemyType, r float64) geometry.Blueprint {
	c := geometry.ColorEnemy
	if t.IsElite() {
		c = geometry.ColorElite
	}

	var verts []geometry.Vec2
	switch t {
	case components.EnemyDiamond:
		verts = geometry.RegularPolygon(4, r)
	case components.EnemyHexagon, components.EnemyEliteGuard:
		verts = geometry.RegularPolygon(6, r)
	case components.EnemySmall:
		// Triangle pointing at the player.
		verts = []geometry.Vec2{{X: 0, Y: -r}, {X: -r * 0.87, Y: r * 0.5}, {X: r * 0.87, Y: r * 0.5}}
	case components.EnemyEliteScout:
		verts = geometry.RegularPolygon(5, r)
	default:
		verts = geometry.RegularPolygon(8, r)
	}

	shapes := []geometry.Shape{
		geometry.Polygon{Vertices: verts, Color: c, StrokeWidth: 2},
	}
	if t.IsElite() {
		shapes = append(shapes, geometry.Circle{Radius: r * 0.4, Color: c, Fill: true})
	}

	return geometry.Blueprint{
		Name:      t.Key(),
		Shapes:    shapes,
		Collision: geometry.PolygonCollider{Vertices: verts},
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
