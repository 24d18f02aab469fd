package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi/ecs"
)

// CreateRocketShards bursts count triangular shards outward from pos.
func CreateRocketShards(ecs *ecs.ECS, pos geometry.Vec2, count int, baseSpeed float64, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := baseSpeed * uniform(rng, 0.35, 0.95)
		size := uniform(rng, 3.5, 6.5)

		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Velocity: geometry.FromAngle(angle, speed),
			Lifetime: cfg.Weapon.ShardLifetime * uniform(rng, 0.4, 0.95),
		})
		components.Transform.SetValue(p, components.TransformData{Position: pos, Z: 50})
		components.Visual.SetValue(p, components.VisualData{
			Blueprint: geometry.Blueprint{
				Name: "rocket_shard",
				Shapes: []geometry.Shape{
					geometry.Polygon{
						Vertices: []geometry.Vec2{{X: 0, Y: size}, {X: -size * 0.7, Y: -size}, {X: size * 0.7, Y: -size}},
						Color:    geometry.ColorRocketShard,
						Fill:     true,
					},
				},
			},
			Rotation: angle,
		})
	}
}

// ShardCount sizes a rocket burst by its explosion radius.
func ShardCount(explosionRadius float64) int {
	n := int(explosionRadius / 4)
	return max(cfg.Weapon.RocketMinShard, min(n, cfg.Weapon.RocketMaxShard))
}

// CreateHitSparks draws a short-lived spray of lines at pos.
func CreateHitSparks(ecs *ecs.ECS, pos geometry.Vec2, rng *rand.Rand) {
	n := cfg.Weapon.SparkCount + rng.Intn(4)
	shapes := make([]geometry.Shape, 0, n)
	for i := 0; i < n; i++ {
		shapes = append(shapes, geometry.Line{
			To:          geometry.FromAngle(rng.Float64()*2*math.Pi, uniform(rng, 10, 16)),
			Color:       geometry.WithAlpha(geometry.ColorSpark, 0.55),
			StrokeWidth: 1.3,
		})
	}

	p := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(p, components.ParticleData{Lifetime: cfg.Weapon.SparkLifetime})
	components.Transform.SetValue(p, components.TransformData{Position: pos, Z: 60})
	components.Visual.SetValue(p, components.VisualData{
		Blueprint: geometry.Blueprint{Name: "hit_sparks", Shapes: shapes},
	})
}

// CreateLightningChain records a resolved chain for drawing.
func CreateLightningChain(ecs *ecs.ECS, points []geometry.Vec2) {
	c := archetypes.LightningChain.Spawn(ecs)
	components.LightningChain.SetValue(c, components.LightningChainData{
		Points:    points,
		Remaining: cfg.Weapon.LightningLifetime,
	})
}
