package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves enemies along their pattern plus the world scroll,
// fires volleys when their shoot timer runs out and drops the ones that
// passed the bottom edge.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := delta(ecs)
	scroll := geometry.V(0, -cfg.Game.ScrollSpeed*dt)
	rng := GetOrCreateRNG(ecs)
	var toRemove []*donburi.Entry

	type volley struct {
		t   components.EnemyType
		pos geometry.Vec2
	}
	var volleys []volley

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		t := components.Transform.Get(e)

		t.Position = t.Position.Add(components.Movement.Get(e).Step(dt)).Add(scroll)
		if t.Position.Y < -cfg.Game.Height/2-cfg.Enemy.DespawnMargin {
			toRemove = append(toRemove, e)
			return
		}

		enemy.ShootTimer -= dt
		if enemy.ShootTimer <= 0 {
			volleys = append(volleys, volley{enemy.Type, t.Position})
			enemy.ShootTimer = enemy.ShootInterval
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
	for _, v := range volleys {
		fireEnemyVolley(ecs, v.t, v.pos, rng)
	}
}

// fireEnemyVolley spawns the bullet pattern of enemy type t.
func fireEnemyVolley(ecs *ecs.ECS, t components.EnemyType, pos geometry.Vec2, rng *rand.Rand) {
	bs := cfg.Game.BulletSpeed
	muzzle := pos.Add(geometry.V(0, -cfg.Enemy.MuzzleOffset))
	down := -math.Pi / 2

	switch t {
	case components.EnemyEliteScout:
		shots := []struct {
			i     float64
			speed float64
			style components.BulletStyle
		}{
			{-1, 0.55, components.StyleRing},
			{0, 0.65, components.StyleShard},
			{1, 0.55, components.StyleRing},
			{0, 0.85, components.StyleNeedle},
		}
		for _, s := range shots {
			v := geometry.FromAngle(down+s.i*0.18, bs*s.speed)
			factory.CreateEnemyBullet(ecs, muzzle, v, s.style)
		}

	case components.EnemyEliteGunship:
		for k := 0; k < 5; k++ {
			u := float64(k)/4*2 - 1
			v := geometry.FromAngle(down+u*0.75*0.5, bs*0.6)
			factory.CreateEnemyBullet(ecs, muzzle, v, components.StyleShard)
		}
		for _, side := range []float64{-1, 1} {
			v := geometry.V(side*0.25, -1).Normalize().Scale(bs * 0.5)
			factory.CreateEnemyBullet(ecs, muzzle.Add(geometry.V(side*14, 0)), v, components.StyleRing)
		}

	case components.EnemyEliteGuard:
		for k := 0; k < 10; k++ {
			u := float64(k) / 9
			v := geometry.FromAngle(math.Pi*(0.15+0.7*u)+math.Pi, bs*0.42)
			factory.CreateEnemyBullet(ecs, muzzle, v, components.StyleRing)
		}

	default:
		style := components.StyleShard
		switch {
		case t == components.EnemyHexagon:
			style = components.StyleRing
		case t == components.EnemySmall:
			style = components.StyleNeedle
		case rng.Float64() < cfg.Enemy.NeedleChance:
			style = components.StyleNeedle
		}
		v := geometry.V(0, -bs*cfg.Enemy.BulletSpeedRatio)
		factory.CreateEnemyBullet(ecs, muzzle, v, style)
	}
}
