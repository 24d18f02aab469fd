package systems

import (
	"math"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// offscreen reports whether pos is beyond the arena plus margin on either
// axis.
func offscreen(pos geometry.Vec2, margin float64) bool {
	return math.Abs(pos.X) > cfg.Game.Width/2+margin || math.Abs(pos.Y) > cfg.Game.Height/2+margin
}

// UpdateBullets moves plain bullets and drops the ones that left the arena.
func UpdateBullets(ecs *ecs.ECS) {
	dt := delta(ecs)
	var toRemove []*donburi.Entry

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(b.Velocity.Scale(dt))
		if offscreen(t.Position, cfg.Weapon.OffscreenMargin) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}

// UpdateWeaponBullets steers, moves and ages weapon projectiles. Rockets
// that expire or leave the arena detonate.
func UpdateWeaponBullets(ecs *ecs.ECS) {
	dt := delta(ecs)
	var expired []*donburi.Entry

	components.WeaponBullet.Each(ecs.World, func(e *donburi.Entry) {
		wb := components.WeaponBullet.Get(e)
		t := components.Transform.Get(e)

		if e.HasComponent(components.AuraOrb) {
			if !orbitOwner(ecs, e, t, dt) {
				expired = append(expired, e)
			}
			return
		}

		switch {
		case e.HasComponent(components.Rocket):
			aimRocket(ecs, components.Rocket.Get(e), wb, t.Position)
		case e.HasComponent(components.Homing):
			steerHoming(ecs, components.Homing.Get(e), wb, t.Position, dt)
		}
		if e.HasComponent(components.BeamWave) {
			components.BeamWave.Get(e).Progress += dt
		}

		t.Position = t.Position.Add(wb.Velocity.Scale(dt))
		if wb.Velocity != geometry.Zero {
			components.Visual.Get(e).Rotation = wb.Velocity.Angle() - math.Pi/2
		}

		wb.Lifetime -= dt
		if wb.Lifetime <= 0 || offscreen(t.Position, cfg.Weapon.OffscreenMargin) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.Valid() && e.HasComponent(components.Rocket) {
			explodeRocket(ecs, e)
			continue
		}
		destroy(ecs, e)
	}
}

// aimRocket points a fresh rocket straight at the nearest target once. It
// flies straight afterwards.
func aimRocket(ecs *ecs.ECS, r *components.RocketData, wb *components.WeaponBulletData, pos geometry.Vec2) {
	if r.Initialized {
		return
	}
	r.Initialized = true
	target, ok := nearestTarget(ecs, pos)
	if !ok {
		return
	}
	r.Target, r.HasTarget = target, true
	if dir := components.Transform.Get(ecs.World.Entry(target)).Position.Sub(pos).Normalize(); dir != geometry.Zero {
		wb.Velocity = dir.Scale(r.Speed)
	}
}

// steerHoming turns a missile toward its target by at most TurnRate*dt,
// picking a new target when the old one is gone.
func steerHoming(ecs *ecs.ECS, h *components.HomingData, wb *components.WeaponBulletData, pos geometry.Vec2, dt float64) {
	if !h.HasTarget || !ecs.World.Valid(h.Target) {
		h.Target, h.HasTarget = nearestTarget(ecs, pos)
	}
	if !h.HasTarget {
		return
	}
	targetPos := components.Transform.Get(ecs.World.Entry(h.Target)).Position
	wb.Velocity = geometry.SteerToward(wb.Velocity, targetPos.Sub(pos), h.TurnRate*dt)
}

// orbitOwner advances an aura orb around its owner. It reports false when
// the owner is gone.
func orbitOwner(ecs *ecs.ECS, orb *donburi.Entry, t *components.TransformData, dt float64) bool {
	o := components.AuraOrb.Get(orb)
	owner, ok := entryOf(ecs, o.Owner)
	if !ok {
		return false
	}
	o.Angle = math.Mod(o.Angle+o.Speed*dt, 2*math.Pi)
	t.Position = components.Transform.Get(owner).Position.Add(geometry.FromAngle(o.Angle, o.Radius))
	return true
}

// UpdateBossBullets ages and moves boss bullets.
func UpdateBossBullets(ecs *ecs.ECS) {
	dt := delta(ecs)
	var toRemove []*donburi.Entry

	components.BossBullet.Each(ecs.World, func(e *donburi.Entry) {
		b := components.BossBullet.Get(e)
		b.Lifetime -= dt
		if b.Lifetime <= 0 {
			toRemove = append(toRemove, e)
			return
		}

		t := components.Transform.Get(e)
		t.Position = t.Position.Add(b.Velocity.Scale(dt))
		if offscreen(t.Position, cfg.Boss.BulletMargin) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}
