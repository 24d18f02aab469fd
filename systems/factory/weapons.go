package factory

import (
	"math"

	"github.com/automoto/geoshooter/archetypes"
	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FireWeapon spawns one volley of w from the ship at origin. Aura is passive
// and is handled by CreateAuraOrb instead.
func FireWeapon(ecs *ecs.ECS, w components.Weapon, origin geometry.Vec2) {
	muzzle := origin.Add(geometry.V(0, cfg.Player.MuzzleOffset))
	switch w.Type {
	case components.WeaponShotgun:
		CreateShotgunPellets(ecs, muzzle, w.Level)
	case components.WeaponRocket:
		CreateRockets(ecs, muzzle, w.Level)
	case components.WeaponLaser:
		CreateLasers(ecs, origin, w.Level)
	case components.WeaponHoming:
		CreateHomingMissiles(ecs, muzzle, w.Level)
	case components.WeaponLightning:
		CreateLightningCast(ecs, origin, w.Level)
	case components.WeaponBeam:
		CreateBeamWave(ecs, origin, w.Level)
	case components.WeaponAura:
	}
}

// spread returns the x offset of shot i out of n, centered on zero.
func spread(i, n int, spacing float64) float64 {
	if n <= 1 {
		return 0
	}
	return (float64(i) - float64(n-1)/2) * spacing
}

func newWeaponBullet(ecs *ecs.ECS, t components.WeaponType, damage int, velocity, pos geometry.Vec2, lifetime float64, bp geometry.Blueprint, mask collision.Mask, extra ...donburi.IComponentType) *donburi.Entry {
	b := archetypes.WeaponBullet.Spawn(ecs, extra...)
	components.WeaponBullet.SetValue(b, components.WeaponBulletData{
		Type:     t,
		Damage:   damage,
		Velocity: velocity,
		Lifetime: lifetime,
	})
	components.Transform.SetValue(b, components.TransformData{Position: pos, Z: 8})
	components.Collider.SetValue(b, components.ColliderData{
		Shape: bp.Collision,
		Layer: collision.LayerPlayerBullet,
		Mask:  mask,
	})
	components.Visual.SetValue(b, components.VisualData{Blueprint: bp})
	return b
}

// CreateShotgunPellets fires 2 + 2*(level-1) pellets spread evenly across a
// 20 degree cone around +Y.
func CreateShotgunPellets(ecs *ecs.ECS, origin geometry.Vec2, level int) []*donburi.Entry {
	n := 2 + (level-1)*2
	r := cfg.Weapon.ShotgunRadius
	bp := geometry.Blueprint{
		Name:      "shotgun_pellet",
		Shapes:    []geometry.Shape{geometry.Circle{Radius: r, Color: geometry.ColorPlayerShot, StrokeWidth: 2}},
		Collision: geometry.CircleCollider{Radius: r},
	}

	pellets := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		angle := math.Pi/2 + cfg.Weapon.ShotgunSpread*(t-0.5)*2
		p := newWeaponBullet(ecs, components.WeaponShotgun, 1,
			geometry.FromAngle(angle, cfg.Game.BulletSpeed), origin,
			cfg.Weapon.ShotgunLifetime, bp, collision.PlayerBulletMask(),
			components.ShotgunPellet)
		components.ShotgunPellet.SetValue(p, components.ShotgunPelletData{Angle: angle})
		pellets = append(pellets, p)
	}
	return pellets
}

// CreateRockets fires one rocket per level. Each aims at its target on its
// first update.
func CreateRockets(ecs *ecs.ECS, origin geometry.Vec2, level int) []*donburi.Entry {
	speed := cfg.Game.BulletSpeed * cfg.Weapon.RocketSpeedRatio * (1 + 0.1*float64(level-1))
	r := cfg.Weapon.RocketRadius
	bp := geometry.Blueprint{
		Name: "rocket",
		Shapes: []geometry.Shape{
			geometry.Polygon{
				Vertices: []geometry.Vec2{{X: 0, Y: r * 2}, {X: -r, Y: -r}, {X: r, Y: -r}},
				Color:    geometry.ColorRocketShard,
				Fill:     true,
			},
		},
		Collision: geometry.CircleCollider{Radius: r},
	}

	rockets := make([]*donburi.Entry, 0, level)
	for i := 0; i < level; i++ {
		pos := origin.Add(geometry.V(spread(i, level, cfg.Weapon.RocketSpacing), 0))
		rocket := newWeaponBullet(ecs, components.WeaponRocket, 2+level,
			geometry.V(0, speed), pos, cfg.Weapon.RocketLifetime, bp,
			collision.PlayerBulletMask(), components.Rocket)
		components.Rocket.SetValue(rocket, components.RocketData{
			Speed:           speed,
			ExplosionRadius: 30 + 5*float64(level),
		})
		rockets = append(rockets, rocket)
	}
	return rockets
}

// CreateLasers fires 1 + (level-1)/2 piercing rectangles.
func CreateLasers(ecs *ecs.ECS, origin geometry.Vec2, level int) []*donburi.Entry {
	n := 1 + (level-1)/2
	length := cfg.Weapon.LaserLength
	width := 4 + float64(level)*0.7
	core := math.Max(width*0.4, 1.8)
	bp := geometry.Blueprint{
		Name: "laser",
		Shapes: []geometry.Shape{
			geometry.Polygon{Vertices: geometry.RectVertices(width, length), Color: geometry.ColorLaser, Fill: true},
			geometry.Polygon{Vertices: geometry.RectVertices(core, length), Color: geometry.ColorPlayerShot, Fill: true},
		},
		Collision: geometry.RectCollider{Width: width, Height: length},
	}

	lasers := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		pos := origin.Add(geometry.V(spread(i, n, cfg.Weapon.LaserSpacing), cfg.Weapon.LaserOffset+length/2))
		l := newWeaponBullet(ecs, components.WeaponLaser, 2+level,
			geometry.V(0, cfg.Weapon.LaserSpeed), pos, cfg.Weapon.LaserLifetime, bp,
			collision.PlayerBulletMask(),
			components.Pierce, components.HitList, components.Laser)
		components.Pierce.SetValue(l, components.PierceData{Remaining: components.PierceInfinite})
		components.Laser.SetValue(l, components.LaserData{Width: width, Length: length})
		lasers = append(lasers, l)
	}
	return lasers
}

// CreateHomingMissiles fires one missile per level. Targets are acquired
// by the projectile system.
func CreateHomingMissiles(ecs *ecs.ECS, origin geometry.Vec2, level int) []*donburi.Entry {
	speed := cfg.Game.BulletSpeed * cfg.Weapon.HomingSpeedRatio
	r := cfg.Weapon.HomingRadius
	bp := geometry.Blueprint{
		Name: "homing_missile",
		Shapes: []geometry.Shape{
			geometry.Polygon{
				Vertices: []geometry.Vec2{{X: 0, Y: 6}, {X: -3, Y: -3}, {X: 3, Y: -3}},
				Color:    geometry.ColorPlayerShot,
				Fill:     true,
			},
		},
		Collision: geometry.CircleCollider{Radius: r},
	}

	missiles := make([]*donburi.Entry, 0, level)
	for i := 0; i < level; i++ {
		pos := origin.Add(geometry.V(spread(i, level, cfg.Weapon.HomingSpacing), 0))
		m := newWeaponBullet(ecs, components.WeaponHoming, cfg.Weapon.HomingDamage,
			geometry.V(0, speed), pos, cfg.Weapon.HomingLifetime, bp,
			collision.PlayerBulletMask(), components.Homing)
		components.Homing.SetValue(m, components.HomingData{
			TurnRate: 3 + 0.5*float64(level),
			Speed:    speed,
		})
		missiles = append(missiles, m)
	}
	return missiles
}

// CreateLightningCast queues a chain request resolved on the next
// lightning update.
func CreateLightningCast(ecs *ecs.ECS, origin geometry.Vec2, level int) *donburi.Entry {
	cast := archetypes.LightningCast.Spawn(ecs)
	components.LightningCast.SetValue(cast, components.LightningCastData{
		Jumps:  3 + level,
		Range:  math.Min(280+50*float64(level), cfg.Weapon.LightningRangeCap),
		Damage: 3 + level,
	})
	components.Transform.SetValue(cast, components.TransformData{Position: origin})
	return cast
}

// CreateAuraOrb spawns one orb circling owner. Orbs never expire on their
// own and also block enemy bullets.
func CreateAuraOrb(ecs *ecs.ECS, owner *donburi.Entry, angle float64) *donburi.Entry {
	r := cfg.Weapon.AuraOrbRadius
	bp := geometry.Blueprint{
		Name:      "aura_orb",
		Shapes:    []geometry.Shape{geometry.Circle{Radius: r, Color: geometry.ColorAura, Fill: true}},
		Collision: geometry.CircleCollider{Radius: r},
	}

	center := components.Transform.Get(owner).Position
	pos := center.Add(geometry.FromAngle(angle, cfg.Weapon.AuraRadius))

	orb := newWeaponBullet(ecs, components.WeaponAura, cfg.Weapon.AuraDamage,
		geometry.Zero, pos, math.Inf(1), bp, collision.AuraMask(),
		components.Pierce, components.HitList, components.AuraOrb)
	components.Pierce.SetValue(orb, components.PierceData{Remaining: components.PierceInfinite})
	components.AuraOrb.SetValue(orb, components.AuraOrbData{
		Angle:  angle,
		Speed:  cfg.Weapon.AuraOrbitSpeed,
		Radius: cfg.Weapon.AuraRadius,
		Owner:  owner.Entity(),
	})
	return orb
}

// AuraOrbCount is how many orbs an aura of the given level keeps alive.
func AuraOrbCount(level int) int {
	return cfg.Weapon.AuraBaseOrbs + level
}

// CreateBeamWave fires a wide piercing arc that sweeps up the screen.
func CreateBeamWave(ecs *ecs.ECS, origin geometry.Vec2, level int) *donburi.Entry {
	radius := cfg.Game.Width * cfg.Weapon.BeamWidthRatio
	thickness := 10 + 1.2*float64(level)
	bp := geometry.Blueprint{
		Name: "beam_wave",
		Shapes: []geometry.Shape{
			geometry.Arc{Radius: radius, StartAngle: 0, EndAngle: math.Pi, Color: geometry.ColorBeam, StrokeWidth: thickness},
			geometry.Arc{Radius: radius, StartAngle: 0, EndAngle: math.Pi, Color: geometry.ColorPlayerShot, StrokeWidth: math.Max(thickness*0.35, 2.5)},
		},
		Collision: geometry.CircleCollider{Radius: radius + thickness*0.6},
	}

	pos := origin.Add(geometry.V(0, cfg.Weapon.BeamOffset))
	beam := newWeaponBullet(ecs, components.WeaponBeam, 4+2*level,
		geometry.V(0, cfg.Game.BulletSpeed*cfg.Weapon.BeamSpeedRatio), pos,
		cfg.Weapon.BeamLifetime, bp, collision.PlayerBulletMask(),
		components.Pierce, components.HitList, components.BeamWave)
	components.Pierce.SetValue(beam, components.PierceData{Remaining: components.PierceInfinite})
	components.BeamWave.SetValue(beam, components.BeamWaveData{Width: radius})
	return beam
}
