package systems

import (
	"math"
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestDefaultGunThenShotgun(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	GetOrCreateInput(e).Fire = true

	UpdatePlayer(e)

	var bullets []*donburi.Entry
	components.Bullet.Each(e.World, func(b *donburi.Entry) { bullets = append(bullets, b) })
	require.Len(t, bullets, 1)
	shot := components.Bullet.Get(bullets[0])
	assert.Equal(t, 1, shot.Damage)
	assert.True(t, shot.IsPlayerBullet)
	assert.Equal(t, geometry.V(0, cfg.Game.BulletSpeed), shot.Velocity)

	inv := components.WeaponInventory.Get(ship)
	require.True(t, inv.AddOrUpgrade(components.WeaponShotgun))
	assert.False(t, inv.HasDefaultBullet)

	UpdateWeapons(e)

	var angles []float64
	components.ShotgunPellet.Each(e.World, func(p *donburi.Entry) {
		angles = append(angles, components.ShotgunPellet.Get(p).Angle)
	})
	require.Len(t, angles, 2)
	tenDegrees := math.Pi / 18
	for _, a := range angles {
		assert.LessOrEqual(t, math.Abs(a-math.Pi/2), tenDegrees+1e-9)
	}
	assert.InDelta(t, math.Pi, angles[0]+angles[1], 1e-9, "pellets are symmetric around +Y")

	// The default gun stays silent once an active weapon is owned.
	components.Player.Get(ship).ShootTimer = 0
	UpdatePlayer(e)
	assert.Equal(t, 1, countOf(e, components.Bullet))
}

func TestDefaultGunNeedsFire(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e)

	UpdatePlayer(e)
	assert.Equal(t, 0, countOf(e, components.Bullet))
}

func TestWeaponRespectsCooldown(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	components.WeaponInventory.Get(ship).AddOrUpgrade(components.WeaponRocket)

	UpdateWeapons(e)
	require.Equal(t, 1, countOf(e, components.Rocket))

	// 0.6 s cooldown: nothing new on the next tick.
	UpdateWeapons(e)
	assert.Equal(t, 1, countOf(e, components.Rocket))
}

func TestShotgunPelletCountGrowsWithLevel(t *testing.T) {
	e := newTestECS()
	pellets := factory.CreateShotgunPellets(e, geometry.Zero, 3)
	assert.Len(t, pellets, 6)
}

func TestAuraKeepsOrbRingInSync(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	inv := components.WeaponInventory.Get(ship)
	inv.AddOrUpgrade(components.WeaponAura)

	UpdateWeapons(e)
	assert.Equal(t, 3, countOf(e, components.AuraOrb))

	inv.AddOrUpgrade(components.WeaponAura)
	UpdateWeapons(e)
	assert.Equal(t, 4, countOf(e, components.AuraOrb))
}

func TestAuraOrbsFollowOwner(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	components.WeaponInventory.Get(ship).AddOrUpgrade(components.WeaponAura)
	UpdateWeapons(e)

	UpdateWeaponBullets(e)

	center := components.Transform.Get(ship).Position
	components.AuraOrb.Each(e.World, func(orb *donburi.Entry) {
		d := components.Transform.Get(orb).Position.Sub(center).Len()
		assert.InDelta(t, cfg.Weapon.AuraRadius, d, 1e-6)
	})
}

func TestNearestTargetPrefersBossOnTie(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.V(100, 0), 5)
	boss := factory.CreateBoss(e, components.BossDiamondKing, 100)
	components.Transform.Get(boss).Position = geometry.V(-100, 0)

	target, ok := nearestTarget(e, geometry.Zero)
	require.True(t, ok)
	assert.Equal(t, boss.Entity(), target)

	components.Transform.Get(enemy).Position = geometry.V(50, 0)
	target, _ = nearestTarget(e, geometry.Zero)
	assert.Equal(t, enemy.Entity(), target)
}

func TestRocketExplodesWhenItLeavesTheArena(t *testing.T) {
	e := newTestECS()
	rockets := factory.CreateRockets(e, geometry.V(0, cfg.Game.Height/2+40), 1)
	require.Len(t, rockets, 1)
	victim := spawnEnemy(e, geometry.V(0, cfg.Game.Height/2+60), 10)

	for i := 0; i < 20 && countOf(e, components.Rocket) > 0; i++ {
		UpdateWeaponBullets(e)
	}

	assert.Equal(t, 0, countOf(e, components.Rocket))
	assert.Less(t, components.Enemy.Get(victim).Health, 10)
}
