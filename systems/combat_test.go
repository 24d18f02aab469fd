package systems

import (
	"testing"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// singlePellet fires a level 1 shotgun and keeps only its first pellet.
func singlePellet(e *ecs.ECS, pos geometry.Vec2) *donburi.Entry {
	pellets := factory.CreateShotgunPellets(e, pos, 1)
	for _, p := range pellets[1:] {
		e.World.Remove(p.Entity())
	}
	return pellets[0]
}

func TestKillDuringBossFightGivesScoreOnly(t *testing.T) {
	e := newTestECS()
	GetOrCreateBossState(e).Active = true
	game := GetOrCreateGame(e)
	game.Experience = 1299

	enemy := spawnEnemy(e, geometry.V(0, 100), 1)
	score := components.Enemy.Get(enemy).Score
	factory.CreatePlayerBullet(e, geometry.V(0, 100))

	resolveCollisions(e)

	assert.False(t, enemy.Valid())
	assert.Equal(t, score, game.Score)
	assert.Equal(t, 1299, game.Experience)
	assert.Equal(t, 1, game.PlayerLevel)
	assert.False(t, game.Upgrading)
	assert.Equal(t, 0, countOf(e, components.PowerUp), "no coin drops while a boss is up")
}

func TestKillOutsideBossFightGivesExperience(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)

	enemy := spawnEnemy(e, geometry.V(0, 100), 1)
	score := components.Enemy.Get(enemy).Score
	factory.CreatePlayerBullet(e, geometry.V(0, 100))

	resolveCollisions(e)

	assert.Equal(t, score, game.Score)
	assert.Equal(t, score, game.Experience)
	assert.Equal(t, 0, countOf(e, components.Bullet))
}

func TestDefaultBulletIsSpentOnSurvivingEnemy(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.V(0, 100), 3)
	factory.CreatePlayerBullet(e, geometry.V(0, 100))

	resolveCollisions(e)

	assert.Equal(t, 2, components.Enemy.Get(enemy).Health)
	assert.Equal(t, 0, countOf(e, components.Bullet))
	assert.Equal(t, 1, countOf(e, components.Particle), "hit sparks")
}

func TestKillingShotStillSparks(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.V(0, 100), 1)
	factory.CreatePlayerBullet(e, geometry.V(4, 96))

	resolveCollisions(e)

	require.False(t, enemy.Valid())
	var sparks []geometry.Vec2
	components.Particle.Each(e.World, func(p *donburi.Entry) {
		sparks = append(sparks, components.Transform.Get(p).Position)
	})
	assert.Equal(t, []geometry.Vec2{geometry.V(4, 96)}, sparks, "sparks sit on the bullet")
}

func TestLaserSparksOnEnemy(t *testing.T) {
	e := newTestECS()
	spawnEnemy(e, geometry.V(0, 100), 50)
	lasers := factory.CreateLasers(e, geometry.Zero, 1)
	require.Len(t, lasers, 1)
	components.Transform.Get(lasers[0]).Position = geometry.V(2, 110)

	resolveCollisions(e)

	var sparks []geometry.Vec2
	components.Particle.Each(e.World, func(p *donburi.Entry) {
		sparks = append(sparks, components.Transform.Get(p).Position)
	})
	assert.Equal(t, []geometry.Vec2{geometry.V(0, 100)}, sparks)
}

func TestSparkPosition(t *testing.T) {
	enemy, shot := geometry.V(1, 2), geometry.V(3, 4)
	assert.Equal(t, enemy, sparkPosition(components.WeaponLaser, enemy, shot))
	assert.Equal(t, enemy, sparkPosition(components.WeaponBeam, enemy, shot))
	assert.Equal(t, shot, sparkPosition(components.WeaponShotgun, enemy, shot))
	assert.Equal(t, shot, sparkPosition(components.WeaponHoming, enemy, shot))
}

func TestRocketBlastRadiusIsInclusive(t *testing.T) {
	e := newTestECS()
	rockets := factory.CreateRockets(e, geometry.Zero, 1)
	require.Len(t, rockets, 1)
	r := components.Rocket.Get(rockets[0])
	require.Equal(t, 35.0, r.ExplosionRadius)
	require.Equal(t, 3, components.WeaponBullet.Get(rockets[0]).Damage)

	edge := spawnEnemy(e, geometry.V(0, 35), 10)
	outside := spawnEnemy(e, geometry.V(0, 35.01), 10)

	explodeRocket(e, rockets[0])

	assert.False(t, rockets[0].Valid())
	assert.Equal(t, 7, components.Enemy.Get(edge).Health)
	assert.Equal(t, 10, components.Enemy.Get(outside).Health)
	assert.Equal(t, factory.ShardCount(35), countOf(e, components.Particle))
}

func TestPierceStopsAfterRemainingHits(t *testing.T) {
	e := newTestECS()
	var enemies []*donburi.Entry
	for i := 0; i < 4; i++ {
		enemies = append(enemies, spawnEnemy(e, geometry.V(0, 100), 5))
	}
	pellet := singlePellet(e, geometry.V(0, 100))
	pellet.AddComponent(components.Pierce)
	pellet.AddComponent(components.HitList)
	components.Pierce.SetValue(pellet, components.PierceData{Remaining: 3})

	resolveCollisions(e)

	damaged := 0
	for _, enemy := range enemies {
		if components.Enemy.Get(enemy).Health < 5 {
			damaged++
		}
	}
	assert.Equal(t, 3, damaged)
	assert.False(t, pellet.Valid())
}

func TestHitListBlocksRepeatHits(t *testing.T) {
	e := newTestECS()
	enemy := spawnEnemy(e, geometry.V(0, 100), 5)
	pellet := singlePellet(e, geometry.V(0, 100))
	pellet.AddComponent(components.Pierce)
	pellet.AddComponent(components.HitList)
	components.Pierce.SetValue(pellet, components.PierceData{Remaining: components.PierceInfinite})

	resolveCollisions(e)
	resolveCollisions(e)
	resolveCollisions(e)

	assert.Equal(t, 4, components.Enemy.Get(enemy).Health)
	assert.True(t, pellet.Valid())
}

func TestEnemyBulletHitsShieldThenGrantsInvincibility(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)
	game.Shield = 1
	ship := factory.CreatePlayer(e)
	pos := components.Transform.Get(ship).Position

	factory.CreateEnemyBullet(e, pos, geometry.Zero, components.StyleShard)
	resolveCollisions(e)

	assert.Equal(t, 0, game.Shield)
	assert.Equal(t, 3, game.Lives)
	player := components.Player.Get(ship)
	assert.True(t, player.Invincible)
	assert.Equal(t, cfg.Player.InvulnSeconds, player.InvincibleTimer)
	assert.Equal(t, 0, countOf(e, components.Bullet), "the bullet is spent")

	// A second bullet during the grace period does nothing and survives.
	factory.CreateEnemyBullet(e, pos, geometry.Zero, components.StyleShard)
	resolveCollisions(e)
	assert.Equal(t, 3, game.Lives)
	assert.Equal(t, 1, countOf(e, components.Bullet))
}

func TestLastLifeEndsTheRun(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)
	game.Lives = 1
	ship := factory.CreatePlayer(e)

	spawnEnemy(e, components.Transform.Get(ship).Position, 5)
	resolveCollisions(e)

	assert.Equal(t, 0, game.Lives)
	assert.True(t, game.GameOver)
}

func TestPowerUpPickupWhileInvincible(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)
	ship := factory.CreatePlayer(e)
	components.Player.Get(ship).Invincible = true
	pos := components.Transform.Get(ship).Position

	factory.CreatePowerUp(e, pos, components.PowerUpCoin)
	resolveCollisions(e)

	assert.Equal(t, cfg.Player.CoinPickup, game.Coins)
	assert.Equal(t, 0, countOf(e, components.PowerUp))
}

func TestApplyPowerUpKinds(t *testing.T) {
	e := newTestECS()
	game := GetOrCreateGame(e)
	ship := factory.CreatePlayer(e)
	inv := components.WeaponInventory.Get(ship)
	inv.AddOrUpgrade(components.WeaponLaser)

	applyPowerUp(e, ship, components.PowerUpShield)
	applyPowerUp(e, ship, components.PowerUpExtraLife)
	applyPowerUp(e, ship, components.PowerUpWeaponUpgrade)

	assert.Equal(t, 1, game.Shield)
	assert.Equal(t, 4, game.Lives)
	assert.Equal(t, 2, inv.Get(components.WeaponLaser).Level)
}

func TestAuraOrbCancelsEnemyBullet(t *testing.T) {
	e := newTestECS()
	ship := factory.CreatePlayer(e)
	orb := factory.CreateAuraOrb(e, ship, 0)
	pos := geometry.V(500, 300)
	components.Transform.Get(orb).Position = pos

	factory.CreateEnemyBullet(e, pos, geometry.Zero, components.StyleShard)
	resolveCollisions(e)

	assert.Equal(t, 0, countOf(e, components.Bullet))
	assert.True(t, orb.Valid())
}

func TestDamageBossClearsStateOnDeath(t *testing.T) {
	e := newTestECS()
	boss := factory.CreateBoss(e, components.BossDiamondKing, 10)
	state := GetOrCreateBossState(e)
	state.Active = true
	state.TotalHealth = 10
	state.CurrentHealth = 10
	score := components.Boss.Get(boss).Score

	assert.False(t, damageBoss(e, boss, 4))
	assert.Equal(t, 6, state.CurrentHealth)

	assert.True(t, damageBoss(e, boss, 6))
	assert.False(t, boss.Valid())
	assert.False(t, state.Active)
	assert.Equal(t, score, GetOrCreateGame(e).Score)
}
