package systems

import (
	"log"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// damageEnemy applies damage to a regular enemy and resolves its death. It
// reports whether the enemy died.
//
// Kills during a boss fight award score only, so enemies cannot be farmed
// for levels while the boss is up.
func damageEnemy(ecs *ecs.ECS, enemy *donburi.Entry, amount int) bool {
	if enemy == nil || !enemy.Valid() {
		return false
	}
	data := components.Enemy.Get(enemy)
	data.Health -= amount
	if data.Health > 0 {
		return false
	}

	pos := components.Transform.Get(enemy).Position
	score := data.Score
	destroy(ecs, enemy)

	game := GetOrCreateGame(ecs)
	if GetOrCreateBossState(ecs).Active {
		game.AddScoreOnly(score)
		return true
	}

	game.AddScore(score)
	if GetOrCreateRNG(ecs).Float64() < cfg.Enemy.CoinDropChance {
		factory.CreatePowerUp(ecs, pos, components.PowerUpCoin)
	}
	return true
}

// damageBoss applies damage to a boss and ends the fight when it dies.
func damageBoss(ecs *ecs.ECS, boss *donburi.Entry, amount int) bool {
	if boss == nil || !boss.Valid() {
		return false
	}
	data := components.Boss.Get(boss)
	data.Health -= amount

	state := GetOrCreateBossState(ecs)
	state.CurrentHealth = data.Health
	if data.Health > 0 {
		return false
	}

	score := data.Score
	name := data.Type.Name()
	destroy(ecs, boss)
	GetOrCreateGame(ecs).AddScore(score)
	state.Clear()
	log.Printf("Boss defeated: %s (+%d)", name, score)
	return true
}

// damageTarget dispatches to the enemy or boss damage rule.
func damageTarget(ecs *ecs.ECS, target *donburi.Entry, amount int) bool {
	switch {
	case target.HasComponent(components.Boss):
		return damageBoss(ecs, target, amount)
	case target.HasComponent(components.Enemy):
		return damageEnemy(ecs, target, amount)
	}
	return false
}

// explodeRocket damages every regular enemy whose center is within the blast
// radius, bursts shards and removes the rocket.
func explodeRocket(ecs *ecs.ECS, rocket *donburi.Entry) {
	if rocket == nil || !rocket.Valid() {
		return
	}
	pos := components.Transform.Get(rocket).Position
	r := *components.Rocket.Get(rocket)
	damage := components.WeaponBullet.Get(rocket).Damage
	destroy(ecs, rocket)

	for _, enemy := range enemiesWithin(ecs, pos, r.ExplosionRadius) {
		damageEnemy(ecs, enemy, damage)
	}
	factory.CreateRocketShards(ecs, pos, factory.ShardCount(r.ExplosionRadius), r.Speed, GetOrCreateRNG(ecs))
}

// enemiesWithin collects enemies at distance <= radius from center.
func enemiesWithin(ecs *ecs.ECS, center geometry.Vec2, radius float64) []*donburi.Entry {
	var out []*donburi.Entry
	r2 := radius * radius
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Transform.Get(e).Position.DistSq(center) <= r2 {
			out = append(out, e)
		}
	})
	return out
}

// consumeHit applies the pierce rule to a weapon projectile after it hit
// something and removes it when spent.
func consumeHit(ecs *ecs.ECS, shot *donburi.Entry) {
	if !shot.HasComponent(components.Pierce) {
		destroy(ecs, shot)
		return
	}
	if components.Pierce.Get(shot).Consume() {
		destroy(ecs, shot)
	}
}
