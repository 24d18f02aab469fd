package systems

import (
	"log"

	"github.com/automoto/geoshooter/collision"
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerCombat resolves hits on the player and power-up pickups.
// While invincible the ship ignores enemies and their bullets.
func UpdatePlayerCombat(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)

	for _, ev := range collisionEvents(ecs) {
		self, other, otherLayer, ok := ev.Other(collision.LayerPlayer)
		if !ok {
			continue
		}
		ship, ok := entryOf(ecs, self)
		if !ok || !ship.HasComponent(components.Player) {
			continue
		}
		player := components.Player.Get(ship)

		switch otherLayer {
		case collision.LayerEnemy, collision.LayerEnemyBullet:
			if player.Invincible || game.GameOver {
				continue
			}
			game.TakeHit()
			makeInvincible(player)
			log.Printf("Player hit: lives %d shield %d", game.Lives, game.Shield)

			if otherLayer == collision.LayerEnemyBullet {
				if shot, ok := entryOf(ecs, other); ok {
					destroy(ecs, shot)
				}
			}
			if game.GameOver {
				log.Printf("Game over: score %d", game.Score)
			}

		case collision.LayerPowerUp:
			pickup, ok := entryOf(ecs, other)
			if !ok {
				continue
			}
			applyPowerUp(ecs, ship, components.PowerUp.Get(pickup).Type)
			destroy(ecs, pickup)
		}
	}
}

func applyPowerUp(ecs *ecs.ECS, ship *donburi.Entry, t components.PowerUpType) {
	game := GetOrCreateGame(ecs)
	switch t {
	case components.PowerUpCoin:
		game.Coins += cfg.Player.CoinPickup
	case components.PowerUpShield:
		game.RestoreShield(1)
	case components.PowerUpExtraLife:
		game.RestoreLives(1)
	case components.PowerUpWeaponUpgrade:
		inv := components.WeaponInventory.Get(ship)
		if choices := inv.UpgradeableWeapons(); len(choices) > 0 {
			inv.AddOrUpgrade(choices[GetOrCreateRNG(ecs).Intn(len(choices))])
		}
	}
}
