package systems

import (
	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/automoto/geoshooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock and the run timer.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Elapsed += clock.Delta
	clock.Ticks++
	GetOrCreateGame(ecs).PlayTime += clock.Delta
}

// UpdatePlayer moves the ship from input, keeps it inside the arena, counts
// down invincibility and fires the default gun.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := delta(ecs)
	input := GetOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		t := components.Transform.Get(e)

		if dir := input.Move; dir != geometry.Zero {
			// Partial stick tilt moves slower; diagonals are capped at full speed.
			if dir.LenSq() > 1 {
				dir = dir.Normalize()
			}
			t.Position = t.Position.Add(dir.Scale(player.Speed * dt))
			half := geometry.V(
				cfg.Game.Width/2-cfg.Player.EdgeMargin,
				cfg.Game.Height/2-cfg.Player.EdgeMargin,
			)
			t.Position = t.Position.Clamp(half)
		}

		if player.Invincible {
			player.InvincibleTimer -= dt
			if player.InvincibleTimer <= 0 {
				player.Invincible = false
				player.InvincibleTimer = 0
			}
		}

		inv := components.WeaponInventory.Get(e)
		player.ShootTimer -= dt
		if inv.HasDefaultBullet && input.Fire && player.ShootTimer <= 0 {
			factory.CreatePlayerBullet(ecs, t.Position.Add(geometry.V(0, cfg.Player.MuzzleOffset)))
			player.ShootTimer = player.ShootCooldown
		}
	})
}

// playerEntry returns the live player ship, if any.
func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// makeInvincible starts the post-hit grace period.
func makeInvincible(player *components.PlayerData) {
	player.Invincible = true
	player.InvincibleTimer = cfg.Player.InvulnSeconds
}
