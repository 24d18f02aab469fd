package systems

import (
	"fmt"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/yohamta/donburi/ecs"
)

// UpgradeOptions lists every card the player could be offered right now,
// before the random draw.
func UpgradeOptions(game *components.GameData, inv *components.WeaponInventoryData) []components.UpgradeOption {
	var options []components.UpgradeOption

	if inv.AllWeaponsMaxed() {
		if game.Lives < game.MaxLives {
			options = append(options, components.UpgradeOption{Kind: components.UpgradeRestoreLives})
		}
		if game.Shield < game.MaxShield {
			options = append(options, components.UpgradeOption{Kind: components.UpgradeRestoreShield})
		}
		if len(options) == 0 {
			options = append(options,
				components.UpgradeOption{Kind: components.UpgradeRestoreLives},
				components.UpgradeOption{Kind: components.UpgradeRestoreShield},
			)
		}
		return options
	}

	for _, t := range inv.UpgradeableWeapons() {
		options = append(options, components.UpgradeOption{Kind: components.UpgradeWeaponLevel, Weapon: t})
	}
	for _, t := range inv.NewWeapons() {
		options = append(options, components.UpgradeOption{Kind: components.UpgradeNewWeapon, Weapon: t})
	}
	return options
}

// DrawUpgradeOptions shuffles the available cards into game.Options, keeping
// at most cfg.Progression.UpgradeChoices. With nothing to offer the pending
// level-ups are dropped.
func DrawUpgradeOptions(ecs *ecs.ECS) []components.UpgradeOption {
	game := GetOrCreateGame(ecs)
	ship, ok := playerEntry(ecs)
	if !ok {
		game.Options = nil
		game.PendingUpgrades = 0
		game.Upgrading = false
		return nil
	}

	options := UpgradeOptions(game, components.WeaponInventory.Get(ship))
	if len(options) == 0 {
		game.Options = nil
		game.PendingUpgrades = 0
		game.Upgrading = false
		return nil
	}

	rng := GetOrCreateRNG(ecs)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	if len(options) > cfg.Progression.UpgradeChoices {
		options = options[:cfg.Progression.UpgradeChoices]
	}
	game.Options = options
	return options
}

// ApplyUpgrade grants option to the player and consumes one pending
// level-up. Upgrading stays set while more level-ups are queued.
func ApplyUpgrade(ecs *ecs.ECS, option components.UpgradeOption) error {
	game := GetOrCreateGame(ecs)

	switch option.Kind {
	case components.UpgradeNewWeapon, components.UpgradeWeaponLevel:
		ship, ok := playerEntry(ecs)
		if !ok {
			return fmt.Errorf("apply upgrade: no player")
		}
		components.WeaponInventory.Get(ship).AddOrUpgrade(option.Weapon)
	case components.UpgradeRestoreLives:
		game.RestoreLives(cfg.Progression.RestoreLives)
	case components.UpgradeRestoreShield:
		game.RestoreShield(cfg.Progression.RestoreShield)
	}

	game.Options = nil
	if game.PendingUpgrades > 0 {
		game.PendingUpgrades--
	}
	game.Upgrading = game.PendingUpgrades > 0
	return nil
}
