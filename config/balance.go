package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// BalanceFile is the on-disk override for the balance tables. Every field
// is optional; absent values keep their defaults.
type BalanceFile struct {
	Game struct {
		PlayerSpeed        *float64 `yaml:"playerSpeed"`
		BulletSpeed        *float64 `yaml:"bulletSpeed"`
		EnemyBaseSpeed     *float64 `yaml:"enemyBaseSpeed"`
		EnemySpawnInterval *float64 `yaml:"enemySpawnInterval"`
		ShootCooldown      *float64 `yaml:"shootCooldown"`
		TickRate           *int     `yaml:"tickRate"`
	} `yaml:"game"`

	Enemies  map[string]EnemyTypeConfig  `yaml:"enemies"`
	Bosses   map[string]BossTypeConfig   `yaml:"bosses"`
	Weapons  map[string]WeaponTypeConfig `yaml:"weapons"`
	Cooldown map[string]CooldownTier     `yaml:"bossCooldowns"`

	Spawn struct {
		DifficultyPerLevel *float64 `yaml:"difficultyPerLevel"`
		MinInterval        *float64 `yaml:"minInterval"`
		EliteMaxChance     *float64 `yaml:"eliteMaxChance"`
		HexMaxChance       *float64 `yaml:"hexMaxChance"`
	} `yaml:"spawn"`
}

// LoadBalance reads a YAML balance file and applies it over the current
// tables.
func LoadBalance(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading balance file %s: %w", path, err)
	}
	return ApplyBalance(data)
}

// ApplyBalance parses YAML balance data and applies it. Data naming an
// unknown enemy, boss, weapon or cooldown tier is rejected and leaves every
// table untouched.
func ApplyBalance(data []byte) error {
	var f BalanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing balance data: %w", err)
	}

	if err := f.validate(); err != nil {
		return err
	}

	setFloat(&Game.PlayerSpeed, f.Game.PlayerSpeed)
	setFloat(&Game.BulletSpeed, f.Game.BulletSpeed)
	setFloat(&Game.EnemyBaseSpeed, f.Game.EnemyBaseSpeed)
	setFloat(&Game.EnemySpawnInterval, f.Game.EnemySpawnInterval)
	setFloat(&Game.ShootCooldown, f.Game.ShootCooldown)
	if f.Game.TickRate != nil && *f.Game.TickRate > 0 {
		Game.TickRate = *f.Game.TickRate
	}

	for key, row := range f.Enemies {
		Enemy.Types[key] = mergeEnemy(Enemy.Types[key], row)
	}
	for key, row := range f.Bosses {
		Boss.Types[key] = mergeBoss(Boss.Types[key], row)
	}
	for key, row := range f.Weapons {
		base := Weapon.Types[key]
		if row.Cooldown > 0 {
			base.Cooldown = row.Cooldown
		}
		Weapon.Types[key] = base
	}
	for key, tier := range f.Cooldown {
		Boss.Cooldowns[key] = tier
	}

	setFloat(&Spawn.DifficultyPerLevel, f.Spawn.DifficultyPerLevel)
	setFloat(&Spawn.MinInterval, f.Spawn.MinInterval)
	setFloat(&Spawn.EliteMaxChance, f.Spawn.EliteMaxChance)
	setFloat(&Spawn.HexMaxChance, f.Spawn.HexMaxChance)
	return nil
}

// validate checks every table key before anything is written. Keys are
// checked in sorted order so the reported error is stable.
func (f *BalanceFile) validate() error {
	if key, ok := firstUnknown(f.Enemies, Enemy.Types); !ok {
		return fmt.Errorf("unknown enemy type %q", key)
	}
	if key, ok := firstUnknown(f.Bosses, Boss.Types); !ok {
		return fmt.Errorf("unknown boss type %q", key)
	}
	if key, ok := firstUnknown(f.Weapons, Weapon.Types); !ok {
		return fmt.Errorf("unknown weapon type %q", key)
	}
	if key, ok := firstUnknown(f.Cooldown, Boss.Cooldowns); !ok {
		return fmt.Errorf("unknown boss cooldown tier %q", key)
	}
	return nil
}

func firstUnknown[V, W any](rows map[string]V, known map[string]W) (string, bool) {
	keys := make([]string, 0, len(rows))
	for key := range rows {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return key, false
		}
	}
	return "", true
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func mergeEnemy(base, row EnemyTypeConfig) EnemyTypeConfig {
	if row.Health > 0 {
		base.Health = row.Health
	}
	if row.Score > 0 {
		base.Score = row.Score
	}
	if row.ShootInterval > 0 {
		base.ShootInterval = row.ShootInterval
	}
	if row.Radius > 0 {
		base.Radius = row.Radius
	}
	return base
}

func mergeBoss(base, row BossTypeConfig) BossTypeConfig {
	if row.Health > 0 {
		base.Health = row.Health
	}
	if row.Score > 0 {
		base.Score = row.Score
	}
	if row.Radius > 0 {
		base.Radius = row.Radius
	}
	return base
}
