package config

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// GameConfig holds the arena and the base tuning read at startup.
type GameConfig struct {
	Width  float64
	Height float64

	PlayerSpeed        float64
	BulletSpeed        float64
	EnemyBaseSpeed     float64
	ScrollSpeed        float64
	EnemySpawnInterval float64 // seconds
	ShootCooldown      float64 // seconds

	TickRate int // simulation ticks per second

	PowerUpRadius float64
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Radius        float64
	EdgeMargin    float64 // keeps the ship this far inside the arena edges
	SpawnYFactor  float64 // spawn y = -Height * SpawnYFactor
	InvulnSeconds float64
	MuzzleOffset  float64 // default bullet spawn offset along +Y
	BulletRadius  float64
	BulletDamage  int
	CoinPickup    int
}

// EnemyTypeConfig is the base row for one enemy type before difficulty
// scaling.
type EnemyTypeConfig struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	Score         int     `yaml:"score"`
	ShootInterval float64 `yaml:"shootInterval"`
	Radius        float64 `yaml:"radius"`
	Elite         bool    `yaml:"elite"`
}

// EnemyConfig contains enemy behaviour constants shared by every type.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	MinShootInterval float64
	EliteSpeedFactor float64
	MuzzleOffset     float64 // bullets leave from y - MuzzleOffset
	BulletRadius     float64
	BulletSpeedRatio float64 // regular shot speed = BulletSpeed * ratio
	NeedleChance     float64
	DespawnMargin    float64 // below -Height/2 - margin the enemy is removed
	SpawnMargin      float64

	SineAmplitudeMin float64
	SineAmplitudeMax float64
	SineFrequencyMin float64
	SineFrequencyMax float64
	SineSpeedFactor  float64
	StraightJitter   float64 // straight speed is scaled by U(1-j, 1+j)

	CoinDropChance float64
}

// BossTypeConfig is the base row for one boss type.
type BossTypeConfig struct {
	Name   string  `yaml:"name"`
	Health int     `yaml:"health"`
	Score  int     `yaml:"score"`
	Radius float64 `yaml:"radius"`
}

// CooldownTier is the per-phase pause between volleys.
type CooldownTier struct {
	Phase1 float64 `yaml:"phase1"`
	Phase2 float64 `yaml:"phase2"`
	Phase3 float64 `yaml:"phase3"`
}

// For returns the cooldown for phase 1, 2 or 3.
func (c CooldownTier) For(phase int) float64 {
	switch phase {
	case 1:
		return c.Phase1
	case 2:
		return c.Phase2
	default:
		return c.Phase3
	}
}

// BossConfig contains boss behaviour constants.
type BossConfig struct {
	Types map[string]BossTypeConfig

	LevelStep       int // a boss appears every LevelStep player levels
	SpawnOffset     float64
	RestOffset      float64 // resting y = Height/2 - RestOffset
	EntranceSpeed   float64
	FirstAttack     float64
	SwayAmplitude   float64
	SwayRate        float64
	Phase2Threshold float64 // health ratio at or below which phase 2 starts
	Phase3Threshold float64

	BulletRadius   float64
	BulletLifetime float64
	BulletMargin   float64

	Cooldowns map[string]CooldownTier // keyed by tier name
	TierOf    map[string]string       // boss type name -> tier name
}

// WeaponTypeConfig holds per-weapon base values.
type WeaponTypeConfig struct {
	Name     string  `yaml:"name"`
	Code     string  `yaml:"code"`
	Cooldown float64 `yaml:"cooldown"`
}

// WeaponConfig contains the weapon tables and shared rules.
type WeaponConfig struct {
	Types map[string]WeaponTypeConfig

	MaxLevel        int
	MaxSlots        int
	CooldownPerLvl  float64
	OffscreenMargin float64

	ShotgunSpread   float64
	ShotgunRadius   float64
	ShotgunLifetime float64

	RocketSpacing    float64
	RocketRadius     float64
	RocketSpeedRatio float64
	RocketLifetime   float64
	RocketMinShard   int
	RocketMaxShard   int

	LaserSpacing  float64
	LaserLength   float64
	LaserSpeed    float64
	LaserLifetime float64
	LaserOffset   float64

	HomingSpacing    float64
	HomingRadius     float64
	HomingSpeedRatio float64
	HomingDamage     int
	HomingLifetime   float64

	LightningRangeCap float64
	LightningLifetime float64 // how long the drawn chain stays visible

	AuraRadius      float64
	AuraOrbRadius   float64
	AuraOrbitSpeed  float64
	AuraDamage      int
	AuraBaseOrbs    int
	BeamSpeedRatio  float64
	BeamWidthRatio  float64 // beam arc radius = Width * ratio
	BeamOffset      float64
	BeamLifetime    float64
	SparkLifetime   float64
	SparkCount      int
	ShardLifetime   float64
}

// SpawnConfig drives the spawn director.
type SpawnConfig struct {
	DifficultyPerLevel float64
	MinInterval        float64
	BossIntervalFactor float64
	BossSmallChance    float64

	EliteMinLevel   int
	EliteBaseChance float64
	EliteLevelStep  float64
	EliteMaxChance  float64

	HexBaseChance float64
	HexLevelStep  float64
	HexMaxChance  float64
	SmallChance   float64

	EdgeInset float64 // spawn x in [-Width/2+inset, Width/2-inset)

	SecondSpawnLevel  int
	SecondSpawnChance float64
	SecondSpawnOffset float64
	ThirdSpawnLevel   int
	ThirdSpawnChance  float64
	ThirdSpawnOffset  float64
}

// ProgressionConfig holds the experience curve and upgrade draw.
type ProgressionConfig struct {
	ExpBase        float64
	ExpExponent    float64
	UpgradeChoices int
	RestoreLives   int
	RestoreShield  int
}

// ExpForLevel is the experience needed to leave level.
func (p ProgressionConfig) ExpForLevel(level int) int {
	return int(math.Floor(p.ExpBase * math.Pow(float64(level), p.ExpExponent)))
}

// UpgradeConfig holds the permanent enhance tiers bought with coins.
type UpgradeConfig struct {
	BaseLives     int
	BaseMaxLives  int
	BaseMaxShield int
	ShieldPerTier int
	MaxShieldStep int

	StartMaxTier int
	CapMaxTier   int
	StartCosts   []int // cost of tier i+1 for hull and shield start bonuses
	CapCost      int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool
	DrawColliders bool
}

// Global configuration instances
var Game GameConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Weapon WeaponConfig
var Spawn SpawnConfig
var Progression ProgressionConfig
var Upgrade UpgradeConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every table to its built-in defaults.
func Reset() {
	Game = GameConfig{
		Width:              480,
		Height:             720,
		PlayerSpeed:        300,
		BulletSpeed:        500,
		EnemyBaseSpeed:     150,
		ScrollSpeed:        50,
		EnemySpawnInterval: 1.5,
		ShootCooldown:      0.15,
		TickRate:           60,
		PowerUpRadius:      12,
	}

	Player = PlayerConfig{
		Radius:        15,
		EdgeMargin:    30,
		SpawnYFactor:  1.0 / 3.0,
		InvulnSeconds: 2.0,
		MuzzleOffset:  25,
		BulletRadius:  4,
		BulletDamage:  1,
		CoinPickup:    10,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"diamond":      {Name: "Diamond", Health: 2, Score: 100, ShootInterval: 2.0, Radius: 12},
			"hexagon":      {Name: "Hexagon", Health: 5, Score: 300, ShootInterval: 1.5, Radius: 18},
			"small":        {Name: "Small", Health: 1, Score: 50, ShootInterval: 2.6, Radius: 10},
			"eliteScout":   {Name: "Elite Scout", Health: 10, Score: 900, ShootInterval: 2.8, Radius: 16, Elite: true},
			"eliteGunship": {Name: "Elite Gunship", Health: 14, Score: 1200, ShootInterval: 3.2, Radius: 20, Elite: true},
			"eliteGuard":   {Name: "Elite Guard", Health: 18, Score: 1500, ShootInterval: 3.6, Radius: 24, Elite: true},
		},
		MinShootInterval: 0.5,
		EliteSpeedFactor: 0.2,
		MuzzleOffset:     24,
		BulletRadius:     5,
		BulletSpeedRatio: 0.6,
		NeedleChance:     0.25,
		DespawnMargin:    100,
		SpawnMargin:      50,
		SineAmplitudeMin: 50,
		SineAmplitudeMax: 150,
		SineFrequencyMin: 1,
		SineFrequencyMax: 3,
		SineSpeedFactor:  0.8,
		StraightJitter:   0.2,
		CoinDropChance:   0.02,
	}

	Boss = BossConfig{
		Types: map[string]BossTypeConfig{
			"diamondKing":     {Name: "Diamond King", Health: 2000, Score: 2000, Radius: 48},
			"hexFortress":     {Name: "Hex Fortress", Health: 3000, Score: 3000, Radius: 54},
			"triangleFighter": {Name: "Triangle Fighter", Health: 1600, Score: 1500, Radius: 42},
			"starMothership":  {Name: "Star Mothership", Health: 2400, Score: 2500, Radius: 48},
			"circleGuardian":  {Name: "Circle Guardian", Health: 3600, Score: 3500, Radius: 60},
			"crossLaser":      {Name: "Cross Laser", Health: 2000, Score: 2000, Radius: 48},
			"spiralShooter":   {Name: "Spiral Shooter", Health: 1800, Score: 1800, Radius: 54},
			"splitCore":       {Name: "Split Core", Health: 1400, Score: 1500, Radius: 48},
			"trackerPrime":    {Name: "Tracker Prime", Health: 2200, Score: 2200, Radius: 42},
			"chaosEye":        {Name: "Chaos Eye", Health: 2600, Score: 2800, Radius: 60},
		},
		LevelStep:       10,
		SpawnOffset:     100,
		RestOffset:      120,
		EntranceSpeed:   100,
		FirstAttack:     2.0,
		SwayAmplitude:   150,
		SwayRate:        0.5,
		Phase2Threshold: 0.6,
		Phase3Threshold: 0.3,
		BulletRadius:    8,
		BulletLifetime:  5,
		BulletMargin:    50,
		Cooldowns: map[string]CooldownTier{
			"barrage":  {Phase1: 1.6, Phase2: 1.2, Phase3: 0.9},
			"pressure": {Phase1: 1.4, Phase2: 1.05, Phase3: 0.8},
			"default":  {Phase1: 1.8, Phase2: 1.35, Phase3: 1.0},
		},
		TierOf: map[string]string{
			"hexFortress":    "barrage",
			"spiralShooter":  "barrage",
			"circleGuardian": "barrage",
			"trackerPrime":   "pressure",
			"splitCore":      "pressure",
			"crossLaser":     "pressure",
		},
	}

	Weapon = WeaponConfig{
		Types: map[string]WeaponTypeConfig{
			"shotgun":   {Name: "Shotgun", Code: "S", Cooldown: 0.15},
			"rocket":    {Name: "Rocket", Code: "R", Cooldown: 0.6},
			"laser":     {Name: "Laser", Code: "L", Cooldown: 0.25},
			"homing":    {Name: "Homing", Code: "H", Cooldown: 0.15},
			"lightning": {Name: "Lightning", Code: "B", Cooldown: 0.5},
			"aura":      {Name: "Aura", Code: "A", Cooldown: 0},
			"beam":      {Name: "Beam", Code: "C", Cooldown: 2.0},
		},
		MaxLevel:          5,
		MaxSlots:          5,
		CooldownPerLvl:    0.1,
		OffscreenMargin:   50,
		ShotgunSpread:     math.Pi / 18,
		ShotgunRadius:     6,
		ShotgunLifetime:   1.6,
		RocketSpacing:     15,
		RocketRadius:      5,
		RocketSpeedRatio:  0.6,
		RocketLifetime:    5,
		RocketMinShard:    10,
		RocketMaxShard:    28,
		LaserSpacing:      25,
		LaserLength:       150,
		LaserSpeed:        600,
		LaserLifetime:     2,
		LaserOffset:       40,
		HomingSpacing:     12,
		HomingRadius:      4,
		HomingSpeedRatio:  0.7,
		HomingDamage:      2,
		HomingLifetime:    4,
		LightningRangeCap: 600,
		LightningLifetime: 0.2,
		AuraRadius:        40,
		AuraOrbRadius:     8,
		AuraOrbitSpeed:    2.0,
		AuraDamage:        1,
		AuraBaseOrbs:      2,
		BeamSpeedRatio:    0.9,
		BeamWidthRatio:    0.25,
		BeamOffset:        40,
		BeamLifetime:      2,
		SparkLifetime:     0.15,
		SparkCount:        5,
		ShardLifetime:     0.45,
	}

	Spawn = SpawnConfig{
		DifficultyPerLevel: 0.3,
		MinInterval:        0.3,
		BossIntervalFactor: 2,
		BossSmallChance:    0.7,
		EliteMinLevel:      3,
		EliteBaseChance:    0.02,
		EliteLevelStep:     0.003,
		EliteMaxChance:     0.08,
		HexBaseChance:      0.2,
		HexLevelStep:       0.02,
		HexMaxChance:       0.5,
		SmallChance:        0.15,
		EdgeInset:          50,
		SecondSpawnLevel:   5,
		SecondSpawnChance:  0.3,
		SecondSpawnOffset:  50,
		ThirdSpawnLevel:    10,
		ThirdSpawnChance:   0.2,
		ThirdSpawnOffset:   100,
	}

	Progression = ProgressionConfig{
		ExpBase:        1300,
		ExpExponent:    1.5,
		UpgradeChoices: 3,
		RestoreLives:   1,
		RestoreShield:  2,
	}

	Upgrade = UpgradeConfig{
		BaseLives:     3,
		BaseMaxLives:  5,
		BaseMaxShield: 4,
		ShieldPerTier: 2,
		MaxShieldStep: 2,
		StartMaxTier:  2,
		CapMaxTier:    1,
		StartCosts:    []int{30, 100},
		CapCost:       50,
	}

	Debug = DebugConfig{}
}

// Difficulty returns the enemy scaling factor for a player level.
func Difficulty(level int) float64 {
	return 1 + float64(level-1)*Spawn.DifficultyPerLevel
}

// Delta is the fixed simulation step in seconds.
func Delta() float64 {
	return 1 / float64(Game.TickRate)
}
