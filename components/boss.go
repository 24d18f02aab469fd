package components

import (
	"github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BossType int

const (
	BossDiamondKing BossType = iota
	BossHexFortress
	BossTriangleFighter
	BossStarMothership
	BossCircleGuardian
	BossCrossLaser
	BossSpiralShooter
	BossSplitCore
	BossTrackerPrime
	BossChaosEye
)

var AllBossTypes = []BossType{
	BossDiamondKing,
	BossHexFortress,
	BossTriangleFighter,
	BossStarMothership,
	BossCircleGuardian,
	BossCrossLaser,
	BossSpiralShooter,
	BossSplitCore,
	BossTrackerPrime,
	BossChaosEye,
}

// Key is the boss's row in config.Boss.Types.
func (t BossType) Key() string {
	switch t {
	case BossDiamondKing:
		return "diamondKing"
	case BossHexFortress:
		return "hexFortress"
	case BossTriangleFighter:
		return "triangleFighter"
	case BossStarMothership:
		return "starMothership"
	case BossCircleGuardian:
		return "circleGuardian"
	case BossCrossLaser:
		return "crossLaser"
	case BossSpiralShooter:
		return "spiralShooter"
	case BossSplitCore:
		return "splitCore"
	case BossTrackerPrime:
		return "trackerPrime"
	case BossChaosEye:
		return "chaosEye"
	}
	return ""
}

func (t BossType) Config() config.BossTypeConfig {
	return config.Boss.Types[t.Key()]
}

func (t BossType) Name() string {
	return t.Config().Name
}

// Cooldown is the pause between volleys for the given phase.
func (t BossType) Cooldown(phase int) float64 {
	tier, ok := config.Boss.TierOf[t.Key()]
	if !ok {
		tier = "default"
	}
	return config.Boss.Cooldowns[tier].For(phase)
}

type BossData struct {
	Type          BossType
	Health        int
	MaxHealth     int
	Phase         int
	AttackTimer   float64
	AttackPattern int // rotates between volleys for spiral-style bosses
	MoveTimer     float64
	Score         int
	Entered       bool
	Entrance      *gween.Tween // descent slide; nil once entered
}

// CurrentPhase derives the phase from the health ratio alone.
func (b *BossData) CurrentPhase() int {
	return PhaseFor(b.Health, b.MaxHealth)
}

// PhaseFor maps a health ratio to phase 1 (> 0.6), 2 (> 0.3) or 3.
func PhaseFor(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 3
	}
	ratio := float64(health) / float64(maxHealth)
	switch {
	case ratio > config.Boss.Phase2Threshold:
		return 1
	case ratio > config.Boss.Phase3Threshold:
		return 2
	default:
		return 3
	}
}

var Boss = donburi.NewComponentType[BossData]()

// BossBulletData is a boss projectile. Boss bullets age out on their own.
type BossBulletData struct {
	Velocity geometry.Vec2
	Damage   int
	Lifetime float64
}

var BossBullet = donburi.NewComponentType[BossBulletData]()

// BossStateData is the singleton session view of the boss fight.
type BossStateData struct {
	Active        bool
	LastBossLevel int
	TotalHealth   int
	CurrentHealth int
	BossName      string
}

// HealthPercent is in [0, 100].
func (s *BossStateData) HealthPercent() float64 {
	if s.TotalHealth <= 0 {
		return 0
	}
	pct := float64(s.CurrentHealth) / float64(s.TotalHealth) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func (s *BossStateData) Clear() {
	s.Active = false
	s.CurrentHealth = 0
}

var BossState = donburi.NewComponentType[BossStateData]()
