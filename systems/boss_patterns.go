package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/geometry"
	"github.com/automoto/geoshooter/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// bossShot is one bullet of a volley, relative to the boss.
type bossShot struct {
	Offset   geometry.Vec2
	Velocity geometry.Vec2
	Damage   int
}

// volleyFunc builds the volley for a boss. It may advance the boss's
// rotating pattern index.
type volleyFunc func(boss *components.BossData, rng *rand.Rand) []bossShot

var bossVolleys = map[components.BossType]volleyFunc{
	components.BossDiamondKing:     diamondKingVolley,
	components.BossHexFortress:     hexFortressVolley,
	components.BossTriangleFighter: triangleFighterVolley,
	components.BossStarMothership:  starMothershipVolley,
	components.BossCircleGuardian:  circleGuardianVolley,
	components.BossCrossLaser:      crossLaserVolley,
	components.BossSpiralShooter:   spiralShooterVolley,
	components.BossSplitCore:       splitCoreVolley,
	components.BossTrackerPrime:    trackerPrimeVolley,
	components.BossChaosEye:        chaosEyeVolley,
}

// fireBossVolley spawns the volley of boss at pos.
func fireBossVolley(ecs *ecs.ECS, boss *components.BossData, pos geometry.Vec2, rng *rand.Rand) {
	volley, ok := bossVolleys[boss.Type]
	if !ok {
		return
	}
	for _, s := range volley(boss, rng) {
		factory.CreateBossBullet(ecs, pos.Add(s.Offset), s.Velocity, s.Damage)
	}
}

func aimed(angle, speed float64) bossShot {
	return bossShot{Velocity: geometry.FromAngle(angle, speed), Damage: 1}
}

// ring returns n shots evenly spaced around the boss starting at base.
func ring(n int, base, speed float64) []bossShot {
	shots := make([]bossShot, 0, n)
	for i := 0; i < n; i++ {
		shots = append(shots, aimed(base+float64(i)/float64(n)*2*math.Pi, speed))
	}
	return shots
}

func uniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Downward fan of 5 + 2*phase bullets across 120 degrees.
func diamondKingVolley(boss *components.BossData, _ *rand.Rand) []bossShot {
	n := 5 + boss.Phase*2
	spread := math.Pi / 3
	shots := make([]bossShot, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		shots = append(shots, aimed(-math.Pi/2+spread*(t-0.5)*2, 200))
	}
	return shots
}

// Six-way star rotating 30 degrees per volley.
func hexFortressVolley(boss *components.BossData, _ *rand.Rand) []bossShot {
	shots := ring(6, float64(boss.AttackPattern)*math.Pi/6, 180)
	boss.AttackPattern = (boss.AttackPattern + 1) % 12
	return shots
}

// Three fast heavy shots straight down.
func triangleFighterVolley(_ *components.BossData, _ *rand.Rand) []bossShot {
	shots := make([]bossShot, 0, 3)
	for i := 0; i < 3; i++ {
		shots = append(shots, bossShot{
			Offset:   geometry.V(float64(i-1)*30, -40),
			Velocity: geometry.V(0, -300),
			Damage:   2,
		})
	}
	return shots
}

func starMothershipVolley(_ *components.BossData, _ *rand.Rand) []bossShot {
	return ring(5, -math.Pi/2, 150)
}

// Ring of 8 + 4*phase.
func circleGuardianVolley(boss *components.BossData, _ *rand.Rand) []bossShot {
	return ring(8+boss.Phase*4, 0, 120)
}

// Three-bullet beams along each axis.
func crossLaserVolley(_ *components.BossData, _ *rand.Rand) []bossShot {
	dirs := []geometry.Vec2{geometry.V(0, -1), geometry.V(0, 1), geometry.V(-1, 0), geometry.V(1, 0)}
	shots := make([]bossShot, 0, 12)
	for _, d := range dirs {
		for j := 0; j < 3; j++ {
			shots = append(shots, bossShot{
				Offset:   d.Scale(float64(j) * 20),
				Velocity: d.Scale(250),
				Damage:   1,
			})
		}
	}
	return shots
}

// Four-arm spiral rotating 22.5 degrees per volley.
func spiralShooterVolley(boss *components.BossData, _ *rand.Rand) []bossShot {
	shots := ring(4, float64(boss.AttackPattern)*math.Pi/8, 160)
	boss.AttackPattern = (boss.AttackPattern + 1) % 16
	return shots
}

func splitCoreVolley(_ *components.BossData, _ *rand.Rand) []bossShot {
	return ring(4, 0, 140)
}

// 3 + phase bullets scattered downward at random speeds.
func trackerPrimeVolley(boss *components.BossData, rng *rand.Rand) []bossShot {
	n := 3 + boss.Phase
	shots := make([]bossShot, 0, n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + uniformRange(rng, -math.Pi/4, math.Pi/4)
		shots = append(shots, aimed(angle, uniformRange(rng, 150, 250)))
	}
	return shots
}

// One of four patterns at random.
func chaosEyeVolley(_ *components.BossData, rng *rand.Rand) []bossShot {
	switch rng.Intn(4) {
	case 0:
		return ring(12, 0, 130)
	case 1:
		shots := make([]bossShot, 0, 5)
		for i := 0; i < 5; i++ {
			shots = append(shots, bossShot{
				Offset:   geometry.V(float64(i-2)*40, 0),
				Velocity: geometry.V(0, -200),
				Damage:   1,
			})
		}
		return shots
	case 2:
		return ring(4, math.Pi/4, 180)
	default:
		shots := make([]bossShot, 0, 8)
		for i := 0; i < 8; i++ {
			shots = append(shots, aimed(uniformRange(rng, 0, 2*math.Pi), uniformRange(rng, 100, 200)))
		}
		return shots
	}
}
