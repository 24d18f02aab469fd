package components

import (
	"math"

	"github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/yohamta/donburi"
)

type EnemyType int

const (
	EnemyDiamond EnemyType = iota
	EnemyHexagon
	EnemySmall
	EnemyEliteScout
	EnemyEliteGunship
	EnemyEliteGuard
)

var EliteTypes = []EnemyType{EnemyEliteScout, EnemyEliteGunship, EnemyEliteGuard}

// Key is the enemy's row in config.Enemy.Types.
func (t EnemyType) Key() string {
	switch t {
	case EnemyDiamond:
		return "diamond"
	case EnemyHexagon:
		return "hexagon"
	case EnemySmall:
		return "small"
	case EnemyEliteScout:
		return "eliteScout"
	case EnemyEliteGunship:
		return "eliteGunship"
	case EnemyEliteGuard:
		return "eliteGuard"
	}
	return ""
}

func (t EnemyType) Config() config.EnemyTypeConfig {
	return config.Enemy.Types[t.Key()]
}

func (t EnemyType) IsElite() bool {
	return t.Config().Elite
}

type EnemyData struct {
	Type          EnemyType
	Health        int
	MaxHealth     int
	Score         int
	ShootTimer    float64
	ShootInterval float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

type MovementKind int

const (
	MoveStraight MovementKind = iota
	MoveSine
)

// MovementData scripts how an enemy drifts down the screen.
type MovementData struct {
	Kind      MovementKind
	Speed     float64
	Amplitude float64
	Frequency float64
	Time      float64
}

// Step returns the pattern's displacement for dt seconds and advances its
// internal time. World scroll is applied separately.
func (m *MovementData) Step(dt float64) geometry.Vec2 {
	if m.Kind == MoveSine {
		m.Time += dt
		return geometry.Vec2{
			X: math.Cos(m.Time*m.Frequency) * m.Amplitude * dt,
			Y: -m.Speed * dt,
		}
	}
	return geometry.Vec2{Y: -m.Speed * dt}
}

var Movement = donburi.NewComponentType[MovementData]()
