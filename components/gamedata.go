package components

import (
	"github.com/automoto/geoshooter/config"
	"github.com/yohamta/donburi"
)

type UpgradeKind int

const (
	UpgradeNewWeapon UpgradeKind = iota
	UpgradeWeaponLevel
	UpgradeRestoreLives
	UpgradeRestoreShield
)

// UpgradeOption is one card offered on level-up.
type UpgradeOption struct {
	Kind   UpgradeKind
	Weapon WeaponType
}

// GameData is the singleton progression state of the current run.
type GameData struct {
	Score     int
	HighScore int
	Coins     int
	Lives     int
	MaxLives  int
	Shield    int
	MaxShield int

	PlayerLevel int
	Experience  int
	PlayTime    float64

	// Upgrading gates the simulation while the player picks a card.
	Upgrading       bool
	PendingUpgrades int
	Options         []UpgradeOption

	GameOver bool
}

var Game = donburi.NewComponentType[GameData]()

// StartRun resets the run. Lives and shield come from the caller so
// permanent upgrades can be applied first.
func (g *GameData) StartRun(lives, maxLives, shield, maxShield int) {
	highScore := g.HighScore
	coins := g.Coins
	*g = GameData{
		HighScore:   highScore,
		Coins:       coins,
		Lives:       lives,
		MaxLives:    maxLives,
		Shield:      shield,
		MaxShield:   maxShield,
		PlayerLevel: 1,
	}
}

// AddScore awards points and the same amount of experience.
func (g *GameData) AddScore(points int) {
	g.AddScoreOnly(points)
	g.AddExperience(points)
}

// AddScoreOnly awards points without experience.
func (g *GameData) AddScoreOnly(points int) {
	g.Score += points
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}

// AddExperience adds exp and queues one pending upgrade per level gained.
func (g *GameData) AddExperience(exp int) {
	g.Experience += exp
	for {
		need := g.ExpToNext()
		if need <= 0 || g.Experience < need {
			break
		}
		g.Experience -= need
		g.PlayerLevel++
		g.PendingUpgrades++
		g.Upgrading = true
	}
}

func (g *GameData) ExpToNext() int {
	return config.Progression.ExpForLevel(g.PlayerLevel)
}

// ExpProgress is in [0, 1].
func (g *GameData) ExpProgress() float64 {
	need := g.ExpToNext()
	if need <= 0 {
		return 0
	}
	p := float64(g.Experience) / float64(need)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// TakeHit spends a shield point if any, else a life. It reports whether the
// run is over.
func (g *GameData) TakeHit() bool {
	if g.Shield > 0 {
		g.Shield--
		return false
	}
	if g.Lives > 0 {
		g.Lives--
	}
	if g.Lives == 0 {
		g.GameOver = true
	}
	return g.GameOver
}

func (g *GameData) RestoreLives(n int) {
	g.Lives = min(g.Lives+n, g.MaxLives)
}

func (g *GameData) RestoreShield(n int) {
	g.Shield = min(g.Shield+n, g.MaxShield)
}
