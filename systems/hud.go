package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/geoshooter/components"
	"github.com/automoto/geoshooter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudBarWidth   = 130
	hudBarHeight  = 6
)

// Snapshot is the read-only view the HUD draws each frame.
type Snapshot struct {
	Score     int
	HighScore int
	Coins     int
	Lives     int
	MaxLives  int
	Shield    int
	MaxShield int
	Level     int

	ExpProgress float64 // [0, 1]
	Weapons     string

	BossActive bool
	BossName   string
	BossHealth string // "cur/total (x.x%)"
	BossRatio  float64
}

// HUDSnapshot reads the current run into a Snapshot.
func HUDSnapshot(ecs *ecs.ECS) Snapshot {
	game := GetOrCreateGame(ecs)
	s := Snapshot{
		Score:       game.Score,
		HighScore:   game.HighScore,
		Coins:       game.Coins,
		Lives:       game.Lives,
		MaxLives:    game.MaxLives,
		Shield:      game.Shield,
		MaxShield:   game.MaxShield,
		Level:       game.PlayerLevel,
		ExpProgress: game.ExpProgress(),
	}
	if ship, ok := playerEntry(ecs); ok {
		s.Weapons = components.WeaponInventory.Get(ship).Summary()
	}

	boss := GetOrCreateBossState(ecs)
	if boss.Active {
		pct := boss.HealthPercent()
		s.BossActive = true
		s.BossName = boss.BossName
		s.BossHealth = fmt.Sprintf("%d/%d (%.1f%%)", max(boss.CurrentHealth, 0), boss.TotalHealth, pct)
		s.BossRatio = pct / 100
	}
	return s
}

// DrawHUD prints the snapshot in the top-left corner with an experience bar
// and, during a fight, the boss bar across the top.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := HUDSnapshot(ecs)
	face := fonts.Mono.Get()

	lines := []string{
		fmt.Sprintf("SCORE %d  HI %d", s.Score, s.HighScore),
		fmt.Sprintf("LIVES %d/%d  SHIELD %d/%d", s.Lives, s.MaxLives, s.Shield, s.MaxShield),
		fmt.Sprintf("LV %d  COINS %d", s.Level, s.Coins),
		s.Weapons,
	}
	y := float64(hudMargin)
	for _, line := range lines {
		drawText(screen, face, line, hudMargin, y, colornames.White)
		y += hudLineHeight
	}
	drawBar(screen, hudMargin, float32(y), hudBarWidth, s.ExpProgress, colornames.Deepskyblue)

	if !s.BossActive {
		return
	}
	width := float64(screen.Bounds().Dx())
	label := fmt.Sprintf("%s %s", s.BossName, s.BossHealth)
	w, _ := text.Measure(label, face, 0)
	drawText(screen, face, label, (width-w)/2, hudMargin, colornames.Orangered)
	drawBar(screen, hudMargin*4, hudMargin+hudLineHeight, float32(width)-hudMargin*8, s.BossRatio, colornames.Red)
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawBar(screen *ebiten.Image, x, y, width float32, ratio float64, c color.Color) {
	vector.FillRect(screen, x, y, width, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, x, y, width*float32(ratio), hudBarHeight, c, false)
}
