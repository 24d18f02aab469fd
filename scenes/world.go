package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/fonts"
	"github.com/automoto/geoshooter/game"
	"github.com/automoto/geoshooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	overlayColor = color.RGBA{0, 0, 0, 170}

	// shopKeys buy enhance tiers from the menu, in EnhanceID order.
	shopKeys = []ebiten.Key{ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8}
	shopIDs  = []systems.EnhanceID{systems.EnhanceHull, systems.EnhanceShield, systems.EnhanceMaxLives, systems.EnhanceMaxShield}
)

// WorldScene hosts a Session in the ebiten window.
type WorldScene struct {
	session *game.Session
	input   controls
	notice  string
}

func NewWorldScene(save *systems.SaveData, seed int64) *WorldScene {
	return &WorldScene{session: game.NewSession(save, seed)}
}

func (ws *WorldScene) Update() {
	ws.input.poll()
	if ws.input.justPressed(cfg.ActionDebug) {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
	}

	s := ws.session
	var err error
	switch s.State() {
	case cfg.StateMenu:
		ws.updateShop()
		if ws.input.justPressed(cfg.ActionConfirm) {
			err = s.StartRun()
		}
	case cfg.StatePlaying:
		if ws.input.justPressed(cfg.ActionPause) {
			err = s.Pause()
			break
		}
		s.SetInput(ws.input.shipInput())
		s.Tick()
	case cfg.StatePaused:
		switch {
		case ws.input.justPressed(cfg.ActionPause), ws.input.justPressed(cfg.ActionConfirm):
			err = s.Resume()
		case ws.input.justPressed(cfg.ActionBack):
			err = s.QuitToMenu()
		}
	case cfg.StateUpgrading:
		for i, id := range cfg.OptionActions {
			if ws.input.justPressed(id) {
				err = s.ChooseUpgrade(i)
				break
			}
		}
	case cfg.StateGameOver:
		switch {
		case ws.input.justPressed(cfg.ActionConfirm):
			err = s.StartRun()
		case ws.input.justPressed(cfg.ActionBack):
			err = s.QuitToMenu()
		}
	}
	if err != nil {
		log.Printf("Input ignored: %v", err)
	}
}

func (ws *WorldScene) updateShop() {
	for i, key := range shopKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		save := ws.session.Save()
		err := save.PurchaseUpgrade(shopIDs[i])
		switch {
		case err == nil:
			ws.notice = fmt.Sprintf("%s upgraded", shopIDs[i])
			if err := systems.StoreSaveData(save); err != nil {
				log.Printf("Warning: %v", err)
			}
		case errors.Is(err, systems.ErrUpgradeMaxed):
			ws.notice = fmt.Sprintf("%s is maxed", shopIDs[i])
		case errors.Is(err, systems.ErrNotEnoughCoins):
			ws.notice = "not enough coins"
		default:
			ws.notice = err.Error()
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.session.Draw(screen)

	switch ws.session.State() {
	case cfg.StateMenu:
		ws.drawMenu(screen)
	case cfg.StatePaused:
		drawPanel(screen, "PAUSED", []string{"P resume", "Q quit to menu"})
	case cfg.StateUpgrading:
		var lines []string
		for i, opt := range ws.session.UpgradeOptions() {
			lines = append(lines, fmt.Sprintf("%d  %s", i+1, optionLabel(opt)))
		}
		drawPanel(screen, "LEVEL UP", lines)
	case cfg.StateGameOver:
		snap := ws.session.Snapshot()
		drawPanel(screen, "GAME OVER", []string{
			fmt.Sprintf("score %d  best %d", snap.Score, snap.HighScore),
			fmt.Sprintf("coins +%d", snap.Coins),
			"ENTER retry   Q menu",
		})
	}
}

func (ws *WorldScene) drawMenu(screen *ebiten.Image) {
	save := ws.session.Save()
	lines := []string{
		fmt.Sprintf("best %d  coins %d", save.HighScore, save.TotalCoins),
		"ENTER start",
		"",
	}
	for i, id := range shopIDs {
		label := "max"
		if cost, err := save.UpgradeCost(id); err == nil {
			label = fmt.Sprintf("%d coins", cost)
		}
		lines = append(lines, fmt.Sprintf("F%d  %s (%s)", i+5, id, label))
	}
	if ws.notice != "" {
		lines = append(lines, "", ws.notice)
	}
	drawPanel(screen, "GEOSHOOTER", lines)
}

func optionLabel(opt components.UpgradeOption) string {
	switch opt.Kind {
	case components.UpgradeNewWeapon:
		return "new " + cfg.Weapon.Types[opt.Weapon.Key()].Name
	case components.UpgradeWeaponLevel:
		return "upgrade " + cfg.Weapon.Types[opt.Weapon.Key()].Name
	case components.UpgradeRestoreLives:
		return fmt.Sprintf("restore %d life", cfg.Progression.RestoreLives)
	case components.UpgradeRestoreShield:
		return fmt.Sprintf("restore %d shield", cfg.Progression.RestoreShield)
	}
	return "?"
}

func drawPanel(screen *ebiten.Image, title string, lines []string) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)

	titleFace := fonts.Title.Get()
	tw, _ := text.Measure(title, titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((w-tw)/2, h/4)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, title, titleFace, op)

	face := fonts.Regular.Get()
	y := h/4 + 60
	for _, line := range lines {
		lw, _ := text.Measure(line, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate((w-lw)/2, y)
		op.ColorScale.ScaleWithColor(colornames.Lightgray)
		text.Draw(screen, line, face, op)
		y += 20
	}
}
