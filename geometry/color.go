package geometry

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// RGBA builds a color from normalized channels in [0, 1].
func RGBA(r, g, b, a float64) color.RGBA {
	return color.RGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: channel(a),
	}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = channel(a)
	return c
}

func channel(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

// Palette used by blueprints and the debug renderer.
var (
	ColorPlayer      = colornames.Deepskyblue
	ColorPlayerShot  = colornames.Lightcyan
	ColorEnemy       = colornames.Orangered
	ColorElite       = colornames.Gold
	ColorEnemyShot   = colornames.Hotpink
	ColorBoss        = colornames.Crimson
	ColorBossShot    = WithAlpha(colornames.Tomato, 0.9)
	ColorPowerUp     = colornames.Yellow
	ColorLaser       = WithAlpha(colornames.Springgreen, 0.5)
	ColorAura        = WithAlpha(colornames.Khaki, 0.6)
	ColorBeam        = WithAlpha(colornames.Lightskyblue, 0.4)
	ColorLightning   = colornames.Lightsteelblue
	ColorSpark       = colornames.White
	ColorRocketShard = colornames.Orange
)
