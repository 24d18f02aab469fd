package scenes

import (
	"math"

	"github.com/automoto/geoshooter/components"
	cfg "github.com/automoto/geoshooter/config"
	"github.com/automoto/geoshooter/geometry"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// controls keeps this frame's and last frame's pressed state per action.
type controls struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	stick    geometry.Vec2
}

// poll reads keyboard and gamepads. Call once per frame.
func (c *controls) poll() {
	c.previous = c.current
	c.current = [cfg.ActionCount]bool{}
	c.stick = geometry.Zero

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.current[actionID] = true
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) > deadzone || math.Abs(v) > deadzone {
			// Screen Y grows downward, world Y grows upward.
			c.stick = geometry.V(h, -v)
		}
	}
}

func (c *controls) pressed(id cfg.ActionID) bool {
	return c.current[id]
}

func (c *controls) justPressed(id cfg.ActionID) bool {
	return c.current[id] && !c.previous[id]
}

// shipInput converts the polled state into the player's control record.
func (c *controls) shipInput() components.InputData {
	move := c.stick
	if move == geometry.Zero {
		if c.pressed(cfg.ActionMoveLeft) {
			move.X--
		}
		if c.pressed(cfg.ActionMoveRight) {
			move.X++
		}
		if c.pressed(cfg.ActionMoveUp) {
			move.Y++
		}
		if c.pressed(cfg.ActionMoveDown) {
			move.Y--
		}
	}
	move = geometry.V(geometry.Clamp(move.X, -1, 1), geometry.Clamp(move.Y, -1, 1))
	return components.InputData{Move: move, Fire: c.pressed(cfg.ActionFire)}
}
