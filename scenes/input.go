package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollActions reads keyboard, mouse and gamepad state for every bound action.
// Only the pressed state is recorded; edges are derived by the player system.
func pollActions() [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStick(gamepadIDs)
	current[cfg.ActionMoveLeft] = current[cfg.ActionMoveLeft] || left
	current[cfg.ActionMoveRight] = current[cfg.ActionMoveRight] || right
	current[cfg.ActionMoveUp] = current[cfg.ActionMoveUp] || up
	current[cfg.ActionMoveDown] = current[cfg.ActionMoveDown] || down
	return current
}

// analogStick reads the left analog stick from all gamepads.
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// applyInput writes this frame's actions and the cursor aim into the
// player's input component. Screen and world coordinates coincide.
func applyInput(input *components.PlayerInputData, actions [cfg.ActionCount]bool) {
	input.CurrentInput = actions
	x, y := ebiten.CursorPosition()
	input.AimX, input.AimY = float64(x), float64(y)
	input.HasAim = true
}
