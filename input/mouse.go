package input

import "github.com/go-gl/glfw/v3.3/glfw"

// MouseButton is one of nvim_input_mouse's button names.
type MouseButton string

const (
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
	ButtonWheel  MouseButton = "wheel"
)

// MouseAction is one of nvim_input_mouse's action names.
type MouseAction string

const (
	ActionPress   MouseAction = "press"
	ActionDrag    MouseAction = "drag"
	ActionRelease MouseAction = "release"
	ActionUp      MouseAction = "up"
	ActionDown    MouseAction = "down"
	ActionLeft    MouseAction = "left"
	ActionRight   MouseAction = "right"
)

// ButtonFromGLFW maps a glfw mouse button to nvim_input_mouse's button
// name, returning ok=false for buttons beyond left/right/middle (those
// never reach the editor).
func ButtonFromGLFW(b glfw.MouseButton) (MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return ButtonLeft, true
	case glfw.MouseButtonRight:
		return ButtonRight, true
	case glfw.MouseButtonMiddle:
		return ButtonMiddle, true
	default:
		return "", false
	}
}

// WheelAction maps a scroll delta to the wheel button's directional
// action name; dy/dx follow glfw's scroll-callback sign convention
// (positive dy is scroll up, positive dx is scroll right).
func WheelAction(dx, dy float64) (MouseAction, bool) {
	switch {
	case dy > 0:
		return ActionUp, true
	case dy < 0:
		return ActionDown, true
	case dx > 0:
		return ActionRight, true
	case dx < 0:
		return ActionLeft, true
	default:
		return "", false
	}
}

// ModMask packs ctrl/shift/alt into nvim_input_mouse's mods string
// ("" if none set).
func ModMask(mods glfw.ModifierKey) string {
	s := ""
	if mods&glfw.ModShift != 0 {
		s += "S"
	}
	if mods&glfw.ModControl != 0 {
		s += "C"
	}
	if mods&glfw.ModAlt != 0 {
		s += "A"
	}
	return s
}

// CellPosition converts a pixel coordinate to a (row, col) cell
// coordinate relative to a grid's own origin, per nvim_input_mouse's
// row/col parameters.
func CellPosition(pixelX, pixelY, cellWidth, cellHeight float64) (row, col int) {
	return int(pixelY / cellHeight), int(pixelX / cellWidth)
}
