// Package input translates window-system events (keyboard, mouse) into
// the RPC calls the editor expects, and drives the event loop
// tying the redraw notification stream to the render pipeline.
package input

import (
	"strconv"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// namedKeys maps glfw key codes to the named-key spelling nvim_input
// expects for keys that have no literal character form.
var namedKeys = map[glfw.Key]string{
	glfw.KeyEnter:      "Enter",
	glfw.KeyKPEnter:    "Enter",
	glfw.KeyTab:        "Tab",
	glfw.KeySpace:      "Space",
	glfw.KeyUp:         "Up",
	glfw.KeyDown:       "Down",
	glfw.KeyLeft:       "Left",
	glfw.KeyRight:      "Right",
	glfw.KeyPageUp:     "PageUp",
	glfw.KeyPageDown:   "PageDown",
	glfw.KeyHome:       "Home",
	glfw.KeyEnd:        "End",
	glfw.KeyBackspace:  "BS",
	glfw.KeyDelete:     "Del",
	glfw.KeyEscape:     "Esc",
}

func init() {
	for i := 0; i < 25; i++ { // F1..F25, glfw has no more than that
		namedKeys[glfw.KeyF1+glfw.Key(i)] = "F" + strconv.Itoa(i+1)
	}
}

// escapes maps characters that need escaping inside a <...> sequence
// (and the literal '<' itself, which would otherwise open a nested
// sequence).
var escapes = map[rune]string{
	'<':  "Lt",
	'\\': "Bslash",
	'|':  "Bar",
}

// Encode builds the <CSAD-KEY> sequence nvim_input expects for a single
// keypress. shift is only encoded for named keys: for a literal
// character the OS-level shift state already produced the shifted
// character (e.g. '?' instead of '/'), so encoding it again would
// double-apply it.
func Encode(key glfw.Key, mods glfw.ModifierKey, char rune) string {
	named, isNamed := namedKeys[key]

	var keyStr string
	switch {
	case isNamed:
		keyStr = named
	case char != 0:
		if esc, ok := escapes[char]; ok {
			keyStr = esc
		} else {
			keyStr = string(char)
		}
	default:
		return ""
	}

	var mod strings.Builder
	if mods&glfw.ModControl != 0 {
		mod.WriteByte('C')
	}
	if isNamed && mods&glfw.ModShift != 0 {
		mod.WriteByte('S')
	}
	if mods&glfw.ModAlt != 0 {
		mod.WriteByte('A')
	}
	if mods&glfw.ModSuper != 0 {
		mod.WriteByte('D')
	}

	if mod.Len() == 0 && len(keyStr) == 1 {
		return keyStr
	}
	return "<" + mod.String() + keyStr + ">"
}
