package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestEncodePlainCharHasNoBrackets(t *testing.T) {
	if got := Encode(glfw.KeyA, 0, 'a'); got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
}

func TestEncodeCtrlCharWrapsAndPrefixes(t *testing.T) {
	if got := Encode(glfw.KeyA, glfw.ModControl, 'a'); got != "<C-a>" {
		t.Errorf("got %q, want %q", got, "<C-a>")
	}
}

func TestEncodeNamedKeyWithShift(t *testing.T) {
	if got := Encode(glfw.KeyEnter, glfw.ModShift, 0); got != "<S-Enter>" {
		t.Errorf("got %q, want %q", got, "<S-Enter>")
	}
}

func TestEncodePlainCharIgnoresShiftModifier(t *testing.T) {
	// The OS already produced the shifted character '?'; shift must not
	// be encoded a second time for literal characters.
	if got := Encode(glfw.KeySlash, glfw.ModShift, '?'); got != "?" {
		t.Errorf("got %q, want %q", got, "?")
	}
}

func TestEncodeEscapesLessThan(t *testing.T) {
	if got := Encode(glfw.KeyComma, 0, '<'); got != "<Lt>" {
		t.Errorf("got %q, want %q", got, "<Lt>")
	}
}

func TestEncodeEscapesBackslashAndBar(t *testing.T) {
	if got := Encode(glfw.KeyBackslash, 0, '\\'); got != "<Bslash>" {
		t.Errorf("got %q", got)
	}
	if got := Encode(glfw.KeyBackslash, 0, '|'); got != "<Bar>" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeMultipleModifiersOrdering(t *testing.T) {
	if got := Encode(glfw.KeyUp, glfw.ModControl|glfw.ModShift|glfw.ModAlt|glfw.ModSuper, 0); got != "<CSAD-Up>" {
		t.Errorf("got %q, want %q", got, "<CSAD-Up>")
	}
}

func TestEncodeFunctionKey(t *testing.T) {
	if got := Encode(glfw.KeyF5, 0, 0); got != "<F5>" {
		t.Errorf("got %q, want %q", got, "<F5>")
	}
}
