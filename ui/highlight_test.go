package ui

import "testing"

func TestResolveNoReverseFallsBackToDefaults(t *testing.T) {
	tbl := NewHighlightTable()
	tbl.Define(1, Highlight{})
	got := tbl.Resolve(1)
	if got.Fg != tbl.DefaultFg || got.Bg != tbl.DefaultBg {
		t.Fatalf("got %+v, want defaults", got)
	}
}

// Reverse with only a foreground set: the foreground color fills the
// background role, and the (absent) background falls back to the
// default background in the foreground role -- matching the renderer's
// reverse handling, not a plain fg/bg swap of defaults too.
func TestResolveReverseExplicitForegroundOnly(t *testing.T) {
	tbl := NewHighlightTable()
	want := RGB{10, 20, 30}
	tbl.Define(1, Highlight{Foreground: &want, Reverse: true})

	got := tbl.Resolve(1)
	if got.Bg != want {
		t.Errorf("Bg = %+v, want %+v (explicit foreground)", got.Bg, want)
	}
	if got.Fg != tbl.DefaultBg {
		t.Errorf("Fg = %+v, want default background %+v", got.Fg, tbl.DefaultBg)
	}
}

func TestResolveReverseExplicitBackgroundOnly(t *testing.T) {
	tbl := NewHighlightTable()
	want := RGB{40, 50, 60}
	tbl.Define(1, Highlight{Background: &want, Reverse: true})

	got := tbl.Resolve(1)
	if got.Fg != want {
		t.Errorf("Fg = %+v, want %+v (explicit background)", got.Fg, want)
	}
	if got.Bg != tbl.DefaultFg {
		t.Errorf("Bg = %+v, want default foreground %+v", got.Bg, tbl.DefaultFg)
	}
}

func TestResolveReverseBothExplicit(t *testing.T) {
	tbl := NewHighlightTable()
	fg := RGB{1, 2, 3}
	bg := RGB{4, 5, 6}
	tbl.Define(1, Highlight{Foreground: &fg, Background: &bg, Reverse: true})

	got := tbl.Resolve(1)
	if got.Bg != fg || got.Fg != bg {
		t.Errorf("got %+v, want Fg=%+v Bg=%+v", got, bg, fg)
	}
}

func TestResolveBlendAlpha(t *testing.T) {
	tbl := NewHighlightTable()
	tbl.Define(1, Highlight{Blend: 40})
	if got := tbl.Resolve(1).Alpha; got != 0.4 {
		t.Errorf("Alpha = %v, want 0.4", got)
	}
}

func TestSpecialColorFallsBackToResolvedForeground(t *testing.T) {
	tbl := NewHighlightTable()
	fg := RGB{9, 9, 9}
	tbl.Define(1, Highlight{Foreground: &fg})
	if got := tbl.SpecialColor(1); got != fg {
		t.Errorf("SpecialColor = %+v, want %+v", got, fg)
	}

	sp := RGB{1, 1, 1}
	tbl.Define(2, Highlight{Special: &sp})
	if got := tbl.SpecialColor(2); got != sp {
		t.Errorf("SpecialColor = %+v, want %+v", got, sp)
	}
}
