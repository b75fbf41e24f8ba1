package ui

import "github.com/novagrid/novagrid/grid"

// RGB mirrors event.RGB without importing the event package into the
// render-facing parts of ui (keeps ui's public surface decode-agnostic).
type RGB struct {
	R, G, B uint8
}

// Highlight is an attribute record: optional foreground/background/special
// color, style bit flags, and a blend percentage (0-100). HlId 0 is
// always the default and is never explicitly stored in the table.
type Highlight struct {
	Foreground, Background, Special *RGB
	Reverse, Italic, Bold            bool
	Strikethrough, Underline         bool
	Undercurl, Underdouble           bool
	Underdotted, Underdashed         bool
	Blend                            int
}

// HighlightTable owns every highlight attribute record plus the named
// group -> id map populated by hl_group_set.
type HighlightTable struct {
	attrs        map[grid.HlId]Highlight
	groups       map[string]grid.HlId
	DefaultFg    RGB
	DefaultBg    RGB
	DefaultSp    RGB
}

// NewHighlightTable returns an empty table with light-gray-on-black
// defaults until default_colors_set arrives.
func NewHighlightTable() *HighlightTable {
	return &HighlightTable{
		attrs:     map[grid.HlId]Highlight{},
		groups:    map[string]grid.HlId{},
		DefaultFg: RGB{229, 229, 229},
		DefaultBg: RGB{0, 0, 0},
	}
}

// Define stores or replaces the attribute record for id.
func (t *HighlightTable) Define(id grid.HlId, hl Highlight) {
	t.attrs[id] = hl
}

// SetGroup records a named group -> id mapping (e.g. "Cursor" -> 5).
func (t *HighlightTable) SetGroup(name string, id grid.HlId) {
	t.groups[name] = id
}

// GroupId looks up a named highlight group, returning (0, false) if unset.
func (t *HighlightTable) GroupId(name string) (grid.HlId, bool) {
	id, ok := t.groups[name]
	return id, ok
}

// Get returns the attribute record for id, or the zero Highlight for the
// default (id 0) or any id never defined.
func (t *HighlightTable) Get(id grid.HlId) Highlight {
	if id == 0 {
		return Highlight{}
	}
	return t.attrs[id]
}

// Resolved is the final fg/bg/alpha a frame builder draws with.
type Resolved struct {
	Fg, Bg RGB
	Alpha  float32
}

// Resolve applies reverse and blend to a highlight's fg/bg. Under
// reverse, the bg role is filled from the explicit foreground (or the
// default foreground if unset) and the fg role from the explicit
// background (or the default background if unset) -- reverse swaps which
// field feeds which role, it does not swap the two fields' own
// unset-fallbacks. Blend percentage 0-100 becomes alpha = blend/100.
func (t *HighlightTable) Resolve(id grid.HlId) Resolved {
	hl := t.Get(id)

	var resolvedFg, resolvedBg RGB
	if hl.Reverse {
		if hl.Foreground != nil {
			resolvedBg = RGB(*hl.Foreground)
		} else {
			resolvedBg = t.DefaultFg
		}
		if hl.Background != nil {
			resolvedFg = RGB(*hl.Background)
		} else {
			resolvedFg = t.DefaultBg
		}
	} else {
		if hl.Foreground != nil {
			resolvedFg = RGB(*hl.Foreground)
		} else {
			resolvedFg = t.DefaultFg
		}
		if hl.Background != nil {
			resolvedBg = RGB(*hl.Background)
		} else {
			resolvedBg = t.DefaultBg
		}
	}

	return Resolved{Fg: resolvedFg, Bg: resolvedBg, Alpha: float32(hl.Blend) / 100}
}

// SpecialColor returns the color underline/undercurl decorations draw
// with, falling back to the resolved foreground when unset.
func (t *HighlightTable) SpecialColor(id grid.HlId) RGB {
	hl := t.Get(id)
	if hl.Special != nil {
		return RGB(*hl.Special)
	}
	return t.Resolve(id).Fg
}
