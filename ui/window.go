package ui

import "github.com/bloeys/gglm/gglm"

// Anchor is the corner of the anchor grid a floating window is pinned
// to, as carried by win_float_pos.
type Anchor string

const (
	AnchorNW Anchor = "NW"
	AnchorNE Anchor = "NE"
	AnchorSW Anchor = "SW"
	AnchorSE Anchor = "SE"
)

// WindowKind tags which Window variant is populated.
type WindowKind int

const (
	WindowNone WindowKind = iota
	WindowNormal
	WindowFloating
	WindowMessages
	WindowExternal
)

// Window is the tagged geometry a grid carries: None until the first
// win_pos/win_float_pos/win_external_pos/msg_set_pos arrives.
type Window struct {
	Kind WindowKind

	// Normal
	StartRow, StartCol int
	Width, Height      int

	// Floating
	Anchor      Anchor
	AnchorGrid  int
	AnchorRow   float64
	AnchorCol   float64
	Focusable   bool
	ZIndex      int

	// Messages
	MsgRow int
}

// Position is a resolved absolute cell coordinate.
type Position struct {
	Row, Col float64
}

// position resolves grid's absolute on-screen cell position, recursing
// through anchor_grid for floating windows and clamping the result to
// the base grid's viewport. Returns (zero, false) if a cycle is
// detected among anchor_grid references -- forbidden by protocol, but
// guarded against defensively rather than trusted.
func (s *State) position(gridID int) (Position, bool) {
	return s.positionVisited(gridID, map[int]bool{})
}

func (s *State) positionVisited(gridID int, visited map[int]bool) (Position, bool) {
	if gridID == baseGridID {
		return Position{Row: 0, Col: 0}, true
	}
	if visited[gridID] {
		return Position{}, false
	}
	visited[gridID] = true

	win, ok := s.Windows[gridID]
	if !ok {
		return Position{}, false
	}

	switch win.Kind {
	case WindowNormal:
		return Position{Row: float64(win.StartRow), Col: float64(win.StartCol)}, true

	case WindowMessages:
		return Position{Row: float64(win.MsgRow), Col: 0}, true

	case WindowFloating:
		base, ok := s.positionVisited(win.AnchorGrid, visited)
		if !ok {
			return Position{}, false
		}
		anchored := gglm.NewVec2(float32(base.Col+win.AnchorCol), float32(base.Row+win.AnchorRow))
		pos := Position{Row: float64(anchored.Y()), Col: float64(anchored.X())}

		g := s.Grids[gridID]
		var w, h float64
		if g != nil {
			w, h = float64(g.Width), float64(g.Height)
		}
		switch win.Anchor {
		case AnchorNE:
			pos.Col -= w
		case AnchorSW:
			pos.Row -= h
		case AnchorSE:
			pos.Row -= h
			pos.Col -= w
		}

		return s.clampToBaseViewport(pos, w, h), true

	default:
		return Position{}, false
	}
}

// clampToBaseViewport keeps a floating window's top-left within grid 1's
// bounds, matching "floating windows are clamped within the base grid".
func (s *State) clampToBaseViewport(pos Position, w, h float64) Position {
	base := s.Grids[baseGridID]
	if base == nil {
		return pos
	}
	maxRow := float64(base.Height) - h
	maxCol := float64(base.Width) - w
	if maxRow < 0 {
		maxRow = 0
	}
	if maxCol < 0 {
		maxCol = 0
	}
	if pos.Row < 0 {
		pos.Row = 0
	} else if pos.Row > maxRow {
		pos.Row = maxRow
	}
	if pos.Col < 0 {
		pos.Col = 0
	} else if pos.Col > maxCol {
		pos.Col = maxCol
	}
	return pos
}

// baseGridID is Neovim's always-present grid 1, the outermost window the
// whole session is drawn into.
const baseGridID = 1
