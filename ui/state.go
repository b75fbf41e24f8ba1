// Package ui implements the UI state machine: the authoritative
// model that consumes the decoded redraw event stream and maintains
// grids, highlight tables, window geometry, cmdline levels, message
// buffers, cursor, and draw order with z-index.
package ui

import (
	"github.com/novagrid/novagrid/event"
	"github.com/novagrid/novagrid/grid"
	"github.com/novagrid/novagrid/scroll"
)

// Dirty is a per-grid bitmask of what changed since the last ClearDirty.
type Dirty uint8

const (
	DirtyContents Dirty = 1 << iota
	DirtyWindow
)

// PopupmenuItem mirrors event.PopupmenuItem for the UI-owned copy.
type PopupmenuItem = event.PopupmenuItem

// Popupmenu is the completion-menu sub-state.
type Popupmenu struct {
	Visible  bool
	Items    []PopupmenuItem
	Selected int
	Row, Col int
	Grid     int
}

// TabInfo mirrors event.TabInfo.
type TabInfo = event.TabInfo

// Tabline is the tabline_update sub-state.
type Tabline struct {
	Current int
	Tabs    []TabInfo
}

// State is the full UI model: every editor sub-state plus the dirty flags
// and one-shot signals a flush consumes. It is mutated from a single
// task only, so it carries no lock of its own.
type State struct {
	Grids      map[int]*grid.Grid
	Histories  map[int]*scroll.History
	Windows    map[int]Window
	DrawOrder  DrawOrder
	Highlights *HighlightTable

	Cmdline  Cmdline
	Messages Messages
	Cursor   Cursor
	Modes    ModeTable

	Popupmenu Popupmenu
	Tabline   Tabline

	dirty       map[int]Dirty
	scrollDelta map[int]int

	DidFlush            bool
	DidHighlightsChange bool
	PendingFonts        []string

	// BufLeave suppresses the next win_viewport's scroll_delta, set by
	// the editor's neophyte.buf_leave notification and consumed by the
	// next win_viewport for that grid.
	BufLeave bool

	Title string
	Icon  string

	ShouldClose bool
}

// NewState returns an empty UI state with default highlight colors.
func NewState() *State {
	return &State{
		Grids:       map[int]*grid.Grid{},
		Histories:   map[int]*scroll.History{},
		Windows:     map[int]Window{},
		Highlights:  NewHighlightTable(),
		dirty:       map[int]Dirty{},
		scrollDelta: map[int]int{},
	}
}

// ConsumeScrollDelta returns the scroll_delta win_viewport most recently
// stored for gridID (0 if none arrived since the last consume) and
// clears it. frame.SyncScroll calls this once per rendered frame for
// every grid in the draw order, feeding the result into that grid's
// scroll.History.Push
// alongside a snapshot of its current contents.
func (s *State) ConsumeScrollDelta(gridID int) int {
	d := s.scrollDelta[gridID]
	delete(s.scrollDelta, gridID)
	return d
}

func (s *State) markDirty(gridID int, bits Dirty) {
	s.dirty[gridID] |= bits
}

// Dirty returns the accumulated dirty bits for a grid since the last
// ClearDirty.
func (s *State) Dirty(gridID int) Dirty {
	return s.dirty[gridID]
}

// ClearDirty resets every grid's dirty bits and the did_flush signal,
// called once per rendered frame.
func (s *State) ClearDirty() {
	for id := range s.dirty {
		delete(s.dirty, id)
	}
	s.DidFlush = false
	s.DidHighlightsChange = false
}

func (s *State) ensureGrid(id, width, height int) *grid.Grid {
	g, ok := s.Grids[id]
	if ok {
		return g
	}
	g = grid.New(id, width, height)
	s.Grids[id] = g
	s.Histories[id] = &scroll.History{}
	s.Windows[id] = Window{Kind: WindowNone}
	s.DrawOrder.InsertNormal(id)
	return g
}

// Process dispatches one decoded redraw event, mutating the relevant
// sub-state. It never fails: malformed or unrecognized events are
// already filtered out by the decode boundary, and every variant here
// either mutates well-defined state or is a no-op.
func (s *State) Process(ev event.Event) {
	switch e := ev.(type) {

	case event.GridResize:
		wasNew := s.Grids[e.Grid] == nil
		g := s.ensureGrid(e.Grid, e.Width, e.Height)
		if !wasNew {
			g.Resize(e.Width, e.Height)
		}
		s.markDirty(e.Grid, DirtyContents)

	case event.GridClear:
		if g := s.Grids[e.Grid]; g != nil {
			g.Clear()
			s.markDirty(e.Grid, DirtyContents)
		}

	case event.GridDestroy:
		delete(s.Grids, e.Grid)
		delete(s.Histories, e.Grid)
		delete(s.Windows, e.Grid)
		delete(s.dirty, e.Grid)
		s.DrawOrder.Remove(e.Grid)

	case event.GridCursorGoto:
		s.Cursor.Goto(e)

	case event.GridScroll:
		g := s.Grids[e.Grid]
		if g == nil {
			return
		}
		g.Scroll(e.Top, e.Bot, e.Left, e.Right, e.Rows)
		s.markDirty(e.Grid, DirtyContents)

	case event.GridLine:
		g := s.Grids[e.Grid]
		if g == nil {
			return
		}
		cells := make([]grid.RunCell, len(e.Cells))
		for i, c := range e.Cells {
			cells[i] = grid.RunCell{Text: c.Text, HasHl: c.HasHl, Hl: grid.HlId(c.Hl), Repeat: c.Repeat}
		}
		if err := g.GridLine(e.Row, e.ColStart, cells); err == nil {
			s.markDirty(e.Grid, DirtyContents)
		}

	case event.HlAttrDefine:
		s.Highlights.Define(grid.HlId(e.Id), highlightFromAttr(e.Attr))
		s.DidHighlightsChange = true

	case event.HlGroupSet:
		s.Highlights.SetGroup(e.Name, grid.HlId(e.Id))
		s.DidHighlightsChange = true

	case event.DefaultColorsSet:
		s.Highlights.DefaultFg = RGB(e.Foreground)
		s.Highlights.DefaultBg = RGB(e.Background)
		s.Highlights.DefaultSp = RGB(e.Special)
		s.DidHighlightsChange = true

	case event.ModeChange:
		s.Modes.Change(e)

	case event.ModeInfoSet:
		s.Modes.Set(e)

	case event.OptionSet:
		if e.Name == "guifont" {
			if f, ok := e.Value.(string); ok {
				s.PendingFonts = []string{f}
			}
		}

	case event.WinPos:
		win := s.Windows[e.Grid]
		win.Kind = WindowNormal
		win.StartRow, win.StartCol = e.StartRow, e.StartCol
		win.Width, win.Height = e.Width, e.Height
		s.Windows[e.Grid] = win
		s.DrawOrder.InsertNormal(e.Grid)
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinFloatPos:
		z := e.ZIndex
		win := Window{
			Kind:       WindowFloating,
			Anchor:     Anchor(e.Anchor),
			AnchorGrid: e.AnchorGrid,
			AnchorRow:  e.AnchorRow,
			AnchorCol:  e.AnchorCol,
			Focusable:  e.Focusable,
			ZIndex:     z,
		}
		s.Windows[e.Grid] = win
		s.DrawOrder.InsertFloating(e.Grid, z)
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinExternalPos:
		win := s.Windows[e.Grid]
		win.Kind = WindowExternal
		s.Windows[e.Grid] = win
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinHide:
		s.DrawOrder.Remove(e.Grid)
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinClose:
		s.DrawOrder.Remove(e.Grid)
		win := s.Windows[e.Grid]
		win.Kind = WindowNone
		s.Windows[e.Grid] = win
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinViewport:
		if s.BufLeave {
			s.BufLeave = false
			return
		}
		s.scrollDelta[e.Grid] = e.ScrollDelta

	case event.WinViewportMargins:
		// Margins affect scissoring in the frame builder; no UI-state
		// field to mutate here beyond marking the window dirty.
		s.markDirty(e.Grid, DirtyWindow)

	case event.WinExtmark:
		// Extmark positions are consumed by the frame builder directly
		// from the grid; nothing to track at the UI-state level.

	case event.MsgSetPos:
		win := Window{Kind: WindowMessages, MsgRow: e.Row, ZIndex: 200}
		s.Windows[e.Grid] = win
		s.DrawOrder.InsertFloating(e.Grid, 200)
		s.markDirty(e.Grid, DirtyWindow)

	case event.PopupmenuShow:
		s.Popupmenu = Popupmenu{
			Visible:  true,
			Items:    e.Items,
			Selected: e.Selected,
			Row:      e.Row,
			Col:      e.Col,
			Grid:     e.Grid,
		}

	case event.PopupmenuSelect:
		s.Popupmenu.Selected = e.Selected

	case event.PopupmenuHide:
		s.Popupmenu.Visible = false

	case event.CmdlineShow:
		s.Cmdline.Show(e)

	case event.CmdlinePos:
		s.Cmdline.SetPos(e)

	case event.CmdlineSpecialChar:
		s.Cmdline.SetSpecialChar(e)

	case event.CmdlineHide:
		s.Cmdline.Hide()

	case event.CmdlineBlockShow:
		lines := make([][]event.Cell, len(e.Lines))
		copy(lines, e.Lines)
		s.Cmdline.BlockShow(lines)

	case event.CmdlineBlockAppend:
		s.Cmdline.BlockAppend(e.Line)

	case event.CmdlineBlockHide:
		s.Cmdline.BlockHide()

	case event.MsgShow:
		s.Messages.ShowMessage(e)

	case event.MsgShowmode:
		s.Messages.ShowmodeSet(e.Content)

	case event.MsgShowcmd:
		s.Messages.Showcmd(e.Content)

	case event.MsgRuler:
		s.Messages.Ruler(e.Content)

	case event.MsgClear:
		s.Messages.Clear()

	case event.MsgHistoryShow:
		s.Messages.HistoryShow(e.Entries)

	case event.MsgHistoryClear:
		s.Messages.HistoryClear()

	case event.TablineUpdate:
		s.Tabline = Tabline{Current: e.Current, Tabs: e.Tabs}

	case event.SetTitle:
		s.Title = e.Title

	case event.SetIcon:
		s.Icon = e.Icon

	case event.Flush:
		s.DidFlush = true

	case event.Suspend:
		// No UI-state field tracks suspension; the event loop reacts to it
		// directly.

	case event.Chdir, event.MouseOn, event.MouseOff, event.BusyStart, event.BusyStop,
		event.UpdateMenu, event.Bell, event.VisualBell, event.Unknown:
		// No UI-state mutation; these are either forwarded elsewhere
		// (input/ for mouse enable, anim/ for busy spinners) or purely
		// informational.
	}
}

func highlightFromAttr(a event.HlAttr) Highlight {
	return Highlight{
		Foreground:    rgbPtr(a.Foreground),
		Background:    rgbPtr(a.Background),
		Special:       rgbPtr(a.Special),
		Reverse:       a.Reverse,
		Italic:        a.Italic,
		Bold:          a.Bold,
		Strikethrough: a.Strikethrough,
		Underline:     a.Underline,
		Undercurl:     a.Undercurl,
		Underdouble:   a.Underdouble,
		Underdotted:   a.Underdotted,
		Underdashed:   a.Underdashed,
		Blend:         a.Blend,
	}
}

func rgbPtr(c *event.RGB) *RGB {
	if c == nil {
		return nil
	}
	v := RGB{c.R, c.G, c.B}
	return &v
}

// Position resolves a grid's absolute on-screen cell position, per
// position(grid_id): recursing through anchor_grid for floating
// windows and clamping to the base grid's viewport. ok is false if the
// grid has no window geometry yet or a cycle was detected.
func (s *State) Position(gridID int) (Position, bool) {
	return s.position(gridID)
}

// GridUnderCursor walks the draw order top-down, testing pixel against
// each grid's screen rectangle, and returns the first containing grid
// plus the cell-relative position within it.
func (s *State) GridUnderCursor(pixelX, pixelY float64, cellWidth, cellHeight float64) (gridID int, cellRow, cellCol int, ok bool) {
	for _, item := range s.DrawOrder.TopDown() {
		g := s.Grids[item.Grid]
		if g == nil {
			continue
		}
		pos, okPos := s.position(item.Grid)
		if !okPos {
			continue
		}
		x0 := pos.Col * cellWidth
		y0 := pos.Row * cellHeight
		x1 := x0 + float64(g.Width)*cellWidth
		y1 := y0 + float64(g.Height)*cellHeight
		if pixelX < x0 || pixelX >= x1 || pixelY < y0 || pixelY >= y1 {
			continue
		}
		col := int((pixelX - x0) / cellWidth)
		row := int((pixelY - y0) / cellHeight)
		return item.Grid, row, col, true
	}
	return 0, 0, 0, false
}
