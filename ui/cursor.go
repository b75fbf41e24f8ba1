package ui

import "github.com/novagrid/novagrid/event"

// CursorPos is the cursor's grid-relative cell position.
type CursorPos struct {
	Row, Col int
}

// Cursor tracks the editor cursor's grid and cell, independent of shape
// (shape comes from the active mode's ModeInfo entry).
type Cursor struct {
	Pos  CursorPos
	Grid int
}

// Goto applies a grid_cursor_goto event.
func (c *Cursor) Goto(ev event.GridCursorGoto) {
	c.Grid = ev.Grid
	c.Pos = CursorPos{Row: ev.Row, Col: ev.Col}
}

// ModeInfo is one entry of mode_info_set's per-mode cursor style table:
// shape, cell-fill percentage, blink timing, and the highlight ids used
// for the cursor cell itself and for the "language mapping" variant.
type ModeInfo struct {
	CursorShape    string // "block", "horizontal", "vertical"
	CellPercentage int
	BlinkWait      int
	BlinkOn        int
	BlinkOff       int
	AttrId         int
	AttrIdLm       int
	ShortName      string
	Name           string
}

// ModeTable holds the mode_info_set cursor style table plus the current
// mode index set by mode_change.
type ModeTable struct {
	Enabled bool
	Modes   []ModeInfo
	Current int
}

// Set applies a mode_info_set event.
func (m *ModeTable) Set(ev event.ModeInfoSet) {
	m.Enabled = ev.CursorStyleEnabled
	modes := make([]ModeInfo, len(ev.Modes))
	for i, info := range ev.Modes {
		modes[i] = ModeInfo{
			CursorShape:    info.CursorShape,
			CellPercentage: info.CellPercentage,
			BlinkWait:      info.BlinkWait,
			BlinkOn:        info.BlinkOn,
			BlinkOff:       info.BlinkOff,
			AttrId:         info.AttrId,
			AttrIdLm:       info.AttrIdLm,
			ShortName:      info.ShortName,
			Name:           info.Name,
		}
	}
	m.Modes = modes
}

// Change applies a mode_change event.
func (m *ModeTable) Change(ev event.ModeChange) {
	m.Current = ev.ModeIdx
}

// Active returns the ModeInfo for the current mode, or the zero value
// if mode_info_set hasn't arrived yet or the index is out of range.
func (m *ModeTable) Active() ModeInfo {
	if m.Current < 0 || m.Current >= len(m.Modes) {
		return ModeInfo{}
	}
	return m.Modes[m.Current]
}
