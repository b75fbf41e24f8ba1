package ui

import "github.com/novagrid/novagrid/event"

// Prompt is one level of an active Normal cmdline: content lines, a
// cursor index, the first-char sigil (":", "/", "?", ...), prompt text,
// optional special char with its shift flag, and indent.
type Prompt struct {
	Lines        []event.Cell
	Cursor       int
	FirstC       string
	PromptText   string
	SpecialChar  string
	SpecialShift bool
	Indent       int
}

// CmdlineKind tags which Cmdline variant is populated.
type CmdlineKind int

const (
	CmdlineNone CmdlineKind = iota
	CmdlineNormal
	CmdlineBlock
)

// Cmdline is the tagged cmdline state: inactive, a stack of Normal
// levels (nested command-line prompts), or a Block (command-line window
// with accumulated previous lines and one in-progress current line).
type Cmdline struct {
	Kind CmdlineKind

	Levels []Prompt

	BlockPreviousLines [][]event.Cell
	BlockCurrentLine   []event.Cell
}

func (c *Cmdline) ensureLevel(level int) {
	c.Kind = CmdlineNormal
	for len(c.Levels) < level {
		c.Levels = append(c.Levels, Prompt{})
	}
}

// Show applies a cmdline_show event, replacing the prompt at the given
// nesting level (levels are 1-indexed on the wire; a level of 0 acts as
// level 1).
func (c *Cmdline) Show(ev event.CmdlineShow) {
	level := ev.Level
	if level < 1 {
		level = 1
	}
	c.ensureLevel(level)
	c.Levels[level-1] = Prompt{
		Lines:      ev.Content,
		Cursor:     ev.Pos,
		FirstC:     ev.FirstC,
		PromptText: ev.Prompt,
		Indent:     ev.Indent,
	}
}

// SetPos updates the cursor position within the active level's prompt.
func (c *Cmdline) SetPos(ev event.CmdlinePos) {
	level := ev.Level
	if level < 1 {
		level = 1
	}
	if level > len(c.Levels) {
		return
	}
	c.Levels[level-1].Cursor = ev.Pos
}

// SetSpecialChar records the special character (e.g. an insert-mode
// indicator) shown alongside the cursor in the active level.
func (c *Cmdline) SetSpecialChar(ev event.CmdlineSpecialChar) {
	level := ev.Level
	if level < 1 {
		level = 1
	}
	if level > len(c.Levels) {
		return
	}
	c.Levels[level-1].SpecialChar = ev.Char
	c.Levels[level-1].SpecialShift = ev.Shift
}

// Hide deactivates the cmdline entirely.
func (c *Cmdline) Hide() {
	*c = Cmdline{}
}

// BlockShow replaces the command-line window's accumulated lines.
func (c *Cmdline) BlockShow(lines [][]event.Cell) {
	c.Kind = CmdlineBlock
	c.BlockPreviousLines = lines
	c.BlockCurrentLine = nil
}

// BlockAppend appends one finished line to the command-line window and
// clears the in-progress current line.
func (c *Cmdline) BlockAppend(line []event.Cell) {
	c.Kind = CmdlineBlock
	c.BlockPreviousLines = append(c.BlockPreviousLines, line)
	c.BlockCurrentLine = nil
}

// BlockHide deactivates the command-line window.
func (c *Cmdline) BlockHide() {
	*c = Cmdline{}
}
