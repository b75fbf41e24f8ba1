package ui

import (
	"testing"

	"github.com/novagrid/novagrid/event"
	"github.com/novagrid/novagrid/grid"
)

func mustGrid(id, w, h int) *grid.Grid {
	return grid.New(id, w, h)
}

func TestProcessGridResizeInsertsIntoDrawOrderAndMarksDirty(t *testing.T) {
	s := NewState()
	s.Process(event.GridResize{Grid: 1, Width: 80, Height: 24})

	if s.Grids[1] == nil {
		t.Fatal("grid 1 not created")
	}
	if s.Dirty(1)&DirtyContents == 0 {
		t.Error("expected DirtyContents after grid_resize")
	}
	items := s.DrawOrder.Items()
	if len(items) != 1 || items[0].Grid != 1 {
		t.Errorf("draw order = %v, want [1]", items)
	}
}

func TestProcessGridResizeExistingPreservesOverlap(t *testing.T) {
	s := NewState()
	s.Process(event.GridResize{Grid: 2, Width: 4, Height: 2})
	s.Process(event.GridLine{Grid: 2, Row: 0, ColStart: 0, Cells: []event.Cell{
		{Text: "a", Repeat: 1}, {Text: "b"}, {Text: "c"}, {Text: "d"},
	}})

	s.Process(event.GridResize{Grid: 2, Width: 6, Height: 3})

	g := s.Grids[2]
	if g.Width != 6 || g.Height != 3 {
		t.Fatalf("got %dx%d, want 6x3", g.Width, g.Height)
	}
	if g.Cell(0, 0).Text.Decode() != (grid.Contents{Rune: 'a'}) {
		t.Errorf("overlap not preserved: %+v", g.Cell(0, 0).Text.Decode())
	}
}

func TestProcessGridDestroyRemovesEverything(t *testing.T) {
	s := NewState()
	s.Process(event.GridResize{Grid: 3, Width: 4, Height: 2})
	s.Process(event.GridDestroy{Grid: 3})

	if s.Grids[3] != nil {
		t.Error("grid not removed")
	}
	if len(s.DrawOrder.Items()) != 0 {
		t.Error("draw order not cleared")
	}
}

func TestProcessHlAttrDefineSetsHighlightChangedFlag(t *testing.T) {
	s := NewState()
	s.Process(event.HlAttrDefine{Id: 1, Attr: event.HlAttr{Bold: true}})

	if !s.DidHighlightsChange {
		t.Error("expected DidHighlightsChange")
	}
	if got := s.Highlights.Get(1); !got.Bold {
		t.Errorf("got %+v, want Bold", got)
	}
}

func TestProcessFlushSetsDidFlush(t *testing.T) {
	s := NewState()
	s.Process(event.Flush{})
	if !s.DidFlush {
		t.Error("expected DidFlush after flush event")
	}
	s.ClearDirty()
	if s.DidFlush {
		t.Error("expected DidFlush cleared")
	}
}

func TestProcessWinFloatPosInsertsFloatingWithDefaultZ(t *testing.T) {
	s := NewState()
	s.Process(event.GridResize{Grid: 1, Width: 80, Height: 24})
	s.Process(event.GridResize{Grid: 2, Width: 10, Height: 4})
	s.Process(event.WinFloatPos{Grid: 2, AnchorGrid: 1, Anchor: "NW", ZIndex: 50})

	win := s.Windows[2]
	if win.Kind != WindowFloating || win.ZIndex != 50 {
		t.Errorf("got %+v", win)
	}
}

func TestProcessWinViewportStoresScrollDeltaUnlessBufLeave(t *testing.T) {
	s := NewState()
	s.Process(event.WinViewport{Grid: 1, ScrollDelta: 5})
	if got := s.ConsumeScrollDelta(1); got != 5 {
		t.Errorf("ConsumeScrollDelta = %d, want 5", got)
	}
	if got := s.ConsumeScrollDelta(1); got != 0 {
		t.Errorf("ConsumeScrollDelta after consume = %d, want 0", got)
	}

	s.BufLeave = true
	s.Process(event.WinViewport{Grid: 1, ScrollDelta: 7})
	if got := s.ConsumeScrollDelta(1); got != 0 {
		t.Errorf("ConsumeScrollDelta after buf_leave = %d, want 0", got)
	}
	if s.BufLeave {
		t.Error("expected BufLeave consumed")
	}
}

func TestProcessMsgShowReplaceLastPopsBeforePush(t *testing.T) {
	s := NewState()
	s.Process(event.MsgShow{Kind: "echo", Content: []event.Cell{{Text: "first"}}})
	s.Process(event.MsgShow{Kind: "echo", Content: []event.Cell{{Text: "second"}}, ReplaceLast: true})

	if len(s.Messages.Show) != 1 {
		t.Fatalf("len(Show) = %d, want 1", len(s.Messages.Show))
	}
	if s.Messages.Show[0].Content[0].Text != "second" {
		t.Errorf("got %+v", s.Messages.Show[0])
	}
}

func TestProcessUnknownEventIsNoop(t *testing.T) {
	s := NewState()
	s.Process(event.Unknown{Args: []interface{}{1, 2}})
}
