package frame

import (
	"testing"

	"github.com/novagrid/novagrid/event"
	"github.com/novagrid/novagrid/text"
	"github.com/novagrid/novagrid/ui"
	"golang.org/x/image/font/basicfont"
)

func newTestBuilder() *Builder {
	families := []text.Family{{Faces: [4]*text.Face{{Face: basicfont.Face7x13, Em: 13}, nil, nil, nil}}}
	cache := text.NewCache(families)
	return NewBuilder(cache, families, Metrics{CellWidth: 8, CellHeight: 16, Ascent: 12, UnderlineOffset: 2, StrokeSize: 1})
}

func newTestState(t *testing.T) *ui.State {
	t.Helper()
	s := ui.NewState()
	s.Process(event.GridResize{Grid: 1, Width: 10, Height: 5})
	s.Process(event.WinPos{Grid: 1, Win: 1, StartRow: 0, StartCol: 0, Width: 10, Height: 5})
	s.Process(event.HlAttrDefine{Id: 1, Attr: event.HlAttr{Foreground: &event.RGB{R: 255, G: 0, B: 0}, Background: &event.RGB{R: 10, G: 10, B: 10}}})
	s.Process(event.GridLine{Grid: 1, Row: 0, ColStart: 0, Cells: []event.Cell{
		{Text: "h", HasHl: true, Hl: 1},
		{Text: "i"},
	}})
	return s
}

func TestBuildProducesCellFillAndGlyphsForColoredRow(t *testing.T) {
	b := newTestBuilder()
	s := newTestState(t)

	buf, err := b.Build(s, s.Histories[1], 1, 800, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if buf == nil {
		t.Fatal("want non-nil buffers")
	}
	if len(buf.CellFill) == 0 {
		t.Error("want at least one cell_fill rect for the non-default background row")
	}
	if len(buf.Monochrome) == 0 {
		t.Error("want monochrome glyph records for 'h','i'")
	}
}

func TestBuildSkipsCellFillForDefaultBackground(t *testing.T) {
	b := newTestBuilder()
	s := ui.NewState()
	s.Process(event.GridResize{Grid: 1, Width: 10, Height: 5})
	s.Process(event.WinPos{Grid: 1, Win: 1, StartRow: 0, StartCol: 0, Width: 10, Height: 5})
	s.Process(event.GridLine{Grid: 1, Row: 0, ColStart: 0, Cells: []event.Cell{
		{Text: "x"},
	}})

	buf, err := b.Build(s, s.Histories[1], 1, 800, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(buf.CellFill) != 0 {
		t.Errorf("CellFill = %+v, want none for default background", buf.CellFill)
	}
}

func TestBuildReturnsNilForGridWithoutWindowGeometry(t *testing.T) {
	b := newTestBuilder()
	s := ui.NewState()
	s.Process(event.GridResize{Grid: 2, Width: 10, Height: 5})

	buf, err := b.Build(s, s.Histories[2], 2, 800, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if buf != nil {
		t.Errorf("want nil buffers before win_pos arrives, got %+v", buf)
	}
}

func TestBuildClipsScissorToTarget(t *testing.T) {
	b := newTestBuilder()
	s := newTestState(t)

	buf, err := b.Build(s, s.Histories[1], 1, 40, 600)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if buf.Scissor.W > 40 {
		t.Errorf("Scissor.W = %v, want clipped to target width 40", buf.Scissor.W)
	}
}
