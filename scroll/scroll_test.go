package scroll

import (
	"testing"

	"github.com/novagrid/novagrid/grid"
)

func TestRangeUncovered(t *testing.T) {
	cases := []struct {
		self, cover Range
		want        Range
		ok          bool
	}{
		{Range{2, 8}, Range{5, 6}, Range{2, 5}, true},
		{Range{2, 8}, Range{0, 10}, Range{}, false},
		{Range{2, 8}, Range{8, 10}, Range{2, 8}, true},
	}
	for _, c := range cases {
		got, ok := c.self.Uncovered(c.cover)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("%+v.Uncovered(%+v) = %+v,%v want %+v,%v", c.self, c.cover, got, ok, c.want, c.ok)
		}
	}
}

func newFilledGrid(id, w, h int, fill rune) *grid.Grid {
	g := grid.New(id, w, h)
	for r := 0; r < h; r++ {
		cells := make([]grid.RunCell, w)
		for c := range cells {
			cells[c] = grid.RunCell{Text: string(fill + rune(r))}
		}
		_ = g.GridLine(r, 0, cells)
	}
	return g
}

func TestPushCoverageNoDuplicateRows(t *testing.T) {
	var h History
	h.Push(newFilledGrid(1, 4, 4, 'a'), 0)
	h.Push(newFilledGrid(1, 4, 4, 'a'), 1)
	h.Push(newFilledGrid(1, 4, 4, 'a'), 2)

	seen := map[int]bool{}
	for _, row := range h.Rows() {
		if seen[row.RowIndex] {
			t.Errorf("row %d yielded twice", row.RowIndex)
		}
		seen[row.RowIndex] = true
	}
}

func TestAdvanceSettles(t *testing.T) {
	var h History
	h.Push(newFilledGrid(1, 4, 4, 'a'), 3)
	motion := Animating
	iterations := 0
	for motion == Animating && iterations < 10000 {
		motion = h.Advance(1.0 / 60.0)
		iterations++
	}
	if motion != Still {
		t.Fatalf("advance did not settle within %d iterations, t=%v", iterations, h.T())
	}
	if h.T() != 0 {
		t.Errorf("T() = %v after settling, want 0", h.T())
	}
}
