package grid

import "testing"

func TestPackedCharRuneRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', '日', '\U0001F600', 0x10FFFF} {
		pc := PackedCharFromRune(r)
		got := pc.Decode()
		if got.IsIndex || got.Rune != r {
			t.Errorf("PackedCharFromRune(%U).Decode() = %+v, want Rune=%U", r, got, r)
		}
	}
}

func TestPackedCharIndexRoundTrip(t *testing.T) {
	pc, err := PackedCharFromIndex(MaxIndex)
	if err != nil {
		t.Fatalf("from_index(MaxIndex) = %v, want nil", err)
	}
	got := pc.Decode()
	if !got.IsIndex || got.Index != MaxIndex {
		t.Errorf("decode = %+v, want Index=%d", got, MaxIndex)
	}

	if _, err := PackedCharFromIndex(MaxIndex + 1); err == nil {
		t.Error("from_index(MaxIndex+1) = nil error, want error")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := New(2, 4, 2)
	must(t, g.GridLine(0, 0, []RunCell{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}))
	must(t, g.GridLine(1, 0, []RunCell{{Text: "e"}, {Text: "f"}, {Text: "g"}, {Text: "h"}}))

	g.Resize(6, 3)

	wantRow := func(row int, want string) {
		got := rowString(g, row)
		if got != want {
			t.Errorf("row %d = %q, want %q", row, got, want)
		}
	}
	wantRow(0, "abcd  ")
	wantRow(1, "efgh  ")
	wantRow(2, "      ")
}

func TestScrollInvalidatesUnwrittenBand(t *testing.T) {
	g := New(2, 6, 3)
	must(t, g.GridLine(0, 0, []RunCell{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}))
	must(t, g.GridLine(1, 0, []RunCell{{Text: "e"}, {Text: "f"}, {Text: "g"}, {Text: "h"}}))

	g.Scroll(0, 3, 0, 6, 1)
	must(t, g.GridLine(0, 0, []RunCell{{Text: "e"}, {Text: "f"}, {Text: "g"}, {Text: "h"}}))

	if got := rowString(g, 0); got != "efgh  " {
		t.Errorf("row 0 = %q, want %q", got, "efgh  ")
	}
	if got := rowString(g, 1); got != "efgh  " {
		t.Errorf("row 1 (unwritten band) = %q, want %q", got, "efgh  ")
	}
	if got := rowString(g, 2); got != "      " {
		t.Errorf("row 2 = %q, want %q", got, "      ")
	}
}

func TestGridLineRepeatAndMissingHl(t *testing.T) {
	g := New(1, 5, 1)
	must(t, g.GridLine(0, 0, []RunCell{
		{Text: "x", HasHl: true, Hl: 3, Repeat: 2},
		{Text: "y"},
	}))
	for col, want := range []HlId{3, 3, 3} {
		if got := g.Cell(0, col).Highlight; got != want {
			t.Errorf("col %d highlight = %d, want %d", col, got, want)
		}
	}
}

func TestGridLineWideGlyphSpacer(t *testing.T) {
	g := New(1, 3, 1)
	must(t, g.GridLine(0, 0, []RunCell{{Text: "字"}, {Text: ""}}))
	if got := rowString(g, 0); got != "字  " {
		t.Errorf("row = %q, want %q (spacer stored empty)", got, "字  ")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func rowString(g *Grid, row int) string {
	var b []rune
	for c := 0; c < g.Width; c++ {
		cell := g.Cell(row, c)
		if cell.Text.Empty() {
			b = append(b, ' ')
			continue
		}
		dec := cell.Text.Decode()
		if dec.IsIndex {
			b = append(b, []rune(g.Overflow(dec.Index))...)
		} else {
			b = append(b, dec.Rune)
		}
	}
	return string(b)
}
