package text

import "testing"

func TestClustersGroupsByCellRange(t *testing.T) {
	tokens := []Token{
		{Rune: 'h', Cell: 0, HlID: 1},
		{Rune: 'i', Cell: 1, HlID: 1},
	}
	clusters := Clusters(tokens)
	if len(clusters) != 2 {
		t.Fatalf("len(clusters) = %d, want 2", len(clusters))
	}
	if clusters[0].CellStart != 0 || clusters[0].CellEnd != 1 {
		t.Errorf("clusters[0] = %+v", clusters[0])
	}
	if clusters[1].CellStart != 1 || clusters[1].CellEnd != 2 {
		t.Errorf("clusters[1] = %+v", clusters[1])
	}
}

func TestClustersCombiningMarkJoinsBaseRune(t *testing.T) {
	// 'e' + combining acute accent (U+0301) forms one grapheme cluster
	// occupying a single cell.
	tokens := []Token{
		{Rune: 'e', Cell: 0, HlID: 1},
		{Rune: '́', Cell: 0, HlID: 1},
		{Rune: 'x', Cell: 1, HlID: 1},
	}
	clusters := Clusters(tokens)
	if len(clusters) != 2 {
		t.Fatalf("len(clusters) = %d, want 2", len(clusters))
	}
	if len(clusters[0].Runes) != 2 {
		t.Errorf("clusters[0].Runes = %v, want 2 runes", clusters[0].Runes)
	}
	if clusters[0].CellEnd != 1 {
		t.Errorf("clusters[0].CellEnd = %d, want 1", clusters[0].CellEnd)
	}
}

func TestFontStyleFromBoldItalicBits(t *testing.T) {
	cases := []struct {
		bold, italic bool
		want         Style
	}{
		{false, false, Regular},
		{true, false, Bold},
		{false, true, Italic},
		{true, true, BoldItalic},
	}
	for _, c := range cases {
		if got := FontStyle(c.bold, c.italic); got != c.want {
			t.Errorf("FontStyle(%v,%v) = %v, want %v", c.bold, c.italic, got, c.want)
		}
	}
}

func TestCascadePrefersExactStyleMatch(t *testing.T) {
	faces := testFaces()
	face := faces[0].Faces[Regular]
	families := []Family{{Faces: [4]*Face{face, face, face, face}}}
	idx, style, ok := Cascade(families, Bold, []rune{'A'})
	if !ok || idx != 0 || style != Bold {
		t.Errorf("got idx=%d style=%v ok=%v", idx, style, ok)
	}
}

func TestCascadeFallsBackToFamilyRegular(t *testing.T) {
	faces := testFaces()
	families := []Family{{Faces: [4]*Face{faces[0].Faces[Regular], nil, nil, nil}}}
	idx, style, ok := Cascade(families, Bold, []rune{'A'})
	if !ok || idx != 0 || style != Regular {
		t.Errorf("got idx=%d style=%v ok=%v, want fallback to family 0 Regular", idx, style, ok)
	}
}

func TestCascadeNoFamilyCoversReturnsFalse(t *testing.T) {
	families := []Family{{}}
	_, _, ok := Cascade(families, Regular, []rune{'A'})
	if ok {
		t.Error("want ok=false when no family covers the cluster")
	}
}
