package text

import "testing"

func TestAtlasInsertFitsWithoutGrowing(t *testing.T) {
	a := NewAtlas(1)
	pixels := make([]byte, 10*10)
	for i := range pixels {
		pixels[i] = 0xFF
	}
	rect, err := a.Insert(10, 10, pixels)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.Side != atlasOrigin {
		t.Fatalf("Side = %d, want unchanged %d", a.Side, atlasOrigin)
	}
	if rect.W != 10 || rect.H != 10 {
		t.Fatalf("rect = %+v", rect)
	}
}

func TestAtlasGrowsAndPreservesExistingPixels(t *testing.T) {
	a := NewAtlas(1)
	big := make([]byte, atlasOrigin*atlasOrigin)
	for i := range big {
		big[i] = 1
	}
	first, err := a.Insert(atlasOrigin, atlasOrigin, big)
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}

	small := []byte{2}
	second, err := a.Insert(1, 1, small)
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}

	if a.Side <= atlasOrigin {
		t.Fatalf("Side = %d, want grown past %d", a.Side, atlasOrigin)
	}

	off := (first.Y*a.Side + first.X) * a.Channels
	if a.Pixels[off] != 1 {
		t.Errorf("pixel at old rect origin = %d, want preserved 1", a.Pixels[off])
	}

	off2 := (second.Y*a.Side + second.X) * a.Channels
	if a.Pixels[off2] != 2 {
		t.Errorf("pixel at new rect = %d, want 2", a.Pixels[off2])
	}
}

func TestAtlasRejectsNonPositiveSize(t *testing.T) {
	a := NewAtlas(1)
	if _, err := a.Insert(0, 5, nil); err == nil {
		t.Error("want error for zero width")
	}
}
