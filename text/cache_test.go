package text

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func testFaces() []Family {
	return []Family{{Faces: [4]*Face{{Face: basicfont.Face7x13, Em: 13}, nil, nil, nil}}}
}

func TestCacheGetRastersAndCachesMonochrome(t *testing.T) {
	c := NewCache(testFaces())

	info, ok, err := c.Get('A', Regular, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("want ok=true for a renderable glyph")
	}
	if info.Kind != Monochrome {
		t.Errorf("Kind = %v, want Monochrome", info.Kind)
	}
	if c.Revision != 1 {
		t.Errorf("Revision = %d, want 1", c.Revision)
	}

	// second lookup is a cache hit, no new revision.
	if _, _, err := c.Get('A', Regular, 0); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if c.Revision != 1 {
		t.Errorf("Revision after hit = %d, want unchanged 1", c.Revision)
	}
}

func TestCacheGetNegativeCachesSpaceGlyph(t *testing.T) {
	c := NewCache(testFaces())

	_, ok, err := c.Get(' ', Regular, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("want ok=false for an empty-rendering glyph")
	}
	if c.Revision != 0 {
		t.Errorf("Revision = %d, want 0 for a negative cache entry", c.Revision)
	}

	// repeated lookup must not re-attempt rasterization.
	if _, ok, _ := c.Get(' ', Regular, 0); ok {
		t.Error("want cached ok=false on second lookup")
	}
}

func TestCacheGetOutOfRangeFontIndexIsNegativeCached(t *testing.T) {
	c := NewCache(testFaces())
	_, ok, err := c.Get('A', Regular, 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("want ok=false for an out-of-range font index")
	}
}
