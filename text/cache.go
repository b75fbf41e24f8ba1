package text

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Style selects one of the four cascade slots a font family can fill.
type Style int

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

// Kind identifies which of the two parallel caches a glyph landed in.
type Kind int

const (
	Monochrome Kind = iota
	Emoji
)

// GlyphInfo is the renderer-facing record for one cached glyph: its
// rectangle within the owning atlas, the pen offset to draw it at, and
// the advance to move the pen by afterward.
type GlyphInfo struct {
	Kind    Kind
	Rect    Rect
	OffsetX float32
	OffsetY float32
	Advance float32
}

// glyphKey is the cache lookup key: (glyph_id, style, font_index).
type glyphKey struct {
	glyph rune
	style Style
	font  int
}

// Face is one loaded font usable at a given pixel size.
type Face struct {
	Face font.Face
	Em   float64
}

// LoadFace parses raw TrueType/OpenType bytes and returns a face scaled
// to the given em size. TrueType glyf-outline fonts are parsed and hinted
// by freetype's own rasterizer (truetype.NewFace); CFF-flavored OpenType
// fonts, which freetype's truetype parser rejects, fall back to
// opentype.Parse + opentype.NewFace.
func LoadFace(data []byte, em float64) (*Face, error) {
	if ft, err := truetype.Parse(data); err == nil {
		face := truetype.NewFace(ft, &truetype.Options{
			Size:    em,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		return &Face{Face: face, Em: em}, nil
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    em,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Face{Face: face, Em: em}, nil
}

// Cache holds the two parallel atlases (monochrome coverage, color
// emoji) plus the glyph lookup table, a negative-cache entry (stored as
// a present map key with a nil *GlyphInfo) preventing repeat rasterize
// attempts of glyphs that render empty.
type Cache struct {
	Mono  *Atlas
	Color *Atlas

	// Revision increments on every successful insert into either
	// atlas; the GPU bind-group updater watches this to know when to
	// re-upload atlas textures.
	Revision uint64

	glyphs   map[glyphKey]*GlyphInfo
	families []Family
}

// NewCache constructs an empty font cache over the given ordered font
// cascade (index 0 is tried first). families is shared with the frame
// builder's Cascade call so (fontIndex, style) from Cascade resolves to
// the same face Get rasterizes from.
func NewCache(families []Family) *Cache {
	return &Cache{
		Mono:     NewAtlas(1),
		Color:    NewAtlas(4),
		glyphs:   map[glyphKey]*GlyphInfo{},
		families: families,
	}
}

// Get looks up (glyph, style, fontIndex), rasterizing and packing on a
// miss. style selects which of the family's four faces to rasterize
// from (falling back to the family's regular face, matching Cascade's
// own Keep fallback), so Bold/Italic text actually renders from the
// bold/italic font file rather than a reused regular glyph under a
// distinct cache key. Returns ok=false for a negative-cached
// (empty-render) glyph, in which case the caller should draw nothing.
func (c *Cache) Get(glyph rune, style Style, fontIndex int) (GlyphInfo, bool, error) {
	key := glyphKey{glyph: glyph, style: style, font: fontIndex}
	if info, hit := c.glyphs[key]; hit {
		if info == nil {
			return GlyphInfo{}, false, nil
		}
		return *info, true, nil
	}

	if fontIndex < 0 || fontIndex >= len(c.families) {
		c.glyphs[key] = nil
		return GlyphInfo{}, false, nil
	}
	face := c.families[fontIndex].Faces[style]
	if face == nil {
		face = c.families[fontIndex].Faces[Regular]
	}
	if face == nil {
		c.glyphs[key] = nil
		return GlyphInfo{}, false, nil
	}

	dr, mask, maskp, advance, ok := face.Face.Glyph(fixed.P(0, 0), glyph)
	if !ok || dr.Empty() {
		c.glyphs[key] = nil
		return GlyphInfo{}, false, nil
	}

	w, h := dr.Dx(), dr.Dy()
	blank := true
	for y := 0; y < h && blank; y++ {
		for x := 0; x < w && blank; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			blank = a == 0
		}
	}
	if blank {
		// No visible coverage (e.g. a space): the glyph renders empty.
		c.glyphs[key] = nil
		return GlyphInfo{}, false, nil
	}
	info, err := c.pack(mask, maskp, dr, w, h)
	if err != nil {
		return GlyphInfo{}, false, err
	}
	info.Advance = float32(advance) / 64
	c.glyphs[key] = &info
	c.Revision++
	return info, true, nil
}

// pack decides monochrome vs. emoji by channel count of the rasterized
// mask and inserts into the matching atlas.
func (c *Cache) pack(mask image.Image, maskp image.Point, dr image.Rectangle, w, h int) (GlyphInfo, error) {
	if isColorMask(mask) {
		pixels := toRGBA(mask, maskp, w, h)
		rect, err := c.Color.Insert(w, h, pixels)
		if err != nil {
			return GlyphInfo{}, err
		}
		return GlyphInfo{Kind: Emoji, Rect: rect, OffsetX: float32(dr.Min.X), OffsetY: -float32(dr.Min.Y)}, nil
	}

	pixels := toAlpha(mask, maskp, w, h)
	rect, err := c.Mono.Insert(w, h, pixels)
	if err != nil {
		return GlyphInfo{}, err
	}
	return GlyphInfo{Kind: Monochrome, Rect: rect, OffsetX: float32(dr.Min.X), OffsetY: -float32(dr.Min.Y)}, nil
}

func isColorMask(mask image.Image) bool {
	switch mask.(type) {
	case *image.NRGBA, *image.RGBA:
		return true
	default:
		return false
	}
}

func toAlpha(mask image.Image, origin image.Point, w, h int) []byte {
	out := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(origin.X+x, origin.Y+y).RGBA()
			out[y*w+x] = byte(a >> 8)
		}
	}
	return out
}

func toRGBA(mask image.Image, origin image.Point, w, h int) []byte {
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := mask.At(origin.X+x, origin.Y+y).RGBA()
			i := (y*w + x) * 4
			out[i+0] = byte(r >> 8)
			out[i+1] = byte(g >> 8)
			out[i+2] = byte(b >> 8)
			out[i+3] = byte(a >> 8)
		}
	}
	return out
}
