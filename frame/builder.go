// Package frame implements the text frame builder: shaping each
// grid's visible rows and emitting the per-grid draw records the render
// pipelines consume (background fills, monochrome glyphs, emoji
// glyphs, decoration lines).
package frame

import (
	"math"

	"github.com/novagrid/novagrid/grid"
	"github.com/novagrid/novagrid/scroll"
	"github.com/novagrid/novagrid/text"
	"github.com/novagrid/novagrid/ui"
)

// CellFillRect is one background rectangle drawn by the cell-fill pass.
type CellFillRect struct {
	Rect  Rect
	Color ui.RGB
	Alpha float32
}

// GlyphRect is one glyph quad: its screen rectangle, the atlas rectangle
// to sample, and the color it's tinted with (ignored by the emoji pass,
// which samples the atlas's own color channels).
type GlyphRect struct {
	Dest  Rect
	Atlas text.Rect
	Color ui.RGB
	Alpha float32
}

// Buffers is one grid's complete set of draw records for this frame,
// plus the scissor rectangle every pass clips to.
type Buffers struct {
	Grid        int
	Scissor     Rect
	CellFill    []CellFillRect
	Monochrome  []GlyphRect
	Emoji       []GlyphRect
	Decoration  []CellFillRect
	Width       int // longest row, for auto-sized grids
}

// Metrics carries the pixel cell size and font metrics the builder needs
// to place glyphs, shared across every grid in a frame.
type Metrics struct {
	CellWidth  float32
	CellHeight float32
	Ascent     float32
	// UnderlineOffset is the distance below the baseline the underline
	// decoration is drawn at; StrokeSize is its thickness in pixels.
	UnderlineOffset float32
	StrokeSize      float32
}

// Builder shapes grid contents into Buffers using a font cache and an
// ordered font cascade.
type Builder struct {
	Cache    *text.Cache
	Families []text.Family
	Metrics  Metrics
}

// NewBuilder constructs a Builder over a shared font cache and cascade.
func NewBuilder(cache *text.Cache, families []text.Family, metrics Metrics) *Builder {
	return &Builder{Cache: cache, Families: families, Metrics: metrics}
}

// Build shapes every row of a grid (consulting its scroll history for
// smooth-scroll retained rows) into Buffers, clipped against target's
// pixel size using the grid's resolved screen position.
func (b *Builder) Build(state *ui.State, hist *scroll.History, gridID int, targetW, targetH float32) (*Buffers, error) {
	g := state.Grids[gridID]
	if g == nil {
		return nil, nil
	}
	pos, ok := state.Position(gridID)
	if !ok {
		return nil, nil
	}

	offsetX := float32(pos.Col) * b.Metrics.CellWidth
	offsetY := float32(pos.Row) * b.Metrics.CellHeight
	scissorX, scissorW := Scissor(offsetX, float32(g.Width), b.Metrics.CellWidth, targetW)
	scissorY, scissorH := Scissor(offsetY, float32(g.Height), b.Metrics.CellHeight, targetH)

	buf := &Buffers{
		Grid:    gridID,
		Scissor: Rect{X: scissorX, Y: scissorY, W: scissorW, H: scissorH},
	}

	var rows []scroll.Row
	if hist != nil {
		rows = hist.Rows()
	}
	if len(rows) == 0 {
		for i, r := range g.Rows() {
			rows = append(rows, scroll.Row{RowIndex: i, Content: r})
		}
	}

	for _, row := range rows {
		if err := b.buildRow(state, buf, row, offsetX, offsetY); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (b *Builder) buildRow(state *ui.State, buf *Buffers, row scroll.Row, offsetX, offsetY float32) error {
	tokens := make([]text.Token, 0, len(row.Content))
	col := 0
	width := 0
	for _, c := range row.Content {
		tokens = append(tokens, text.Token{Rune: c.Runes[0], Cell: col, HlID: uint64(c.Highlight)})
		w := grid.CellWidth(c)
		if w <= 0 {
			w = 1
		}
		col += w
	}
	width = col
	if width > buf.Width {
		buf.Width = width
	}

	clusters := text.Clusters(tokens)
	rowY := offsetY + float32(row.RowIndex)*b.Metrics.CellHeight

	for _, cluster := range clusters {
		hl := state.Highlights.Get(grid.HlId(cluster.HlID))
		resolved := state.Highlights.Resolve(grid.HlId(cluster.HlID))

		cellStartX := offsetX + float32(cluster.CellStart)*b.Metrics.CellWidth
		spanCells := float32(cluster.CellEnd - cluster.CellStart)

		if resolved.Bg != state.Highlights.DefaultBg {
			buf.CellFill = append(buf.CellFill, CellFillRect{
				Rect:  Rect{X: cellStartX, Y: rowY, W: spanCells * b.Metrics.CellWidth, H: b.Metrics.CellHeight},
				Color: resolved.Bg,
				Alpha: resolved.Alpha,
			})
		}

		style := text.FontStyle(hl.Bold, hl.Italic)
		fontIndex, resolvedStyle, ok := text.Cascade(b.Families, style, cluster.Runes)
		if !ok {
			continue
		}

		advanceX := cellStartX
		for _, r := range cluster.Runes {
			info, hit, err := b.Cache.Get(r, resolvedStyle, fontIndex)
			if err != nil {
				return err
			}
			if !hit {
				continue
			}

			destX := float32(math.Round(float64(advanceX + info.OffsetX)))
			destY := float32(math.Round(float64(rowY + info.OffsetY)))
			dest := Rect{X: destX, Y: destY, W: float32(info.Rect.W), H: float32(info.Rect.H)}
			glyph := GlyphRect{Dest: dest, Atlas: info.Rect, Color: resolved.Fg, Alpha: resolved.Alpha}

			switch info.Kind {
			case text.Monochrome:
				buf.Monochrome = append(buf.Monochrome, glyph)
			case text.Emoji:
				buf.Emoji = append(buf.Emoji, glyph)
			}

			if hl.Underline {
				buf.Decoration = append(buf.Decoration, CellFillRect{
					Rect: Rect{
						X: cellStartX,
						Y: rowY + b.Metrics.Ascent + b.Metrics.UnderlineOffset,
						W: spanCells * b.Metrics.CellWidth,
						H: maxF32(b.Metrics.StrokeSize, 1),
					},
					Color: resolved.Fg,
					Alpha: 1,
				})
			}

			advanceX += info.Advance
		}
	}
	return nil
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
