// Package scroll implements the per-grid scrolling history: a stack
// of retained prior contents that drives smooth-scroll animation via
// partial retention of the rows a new scroll hasn't yet overwritten.
package scroll

import (
	"math"

	"github.com/novagrid/novagrid/grid"
)

// Part is one retained snapshot of a grid's prior contents. Offset is the
// vertical displacement from the current frame's coordinate system;
// Start/End is the still-visible row range within Contents.
type Part struct {
	Contents    *grid.Grid
	Offset      int
	Start, End  int
}

// Visible reports the part's visible range as a Range.
func (p Part) Visible() Range {
	return Range{p.Start, p.End}
}

// History is the scrolling stack for a single grid, plus the animation
// parameter t that relaxes toward zero as the scroll settles.
type History struct {
	parts []Part
	t     float64
}

// T returns the current animation accumulator, in cell units. Zero means
// the scroll has fully settled.
func (h *History) T() float64 {
	return h.t
}

// Push records a new scroll of delta rows against newContents (the grid's
// contents immediately after the scroll, used as the newest history
// part). This is the core of smooth scrolling: every existing part's
// offset shifts by -delta, shrinks to the rows not yet covered by newer
// parts, and is dropped once fully covered or once its height no longer
// matches the live grid.
func (h *History) Push(newContents *grid.Grid, delta int) {
	height := newContents.Height
	if delta > height {
		delta = height
	} else if delta < -height {
		delta = -height
	}

	coverage := Range{0, height}
	haveCoverage := true
	kept := h.parts[:0]
	for _, p := range h.parts {
		p.Offset -= delta
		gridRange := Range{p.Offset, p.Offset + p.Contents.Height}

		var uncovered Range
		ok := true
		if haveCoverage {
			uncovered, ok = gridRange.Uncovered(coverage)
		} else {
			uncovered = gridRange
		}

		if !ok || p.Contents.Height != height {
			continue
		}

		p.Start = uncovered.Start - p.Offset
		p.End = uncovered.End - p.Offset
		kept = append(kept, p)

		if haveCoverage {
			coverage = Union(coverage, gridRange)
		} else {
			coverage = gridRange
			haveCoverage = true
		}
	}

	newPart := Part{Contents: newContents, Offset: 0, Start: 0, End: height}
	h.parts = append([]Part{newPart}, kept...)
	h.t += float64(delta)
}

// Motion reports whether a grid's scroll animation is still in motion.
type Motion int

const (
	Still Motion = iota
	Animating
)

// Advance relaxes t toward zero by at most one step of size dt (seconds)
// and reports whether the grid is still animating. Once |t| drops below
// 0.025 it snaps to zero and every part but the front (newest) one is
// dropped, since only the newest part is needed once the scroll has
// settled.
func (h *History) Advance(dt float64) Motion {
	if math.Abs(h.t) < 0.025 {
		h.t = 0
		if len(h.parts) > 1 {
			h.parts = h.parts[:1]
		}
		return Still
	}

	sign := 1.0
	if h.t < 0 {
		sign = -1.0
	}
	abs := math.Abs(h.t)
	step := math.Min(abs, math.Pow(math.Log1p(abs), 1.5)*dt)
	h.t -= sign * step
	return Animating
}

// Row is one visible row yielded by Rows: RowIndex is the row's position
// in the current frame's coordinate system (part-local index + offset).
type Row struct {
	RowIndex int
	Content  grid.Row
}

// Rows enumerates every visible row across all retained parts. Because
// Push maintains disjoint visible ranges, no row index is ever yielded
// twice.
func (h *History) Rows() []Row {
	var out []Row
	for _, p := range h.parts {
		rows := p.Contents.Rows()
		for i := p.Start; i < p.End; i++ {
			if i < 0 || i >= len(rows) {
				continue
			}
			out = append(out, Row{RowIndex: i + p.Offset, Content: rows[i]})
		}
	}
	return out
}

// Reset drops all retained parts and sets t back to zero.
func (h *History) Reset() {
	h.parts = nil
	h.t = 0
}
