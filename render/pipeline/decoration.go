package pipeline

import "github.com/novagrid/novagrid/frame"

// Decoration draws underline/strikethrough rects into the color target.
// It shares CellFill's instance layout and shader exactly -- a
// decoration rect is a colored rectangle like a background fill, just
// drawn after the glyph passes so it isn't occluded by them.
type Decoration struct {
	*CellFill
}

// NewDecoration compiles the pass's shader program.
func NewDecoration() (*Decoration, error) {
	c, err := NewCellFill()
	if err != nil {
		return nil, err
	}
	return &Decoration{CellFill: c}, nil
}

// Draw renders one grid's decoration rects.
func (d *Decoration) Draw(rects []frame.CellFillRect, targetW, targetH float32, scissor frame.Rect, z float32) {
	d.CellFill.Draw(rects, targetW, targetH, scissor, z)
}
