package pipeline

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/frame"
	"github.com/novagrid/novagrid/render"
)

// Graph owns every pass and runs them in a fixed order.
type Graph struct {
	DefaultFill *DefaultFill
	CellFill    *CellFill
	Monochrome  *Monochrome
	Emoji       *Emoji
	Decoration  *Decoration
	Blend       *Blend
	Cursor      *Cursor
	Blit        *Blit
}

// NewGraph compiles every pass's shader program.
func NewGraph() (*Graph, error) {
	var g Graph
	var err error
	if g.DefaultFill, err = NewDefaultFill(); err != nil {
		return nil, err
	}
	if g.CellFill, err = NewCellFill(); err != nil {
		return nil, err
	}
	if g.Monochrome, err = NewMonochrome(); err != nil {
		return nil, err
	}
	if g.Emoji, err = NewEmoji(); err != nil {
		return nil, err
	}
	if g.Decoration, err = NewDecoration(); err != nil {
		return nil, err
	}
	if g.Blend, err = NewBlend(); err != nil {
		return nil, err
	}
	if g.Cursor, err = NewCursor(); err != nil {
		return nil, err
	}
	if g.Blit, err = NewBlit(); err != nil {
		return nil, err
	}
	return &g, nil
}

// CursorInfo carries the resolved on-screen cursor rectangle for this
// frame, or a zero-sized rect when the cursor shouldn't be drawn
// (blinked off, or no grid under the cursor yet).
type CursorInfo struct {
	Rect Shape
}

// Execute runs the eight passes in order against a frame's worth of
// per-grid buffers, in the draw order the UI state maintains (so floating windows
// composite after their base grid). bg is the gamma-corrected default
// background clear color; gamma and transparent configure the final
// blit.
func (g *Graph) Execute(targets *render.Targets, buffers []*frame.Buffers, monoAtlasTex, colorAtlasTex uint32, monoAtlasSide, colorAtlasSide int, bg [4]float32, cursor CursorInfo, gamma float32, transparent bool) {
	targetW, targetH := float32(targets.Width), float32(targets.Height)

	targets.BindForColor()
	g.DefaultFill.Draw(bg[0], bg[1], bg[2], bg[3])

	for i, buf := range buffers {
		if buf == nil {
			continue
		}
		z := float32(i) / float32(max(len(buffers), 1))
		targets.BindForColor()
		g.CellFill.Draw(buf.CellFill, targetW, targetH, buf.Scissor, z)
	}

	targets.BindForMonochrome()
	clearMonochrome()
	for _, buf := range buffers {
		if buf == nil {
			continue
		}
		g.Monochrome.SetAtlas(monoAtlasTex)
		g.Monochrome.Draw(buf.Monochrome, monoAtlasSide, targetW, targetH, buf.Scissor)
	}

	targets.BindForColor()
	for _, buf := range buffers {
		if buf == nil {
			continue
		}
		g.Emoji.SetAtlas(colorAtlasTex)
		g.Emoji.Draw(buf.Emoji, colorAtlasSide, targetW, targetH, buf.Scissor)
	}

	for i, buf := range buffers {
		if buf == nil {
			continue
		}
		z := float32(i) / float32(max(len(buffers), 1))
		targets.BindForColor()
		g.Decoration.Draw(buf.Decoration, targetW, targetH, buf.Scissor, z)
	}

	targets.BindForColor()
	g.Blend.Draw(targets.Monochrome)

	targets.BindForColor()
	g.Cursor.Draw(cursor.Rect, targets.Monochrome, targetW, targetH)

	g.Blit.Draw(targets.Color, gamma, transparent)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clearMonochrome clears the currently bound monochrome draw target to
// transparent, matching the blend pass's cleared-to-transparent requirement.
func clearMonochrome() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Destroy releases every pass's GL resources.
func (g *Graph) Destroy() {
	g.DefaultFill.Destroy()
	g.CellFill.Destroy()
	g.Monochrome.Destroy()
	g.Emoji.Destroy()
	g.Decoration.Destroy()
	g.Blend.Destroy()
	g.Cursor.Destroy()
	g.Blit.Destroy()
}
