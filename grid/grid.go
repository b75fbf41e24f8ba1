package grid

import "github.com/unilibs/uniwidth"

// HlId identifies a highlight attribute record. Zero is the default.
type HlId uint32

// Cell is one grid position: packed text plus the highlight id that
// styles it.
type Cell struct {
	Text      PackedChar
	Highlight HlId
}

// Grid is a row-major buffer of cells with a fixed (Width, Height) for the
// lifetime between resizes. Identified by a nonzero Id assigned by the
// owner (ui.State), not by Grid itself.
type Grid struct {
	Id     int
	Width  int
	Height int
	cells  []Cell

	// overflow holds multi-scalar cell text (combining sequences)
	// referenced by PackedChar index.
	overflow []string
}

// New creates an empty grid of the given id and size.
func New(id, width, height int) *Grid {
	g := &Grid{Id: id, Width: width, Height: height}
	g.cells = make([]Cell, width*height)
	return g
}

// Cell returns the cell at (row, col). Panics if out of bounds, matching
// the invariant that callers only address cells within Width/Height.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row*g.Width+col]
}

// SetCell writes the cell at (row, col).
func (g *Grid) SetCell(row, col int, c Cell) {
	g.cells[row*g.Width+col] = c
}

// Overflow returns the overflow-table string for a PackedChar index.
func (g *Grid) Overflow(index int) string {
	if index < 0 || index >= len(g.overflow) {
		return ""
	}
	return g.overflow[index]
}

// internString records s in the overflow table and returns a PackedChar
// referencing it. Used by GridLine when a cell's text exceeds one scalar.
func (g *Grid) internString(s string) (PackedChar, error) {
	idx := len(g.overflow)
	pc, err := PackedCharFromIndex(idx)
	if err != nil {
		return 0, err
	}
	g.overflow = append(g.overflow, s)
	return pc, nil
}

// Clear resets every cell to the zero value. Highlight tables are owned
// elsewhere and are never touched here.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Resize reallocates the grid to (width, height), preserving the overlap
// with the origin (0,0) and padding new area with default cells. The
// overflow table and highlight table are untouched.
func (g *Grid) Resize(width, height int) {
	next := make([]Cell, width*height)
	copyRows := min(g.Height, height)
	copyCols := min(g.Width, width)
	for row := 0; row < copyRows; row++ {
		srcOff := row * g.Width
		dstOff := row * width
		copy(next[dstOff:dstOff+copyCols], g.cells[srcOff:srcOff+copyCols])
	}
	g.cells = next
	g.Width = width
	g.Height = height
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Scroll moves the rectangle [top,bot)x[left,right) by rows rows. Positive
// rows moves content upward (row src copies to src-rows, iterating
// top+rows..bot forward); negative moves downward (iterating in reverse
// to avoid clobbering a row before it is read). The band invalidated by
// the move is left untouched: the caller (the editor) will re-emit
// GridLine for it.
func (g *Grid) Scroll(top, bot, left, right, rows int) {
	if rows == 0 {
		return
	}
	width := right - left
	if rows > 0 {
		for destRow := top; destRow < bot-rows; destRow++ {
			srcRow := destRow + rows
			g.copyRowSpan(destRow, srcRow, left, width)
		}
	} else {
		n := -rows
		for destRow := bot - 1; destRow >= top+n; destRow-- {
			srcRow := destRow - n
			g.copyRowSpan(destRow, srcRow, left, width)
		}
	}
}

func (g *Grid) copyRowSpan(destRow, srcRow, left, width int) {
	destOff := destRow*g.Width + left
	srcOff := srcRow*g.Width + left
	copy(g.cells[destOff:destOff+width], g.cells[srcOff:srcOff+width])
}

// RunCell is one element of the run-length-encoded list GridLine applies:
// Text may span more than one scalar (interned into the overflow table),
// HlId is optional (reuse the previous cell's highlight within this call
// when HasHl is false), and Repeat defaults to 1 when zero.
type RunCell struct {
	Text   string
	HasHl  bool
	Hl     HlId
	Repeat int
}

// GridLine applies a run-length-encoded list of cells starting at
// (row, colStart). An empty Text marks the right half of a wide glyph:
// it is stored as the zero PackedChar and skipped when iterating rows.
func (g *Grid) GridLine(row, colStart int, cells []RunCell) error {
	col := colStart
	var lastHl HlId
	haveLast := false
	for _, rc := range cells {
		hl := lastHl
		if rc.HasHl {
			hl = rc.Hl
		} else if !haveLast {
			hl = 0
		}
		lastHl = hl
		haveLast = true

		repeat := rc.Repeat
		if repeat <= 0 {
			repeat = 1
		}

		var pc PackedChar
		if rc.Text == "" {
			pc = 0
		} else if n := runeCount(rc.Text); n == 1 {
			pc = PackedCharFromRune([]rune(rc.Text)[0])
		} else {
			var err error
			pc, err = g.internString(rc.Text)
			if err != nil {
				return err
			}
		}

		for i := 0; i < repeat; i++ {
			if col >= g.Width {
				break
			}
			g.SetCell(row, col, Cell{Text: pc, Highlight: hl})
			col++
		}
	}
	return nil
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// CellContents is one cell's decoded text (as a rune iterator over the
// possibly-multi-scalar contents) plus its highlight, yielded by Rows.
type CellContents struct {
	Runes     []rune
	Highlight HlId
}

// Row is a single row's cell contents, indexed by column.
type Row []CellContents

// Rows returns every row's decoded contents, skipping empty cells (the
// right half of a wide glyph); callers clip to the visible height
// themselves.
func (g *Grid) Rows() []Row {
	rows := make([]Row, g.Height)
	for r := 0; r < g.Height; r++ {
		row := make(Row, 0, g.Width)
		for c := 0; c < g.Width; c++ {
			cell := g.Cell(r, c)
			if cell.Text.Empty() {
				continue
			}
			dec := cell.Text.Decode()
			var runes []rune
			if dec.IsIndex {
				runes = []rune(g.Overflow(dec.Index))
			} else {
				runes = []rune{dec.Rune}
			}
			row = append(row, CellContents{Runes: runes, Highlight: cell.Highlight})
		}
		rows[r] = row
	}
	return rows
}

// CellWidth returns the display width (0, 1, or 2 columns) of a cell's
// leading rune, used by the frame builder to decide cluster spans.
func CellWidth(c CellContents) int {
	if len(c.Runes) == 0 {
		return 0
	}
	return uniwidth.RuneWidth(c.Runes[0])
}
