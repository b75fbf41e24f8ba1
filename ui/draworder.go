package ui

// DrawItem is one entry in the draw order: a grid id plus an optional
// z-index (only floating items carry one).
type DrawItem struct {
	Grid int
	Z    *int
}

// DrawOrder partitions into a normal prefix (bottom-up insertion order)
// and a floating suffix (ascending z, stable among equal z by recency).
type DrawOrder struct {
	items    []DrawItem
	boundary int // index where the floating suffix begins
}

// InsertNormal adds grid at the normal/floating boundary, bumping it
// (new normal windows draw above older ones but below every float).
func (d *DrawOrder) InsertNormal(gridID int) {
	d.Remove(gridID)
	d.items = append(d.items, DrawItem{})
	copy(d.items[d.boundary+1:], d.items[d.boundary:])
	d.items[d.boundary] = DrawItem{Grid: gridID}
	d.boundary++
}

// InsertFloating adds grid into the floating suffix at the position
// matching ascending z, stable among equal z by placing it after any
// existing equal-z entries (most-recent-insertion-last).
func (d *DrawOrder) InsertFloating(gridID, z int) {
	d.Remove(gridID)
	insertAt := len(d.items)
	for i := d.boundary; i < len(d.items); i++ {
		if d.items[i].Z != nil && *d.items[i].Z > z {
			insertAt = i
			break
		}
	}
	d.items = append(d.items, DrawItem{})
	copy(d.items[insertAt+1:], d.items[insertAt:])
	d.items[insertAt] = DrawItem{Grid: gridID, Z: &z}
}

// Remove drops gridID from the draw order, wherever it sits, and shrinks
// the normal/floating boundary if it was a normal item.
func (d *DrawOrder) Remove(gridID int) {
	for i, it := range d.items {
		if it.Grid == gridID {
			floating := i >= d.boundary
			d.items = append(d.items[:i], d.items[i+1:]...)
			if !floating {
				d.boundary--
			}
			return
		}
	}
}

// Items returns the full draw order, bottom-up: normal prefix then
// floating suffix.
func (d *DrawOrder) Items() []DrawItem {
	return d.items
}

// TopDown returns the draw order reversed, for hit-testing
// (grid_under_cursor walks from the topmost item down).
func (d *DrawOrder) TopDown() []DrawItem {
	out := make([]DrawItem, len(d.items))
	for i, it := range d.items {
		out[len(d.items)-1-i] = it
	}
	return out
}
