package frame

import (
	"github.com/novagrid/novagrid/scroll"
	"github.com/novagrid/novagrid/ui"
)

// SyncScroll drains a grid's accumulated win_viewport scroll_delta and
// pushes it onto that grid's scroll history using the grid's current
// contents, once per rendered frame -- not per grid_scroll event, since
// a row-retention snapshot taken mid-batch would capture a
// partially-updated grid instead of the frame the editor actually
// intended to present.
func SyncScroll(state *ui.State, histories map[int]*scroll.History, gridID int) {
	delta := state.ConsumeScrollDelta(gridID)
	if delta == 0 {
		return
	}
	g := state.Grids[gridID]
	if g == nil {
		return
	}
	h, ok := histories[gridID]
	if !ok {
		h = &scroll.History{}
		histories[gridID] = h
	}
	h.Push(g, delta)
}
