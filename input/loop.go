package input

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/novagrid/novagrid/anim"
	"github.com/novagrid/novagrid/event"
	"github.com/novagrid/novagrid/frame"
	"github.com/novagrid/novagrid/render"
	"github.com/novagrid/novagrid/render/pipeline"
	"github.com/novagrid/novagrid/rpc"
	"github.com/novagrid/novagrid/scroll"
	"github.com/novagrid/novagrid/ui"
)

// Loop ties together the RPC endpoint, UI state machine, animation
// clock, frame builder, and render pipeline graph into the redraw-flush
// contract: every redraw notification feeds the decode and state layers,
// and a flush drives one rendered frame.
type Loop struct {
	Endpoint *rpc.Endpoint
	State    *ui.State
	Clock    *anim.Clock
	Builder  *frame.Builder
	Graph    *pipeline.Graph
	Device   *render.Device
	Targets  *render.Targets

	CellWidth, CellHeight float32
	Gamma                 float32
	Transparent           bool

	// ScrollSpeed multiplies the per-frame Δt fed to each grid's scroll
	// history before it relaxes toward settled, letting the editor tune
	// how quickly a smooth-scroll animates without changing the refresh
	// rate itself. Zero behaves as 1 (unscaled).
	ScrollSpeed float32

	// CursorSpeed, when nonzero, enables an exponential ease of the
	// cursor quad toward its target cell instead of snapping there every
	// frame; it is a rate in 1/seconds (higher settles faster).
	CursorSpeed float32

	// RawInput, when set, bypasses Encode's named-key translation and
	// forwards the GLFW key code and modifier mask instead of a
	// <CSAD-KEY> sequence, for callers that want unmodified key events.
	RawInput bool

	// FrameEvents, when set, emits a notification after every flushed
	// frame, letting the editor side observe render cadence.
	FrameEvents bool

	// BgOverride, when Set, replaces the default-fill pass's clear color
	// (otherwise opaque black) with a caller-chosen color.
	BgOverride struct {
		Set   bool
		Color [4]float32
	}

	cursorBlink              anim.Blink
	cursorPrevX, cursorPrevY float32
	cursorValid              bool
	monoAtlasTex             uint32
	colorAtlasTex            uint32
	atlasRevision            uint64

	// LastMotion and NextWakeup are the outcome of the most recent
	// Redraw call. The caller's main loop reads them after every
	// notification batch (and after any timer-driven Redraw of its own)
	// to decide between polling immediately, blocking indefinitely, or
	// waking at NextWakeup.
	LastMotion anim.Motion
	NextWakeup time.Time
}

// NewLoop wires the already-constructed pieces into a Loop. Construction
// of each piece (compiling shaders, loading fonts, spawning the editor
// process) is the caller's responsibility -- Loop only orchestrates.
func NewLoop(ep *rpc.Endpoint, state *ui.State, clock *anim.Clock, builder *frame.Builder, graph *pipeline.Graph, device *render.Device, targets *render.Targets, cellW, cellH float32) *Loop {
	return &Loop{
		Endpoint:   ep,
		State:      state,
		Clock:      clock,
		Builder:    builder,
		Graph:      graph,
		Device:     device,
		Targets:    targets,
		CellWidth:  cellW,
		CellHeight: cellH,
		Gamma:      2.2,
	}
}

// HandleNotification routes one decoded RPC notification: "redraw"
// batches are decoded and fed to the state machine; any neophyte.* custom
// notification is out of this method's scope (handled by the caller if
// it cares).
func (l *Loop) HandleNotification(method string, params []interface{}) error {
	if method != "redraw" {
		return nil
	}
	for _, raw := range params {
		entry, ok := raw.([]interface{})
		if !ok || len(entry) == 0 {
			continue
		}
		name, ok := entry[0].(string)
		if !ok {
			continue
		}
		occurrences := make([][]interface{}, 0, len(entry)-1)
		for _, occ := range entry[1:] {
			if args, ok := occ.([]interface{}); ok {
				occurrences = append(occurrences, args)
			}
		}
		events, _ := event.DecodeBatch(name, occurrences)
		for _, ev := range events {
			l.State.Process(ev)
		}
	}

	if l.State.DidFlush {
		return l.Redraw()
	}
	return nil
}

// Redraw executes one rendered frame: advances the animation clock,
// syncs any pending scroll deltas into scroll history, rebuilds the
// buffers of every grid in the draw order (dirty bits are not
// consulted), and runs the pipeline graph. The Motion driving the
// caller's next wakeup decision is stored in LastMotion and NextWakeup.
func (l *Loop) Redraw() error {
	dt := l.Clock.Tick(time.Now())

	var buffers []*frame.Buffers
	var motions []anim.Motion

	scrollDt := dt.Seconds()
	if l.ScrollSpeed > 0 {
		scrollDt *= float64(l.ScrollSpeed)
	}

	for _, item := range l.State.DrawOrder.Items() {
		gridID := item.Grid
		frame.SyncScroll(l.State, l.State.Histories, gridID)

		hist := l.State.Histories[gridID]
		if hist != nil {
			m := hist.Advance(scrollDt)
			if m == scroll.Animating {
				motions = append(motions, anim.Animating)
			}
		}

		buf, err := l.Builder.Build(l.State, hist, gridID, float32(l.Targets.Width), float32(l.Targets.Height))
		if err != nil {
			return fmt.Errorf("input: build frame for grid %d: %w", gridID, err)
		}
		buffers = append(buffers, buf)
	}

	cursor, cursorMotion, cursorDeadline := l.cursorShape(dt.Seconds())
	if cursorMotion == anim.Animating {
		motions = append(motions, anim.Animating)
	}
	l.syncAtlasTextures()

	clear := [4]float32{0, 0, 0, 1}
	if l.BgOverride.Set {
		clear = l.BgOverride.Color
	}
	mono, color := l.Builder.Cache.Mono, l.Builder.Cache.Color
	l.Graph.Execute(l.Targets, buffers, l.monoAtlasTex, l.colorAtlasTex, mono.Side, color.Side, clear, cursor, l.Gamma, l.Transparent)
	l.Device.SwapBuffers()
	l.State.ClearDirty()

	overall := anim.Combine(append(motions, cursorMotion)...)
	l.LastMotion = overall
	if overall == anim.Delay {
		l.NextWakeup = cursorDeadline
	} else {
		l.NextWakeup = time.Time{}
	}
	if l.FrameEvents {
		l.Endpoint.Notify("neophyte.frame", nil)
	}
	return nil
}

// syncAtlasTextures re-uploads the font cache's atlases to the GPU
// whenever its revision counter has advanced since the last frame,
// matching the font cache's "bump that cache's revision, read by the GPU
// bind-group updater" contract.
func (l *Loop) syncAtlasTextures() {
	if l.Builder.Cache.Revision == l.atlasRevision {
		return
	}
	mono, color := l.Builder.Cache.Mono, l.Builder.Cache.Color
	l.monoAtlasTex = render.UploadAtlasTexture(l.monoAtlasTex, mono.Side, mono.Channels, mono.Pixels)
	l.colorAtlasTex = render.UploadAtlasTexture(l.colorAtlasTex, color.Side, color.Channels, color.Pixels)
	l.atlasRevision = l.Builder.Cache.Revision
}

// cursorShape resolves the cursor quad for this frame plus the Motion/
// deadline pair so Redraw can fold it into the overall signal without a
// second now-dependent call (which could observe a different blink
// phase than the one just rendered). When CursorSpeed is set the quad
// eases toward its target cell rather than snapping there.
func (l *Loop) cursorShape(dt float64) (pipeline.CursorInfo, anim.Motion, time.Time) {
	mode := l.State.Modes.Active()
	now := time.Now()
	visible, blinkMotion, next := l.cursorBlink.Visible(now)
	if !visible {
		return pipeline.CursorInfo{}, blinkMotion, next
	}

	gridID := l.State.Cursor.Grid
	pos, ok := l.State.Position(gridID)
	if !ok {
		return pipeline.CursorInfo{}, blinkMotion, next
	}
	targetX := (float32(pos.Col) + float32(l.State.Cursor.Pos.Col)) * l.CellWidth
	targetY := (float32(pos.Row) + float32(l.State.Cursor.Pos.Row)) * l.CellHeight

	cellX, cellY := targetX, targetY
	motion := blinkMotion
	if l.CursorSpeed > 0 && l.cursorValid {
		var easeMotion anim.Motion
		cellX, cellY, easeMotion = l.easeCursor(targetX, targetY, dt)
		motion = anim.Combine(blinkMotion, easeMotion)
	}
	l.cursorPrevX, l.cursorPrevY, l.cursorValid = cellX, cellY, true

	shape := pipeline.ShapeFromMode(mode.CursorShape, mode.CellPercentage, cellX, cellY, l.CellWidth, l.CellHeight)
	return pipeline.CursorInfo{Rect: shape}, motion, next
}

// easeCursor steps the cursor quad's pixel position a fraction of the
// way toward target, the fraction set by CursorSpeed (1/seconds, so
// higher settles faster); once within a quarter pixel it snaps and
// reports Still.
func (l *Loop) easeCursor(targetX, targetY float32, dt float64) (float32, float32, anim.Motion) {
	dx := targetX - l.cursorPrevX
	dy := targetY - l.cursorPrevY
	if dx*dx+dy*dy < 0.0625 {
		return targetX, targetY, anim.Still
	}
	t := l.CursorSpeed * float32(dt)
	if t > 1 {
		t = 1
	}
	return l.cursorPrevX + dx*t, l.cursorPrevY + dy*t, anim.Animating
}

// OnKey forwards a keyboard event to the editor as nvim_input, ignoring
// key-release events (only Press and Repeat produce input). In
// RawInput mode the GLFW key code and modifier mask are sent as a
// neophyte.raw_key notification instead of a translated <CSAD-KEY>
// sequence.
func (l *Loop) OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey, char rune) {
	if action == glfw.Release {
		return
	}
	if l.RawInput {
		l.Endpoint.Notify("neophyte.raw_key", []interface{}{int(key), int(mods)})
		return
	}
	seq := Encode(key, mods, char)
	if seq == "" {
		return
	}
	l.Endpoint.Notify("nvim_input", []interface{}{seq})
}

// OnMouseButton forwards a mouse press/release to the editor, resolving
// which grid and cell the pixel position falls in via grid_under_cursor.
func (l *Loop) OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, pixelX, pixelY float64) {
	btn, ok := ButtonFromGLFW(button)
	if !ok {
		return
	}
	act := ActionPress
	if action == glfw.Release {
		act = ActionRelease
	}
	l.sendMouse(btn, act, mods, pixelX, pixelY)
}

// OnMouseMove forwards a drag (button held) to the editor.
func (l *Loop) OnMouseMove(button glfw.MouseButton, mods glfw.ModifierKey, pixelX, pixelY float64) {
	btn, ok := ButtonFromGLFW(button)
	if !ok {
		return
	}
	l.sendMouse(btn, ActionDrag, mods, pixelX, pixelY)
}

// OnScroll forwards a wheel event to the editor.
func (l *Loop) OnScroll(dx, dy float64, mods glfw.ModifierKey, pixelX, pixelY float64) {
	act, ok := WheelAction(dx, dy)
	if !ok {
		return
	}
	l.sendMouse(ButtonWheel, act, mods, pixelX, pixelY)
}

func (l *Loop) sendMouse(btn MouseButton, act MouseAction, mods glfw.ModifierKey, pixelX, pixelY float64) {
	gridID, row, col, ok := l.State.GridUnderCursor(pixelX, pixelY, float64(l.CellWidth), float64(l.CellHeight))
	if !ok {
		return
	}
	l.Endpoint.Notify("nvim_input_mouse", []interface{}{
		string(btn), string(act), ModMask(mods), gridID, row, col,
	})
}
