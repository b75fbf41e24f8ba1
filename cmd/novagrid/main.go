// Command novagrid is the GPU-accelerated frontend binary: it spawns the
// editor as a child process speaking the redraw-RPC protocol over its
// stdio, and drives a window displaying what the editor sends.
//
// Flag parsing and process wiring are deliberately unlayered (no config
// file, no env framework) -- see the "Configuration" note next to this
// file's sibling packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/novagrid/novagrid/anim"
	"github.com/novagrid/novagrid/frame"
	"github.com/novagrid/novagrid/input"
	"github.com/novagrid/novagrid/render"
	"github.com/novagrid/novagrid/render/pipeline"
	"github.com/novagrid/novagrid/rpc"
	"github.com/novagrid/novagrid/text"
	"github.com/novagrid/novagrid/ui"
)

func main() {
	editor := flag.String("editor", "nvim", "path to the editor binary")
	cols := flag.Int("cols", 100, "initial grid width in cells")
	rows := flag.Int("rows", 30, "initial grid height in cells")
	cellWidth := flag.Float64("cell-width", 9, "cell width in pixels")
	cellHeight := flag.Float64("cell-height", 18, "cell height in pixels")
	em := flag.Float64("em", 15, "font size in pixels")
	fontRegular := flag.String("font", "", "path to the regular font file (required)")
	fontBold := flag.String("font-bold", "", "path to the bold font file")
	fontItalic := flag.String("font-italic", "", "path to the italic font file")
	fontBoldItalic := flag.String("font-bold-italic", "", "path to the bold-italic font file")
	gamma := flag.Float64("gamma", 2.2, "display gamma for the final blit")
	transparent := flag.Bool("transparent", false, "premultiply alpha for a transparent window")
	title := flag.String("title", "novagrid", "window title")
	flag.Parse()

	if *fontRegular == "" {
		fmt.Fprintln(os.Stderr, "novagrid: -font is required")
		os.Exit(1)
	}

	families, err := loadFamilies(*em, *fontRegular, *fontBold, *fontItalic, *fontBoldItalic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: %v\n", err)
		os.Exit(1)
	}

	childStdin, childStdout, child, err := spawnEditor(*editor, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: %v\n", err)
		os.Exit(1)
	}

	ep := rpc.NewEndpoint(childStdout, childStdin)
	go func() {
		if err := ep.RunWriter(); err != nil {
			log.Printf("novagrid: writer: %v", err)
		}
	}()

	device, err := render.NewDevice(int(float64(*cols)**cellWidth), int(float64(*rows)**cellHeight), *title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: %v\n", err)
		os.Exit(1)
	}
	defer device.Close()

	targets, err := render.NewTargets(device.Width, device.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: %v\n", err)
		os.Exit(1)
	}
	graph, err := pipeline.NewGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: %v\n", err)
		os.Exit(1)
	}

	cache := text.NewCache(families)
	metrics := frame.Metrics{
		CellWidth:       float32(*cellWidth),
		CellHeight:      float32(*cellHeight),
		Ascent:          float32(*em) * 0.8,
		UnderlineOffset: float32(*em) * 0.1,
		StrokeSize:      1,
	}
	builder := frame.NewBuilder(cache, families, metrics)

	state := ui.NewState()
	clock := anim.NewClock(time.Second / 60)
	loop := input.NewLoop(ep, state, clock, builder, graph, device, targets, float32(*cellWidth), float32(*cellHeight))
	loop.Gamma = float32(*gamma)
	loop.Transparent = *transparent

	proto := newProtocol(loop, families)
	notifyCh := make(chan notification, 64)
	requestCh := make(chan request)

	go func() {
		err := ep.RunReader(func(method string, params []interface{}) (interface{}, error) {
			return proto.dispatch(method, params, notifyCh, requestCh)
		})
		if err != nil {
			log.Printf("novagrid: reader: %v", err)
		}
		device.Window.SetShouldClose(true)
	}()

	registerCallbacks(device.Window, loop)

	if _, err := ep.Request("nvim_ui_attach", []interface{}{*cols, *rows, map[string]interface{}{
		"ext_linegrid":  true,
		"ext_multigrid": true,
		"rgb":           true,
	}}); err != nil {
		fmt.Fprintf(os.Stderr, "novagrid: nvim_ui_attach: %v\n", err)
		os.Exit(1)
	}

	runEventLoop(device, loop, notifyCh, requestCh)

	ep.Close()
	_ = child.Wait()
}

// spawnEditor starts the editor as a child process, wiring its stdin
// and stdout as the RPC transport; stderr is inherited so editor
// diagnostics reach the terminal novagrid was launched from. The
// process's own embedding handshake and argv construction are the
// editor's concern, not this frontend's.
func spawnEditor(path string, extraArgs []string) (childStdin *os.File, childStdout *os.File, child *exec.Cmd, err error) {
	args := append([]string{"--embed"}, extraArgs...)
	cmd := exec.Command(path, args...)
	cmd.Stderr = os.Stderr

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, nil, fmt.Errorf("start %s: %w", path, err)
	}

	stdinFile, _ := stdinPipe.(*os.File)
	stdoutFile, _ := stdoutPipe.(*os.File)
	if stdinFile == nil || stdoutFile == nil {
		return nil, nil, nil, fmt.Errorf("editor pipes were not files")
	}
	return stdinFile, stdoutFile, cmd, nil
}

func loadFamilies(em float64, regular, bold, italic, boldItalic string) ([]text.Family, error) {
	var fam text.Family
	var err error
	if fam.Faces[text.Regular], err = loadFace(regular, em); err != nil {
		return nil, err
	}
	if bold != "" {
		if fam.Faces[text.Bold], err = loadFace(bold, em); err != nil {
			return nil, err
		}
	}
	if italic != "" {
		if fam.Faces[text.Italic], err = loadFace(italic, em); err != nil {
			return nil, err
		}
	}
	if boldItalic != "" {
		if fam.Faces[text.BoldItalic], err = loadFace(boldItalic, em); err != nil {
			return nil, err
		}
	}
	return []text.Family{fam}, nil
}

func loadFace(path string, em float64) (*text.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	face, err := text.LoadFace(data, em)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return face, nil
}

// registerCallbacks wires window-system input to the Loop. GLFW splits
// key input into two callbacks: the key callback reports named keys
// (and held modifiers) with no character, while the char callback
// reports the OS-composed character for printable keys (already
// shifted) -- Encode relies on exactly this split to avoid double
// applying shift. Ctrl suppresses the char callback entirely, so the
// key callback reconstructs the literal letter for Ctrl-chords.
func registerCallbacks(win *glfw.Window, loop *input.Loop) {
	pressed := map[glfw.MouseButton]bool{}

	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		var char rune
		if mods&glfw.ModControl != 0 && key >= glfw.KeyA && key <= glfw.KeyZ {
			char = rune(key-glfw.KeyA) + 'a'
		}
		loop.OnKey(key, action, mods, char)
	})
	win.SetCharCallback(func(w *glfw.Window, r rune) {
		loop.OnKey(glfw.KeyUnknown, glfw.Press, 0, r)
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		pressed[button] = action == glfw.Press
		x, y := w.GetCursorPos()
		loop.OnMouseButton(button, action, mods, x, y)
	})
	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		for button, held := range pressed {
			if held {
				loop.OnMouseMove(button, 0, x, y)
			}
		}
	})
	win.SetScrollCallback(func(w *glfw.Window, dx, dy float64) {
		x, y := w.GetCursorPos()
		loop.OnScroll(dx, dy, currentMods(w), x, y)
	})
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		loop.Device.Resize(width, height)
		loop.Targets.Resize(width, height)
	})
}

// currentMods reconstructs a ModifierKey from live key state, for
// callbacks (scroll) that GLFW doesn't pass modifiers to directly.
func currentMods(w *glfw.Window) glfw.ModifierKey {
	var mods glfw.ModifierKey
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press || w.GetKey(glfw.KeyRightShift) == glfw.Press {
		mods |= glfw.ModShift
	}
	if w.GetKey(glfw.KeyLeftControl) == glfw.Press || w.GetKey(glfw.KeyRightControl) == glfw.Press {
		mods |= glfw.ModControl
	}
	if w.GetKey(glfw.KeyLeftAlt) == glfw.Press || w.GetKey(glfw.KeyRightAlt) == glfw.Press {
		mods |= glfw.ModAlt
	}
	if w.GetKey(glfw.KeyLeftSuper) == glfw.Press || w.GetKey(glfw.KeyRightSuper) == glfw.Press {
		mods |= glfw.ModSuper
	}
	return mods
}

// runEventLoop is the UI task: the sole mutator of UI and GPU
// state. It drains notifications and custom requests queued by the
// editor-reader goroutine, then polls or waits according to the
// Motion the last Redraw produced.
func runEventLoop(device *render.Device, loop *input.Loop, notifyCh chan notification, requestCh chan request) {
	for !device.ShouldClose() {
		drainPending(notifyCh, requestCh)
		if device.ShouldClose() {
			return
		}

		switch loop.LastMotion {
		case anim.Animating:
			if err := loop.Redraw(); err != nil {
				log.Printf("novagrid: redraw: %v", err)
			}
			render.PollEvents()
		case anim.Delay:
			d := time.Until(loop.NextWakeup)
			if d < 0 {
				d = 0
			}
			render.WaitEventsTimeout(d.Seconds())
			if err := loop.Redraw(); err != nil {
				log.Printf("novagrid: redraw: %v", err)
			}
		default:
			render.WaitEvents()
		}
	}
}

func drainPending(notifyCh chan notification, requestCh chan request) {
	for {
		select {
		case n := <-notifyCh:
			if err := n.apply(); err != nil {
				log.Printf("novagrid: %s: %v", n.method, err)
			}
		case r := <-requestCh:
			value, err := r.handle()
			r.reply <- requestResult{value: value, err: err}
		default:
			return
		}
	}
}
