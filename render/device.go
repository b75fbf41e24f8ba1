// Package render owns the GPU device: window/surface creation, the
// offscreen targets every pipeline pass writes into, and the highlight
// and uniform bindings shared across passes.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Device owns the window-system surface and the GL context bound to it.
// Only the UI task ever touches a Device, matching the single-mutator
// concurrency model: no GPU resource crosses a goroutine boundary.
type Device struct {
	Window *glfw.Window
	Width  int
	Height int

	windowed struct {
		x, y, w, h int
	}
	fullscreen bool
}

// NewDevice creates a window of the given size with an OpenGL 3.3 core
// context current on the calling goroutine, and initializes the GL
// function pointers for that context.
func NewDevice(width, height int, title string) (*Device, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("render: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("render: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("render: gl init: %w", err)
	}

	return &Device{Window: win, Width: width, Height: height}, nil
}

// SetScissor restricts drawing to rect (device pixels, origin top-left
// as the rest of the pipeline uses, flipped to GL's bottom-left origin
// here), used by the passes that clip to a grid's rectangle.
func SetScissor(x, y, w, h float32, targetHeight int) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(float32(targetHeight)-y-h), int32(w), int32(h))
}

// ClearScissor disables scissoring for passes that draw full-screen.
func ClearScissor() {
	gl.Disable(gl.SCISSOR_TEST)
}

// Resize updates the tracked framebuffer size, called from the
// window-system's framebuffer-size callback.
func (d *Device) Resize(width, height int) {
	d.Width, d.Height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SwapBuffers presents the surface, called once per rendered frame
// after the gamma-blit pass.
func (d *Device) SwapBuffers() {
	d.Window.SwapBuffers()
}

// ShouldClose reports whether the window-system has requested the
// window close (e.g. the titlebar close button).
func (d *Device) ShouldClose() bool {
	return d.Window.ShouldClose()
}

// PollEvents drains the window-system's event queue. The UI task's only
// suspension points are here and in timed waits.
func PollEvents() {
	glfw.PollEvents()
}

// WaitEventsTimeout suspends until either a window-system event arrives
// or the timeout elapses, used when the frame Motion is Delay(d).
func WaitEventsTimeout(seconds float64) {
	glfw.WaitEventsTimeout(seconds)
}

// WaitEvents suspends indefinitely until a window-system event arrives,
// used when the frame Motion is Still.
func WaitEvents() {
	glfw.WaitEvents()
}

// SetFullscreen switches the window between windowed and borderless
// fullscreen on its current monitor, remembering the windowed geometry
// so it can restore exactly on the next toggle.
func (d *Device) SetFullscreen(full bool) {
	if full == d.fullscreen {
		return
	}
	if full {
		d.windowed.x, d.windowed.y = d.Window.GetPos()
		d.windowed.w, d.windowed.h = d.Window.GetSize()

		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		d.Window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		d.Window.SetMonitor(nil, d.windowed.x, d.windowed.y, d.windowed.w, d.windowed.h, glfw.DontCare)
	}
	d.fullscreen = full
}

// Fullscreen reports whether the window is currently in fullscreen mode.
func (d *Device) Fullscreen() bool {
	return d.fullscreen
}

// PostEmptyEvent wakes a WaitEvents/WaitEventsTimeout call blocked on
// the main thread from another goroutine -- used to unblock the UI
// task's wait as soon as the editor-reader goroutine queues a
// notification or request, rather than leaving it stuck until the next
// real window-system event.
func PostEmptyEvent() {
	glfw.PostEmptyEvent()
}

// Close tears down the window and terminates glfw.
func (d *Device) Close() {
	d.Window.Destroy()
	glfw.Terminate()
}

// compileShader compiles a single shader stage, returning a descriptive
// error including the GL info log on failure.
func compileShader(source string, stage uint32) (uint32, error) {
	sh := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
		return 0, fmt.Errorf("render: compile shader: %s", string(log))
	}
	return sh, nil
}

// NewProgram links a vertex+fragment shader pair into a usable program.
func NewProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(prog, logLen, nil, &log[0])
		return 0, fmt.Errorf("render: link program: %s", string(log))
	}
	return prog, nil
}
