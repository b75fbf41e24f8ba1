package pipeline

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/render"
)

const cursorVertexShader = `
#version 330 core
uniform vec4 uRect;       // x, y, w, h (pixels)
uniform vec2 uTargetSize;
out vec2 vTexel;
void main() {
	vec2 corners[6] = vec2[6](
		vec2(0,0), vec2(1,0), vec2(0,1),
		vec2(0,1), vec2(1,0), vec2(1,1)
	);
	vec2 corner = corners[gl_VertexID];
	vec2 px = uRect.xy + corner * uRect.zw;
	vec2 ndc = (px / uTargetSize) * 2.0 - 1.0;
	ndc.y = -ndc.y;
	gl_Position = vec4(ndc, 0.0, 1.0);
	vTexel = px / uTargetSize;
}
`

const cursorFragmentShader = `
#version 330 core
in vec2 vTexel;
uniform sampler2D uMonochrome;
out vec4 fragColor;
void main() {
	vec4 under = texture(uMonochrome, vTexel);
	// Invert: wherever the glyph painted foreground, show the cell
	// background instead, and vice versa -- approximated here as a
	// straight color inversion of the sampled monochrome coverage.
	fragColor = vec4(1.0 - under.rgb, 1.0);
}
`

// Shape is the cursor's on-screen fraction of the cell, derived from the
// active mode's CursorShape/CellPercentage.
type Shape struct {
	X, Y, W, H float32 // pixel rect within the cell, already offset to screen space
}

// Cursor draws a rectangle at the cursor's grid cell sized per the
// active mode's shape, sampling the monochrome target at the same
// texel and inverting it so foreground-under-cursor becomes the cell
// background and vice versa (the canonical sample-and-invert
// formulation, chosen over a separate cursor-color highlight lookup).
type Cursor struct {
	prog uint32
}

// NewCursor compiles the pass's shader program.
func NewCursor() (*Cursor, error) {
	prog, err := render.NewProgram(cursorVertexShader, cursorFragmentShader)
	if err != nil {
		return nil, err
	}
	return &Cursor{prog: prog}, nil
}

// Draw renders the cursor rectangle. No-op if the cursor is hidden this
// frame (width or height zero).
func (c *Cursor) Draw(rect Shape, monochromeTex uint32, targetW, targetH float32) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	gl.UseProgram(c.prog)
	render.ClearScissor()
	gl.Uniform4f(gl.GetUniformLocation(c.prog, gl.Str("uRect\x00")), rect.X, rect.Y, rect.W, rect.H)
	gl.Uniform2f(gl.GetUniformLocation(c.prog, gl.Str("uTargetSize\x00")), targetW, targetH)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, monochromeTex)
	gl.Uniform1i(gl.GetUniformLocation(c.prog, gl.Str("uMonochrome\x00")), 1)
	gl.BindVertexArray(emptyVAO())
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Destroy releases the shader program.
func (c *Cursor) Destroy() {
	gl.DeleteProgram(c.prog)
}

// ShapeFromMode computes a cursor's on-screen rectangle from the active
// mode's shape and fill percentage, anchored at the cell's screen
// position (cellX, cellY) with size (cellW, cellH).
func ShapeFromMode(kind string, percentage int, cellX, cellY, cellW, cellH float32) Shape {
	frac := float32(percentage) / 100
	if frac <= 0 {
		frac = 1
	}
	switch kind {
	case "horizontal":
		h := cellH * frac
		return Shape{X: cellX, Y: cellY + cellH - h, W: cellW, H: h}
	case "vertical":
		return Shape{X: cellX, Y: cellY, W: cellW * frac, H: cellH}
	default: // "block"
		return Shape{X: cellX, Y: cellY, W: cellW, H: cellH}
	}
}
