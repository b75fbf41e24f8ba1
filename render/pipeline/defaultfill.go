// Package pipeline implements the eight fixed render passes,
// executed in order against render.Targets every frame.
package pipeline

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/render"
)

const defaultFillVertexShader = `
#version 330 core
void main() {
	vec2 corners[6] = vec2[6](
		vec2(-1,-1), vec2(1,-1), vec2(-1,1),
		vec2(-1,1),  vec2(1,-1), vec2(1,1)
	);
	gl_Position = vec4(corners[gl_VertexID], 0.999, 1.0);
}
`

const defaultFillFragmentShader = `
#version 330 core
uniform vec4 uColor;
out vec4 fragColor;
void main() { fragColor = uColor; }
`

// DefaultFill clears the color target to the (gamma-corrected) default
// background and writes depth so later floating-window draws sort
// correctly against it.
type DefaultFill struct {
	prog uint32
}

// NewDefaultFill compiles the pass's shader program.
func NewDefaultFill() (*DefaultFill, error) {
	prog, err := render.NewProgram(defaultFillVertexShader, defaultFillFragmentShader)
	if err != nil {
		return nil, err
	}
	return &DefaultFill{prog: prog}, nil
}

// Draw clears targets.Color to bg (already gamma-encoded by the
// caller) and sets depth to 1.0 (farthest) everywhere, establishing the
// z=0 floor every grid's cell-fill pass draws in front of.
func (d *DefaultFill) Draw(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy releases the shader program.
func (d *DefaultFill) Destroy() {
	gl.DeleteProgram(d.prog)
}
