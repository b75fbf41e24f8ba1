package pipeline

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/frame"
	"github.com/novagrid/novagrid/render"
)

const cellFillVertexShader = `
#version 330 core
layout(location=0) in vec4 iRect;  // x, y, w, h (pixels)
layout(location=1) in vec4 iColor; // r, g, b, a (straight alpha)

uniform vec2 uTargetSize;
uniform float uZ; // shared by every instance in one draw call (one grid)

out vec4 vColor;

void main() {
	vec2 corners[6] = vec2[6](
		vec2(0,0), vec2(1,0), vec2(0,1),
		vec2(0,1), vec2(1,0), vec2(1,1)
	);
	vec2 corner = corners[gl_VertexID];
	vec2 px = iRect.xy + corner * iRect.zw;
	vec2 ndc = (px / uTargetSize) * 2.0 - 1.0;
	ndc.y = -ndc.y;
	gl_Position = vec4(ndc, 1.0 - uZ, 1.0);
	vColor = iColor;
}
`

const cellFillFragmentShader = `
#version 330 core
in vec4 vColor;
out vec4 fragColor;
void main() { fragColor = vec4(vColor.rgb * vColor.a, vColor.a); }
`

// cellFillStride is the byte size of one cell-fill/decoration instance:
// 8 float32s, rect(4) + color(4).
const cellFillStride = 8 * 4

// CellFill draws each grid's background rectangles into the color
// target, one instanced draw call per grid with that grid's scissor and
// z applied.
type CellFill struct {
	prog    uint32
	binding *render.QuadBinding
}

// NewCellFill compiles the shader and allocates the instance binding.
func NewCellFill() (*CellFill, error) {
	prog, err := render.NewProgram(cellFillVertexShader, cellFillFragmentShader)
	if err != nil {
		return nil, err
	}
	binding := render.NewQuadBinding(cellFillStride, []render.VertexAttrib{
		{Index: 0, Size: 4, Offset: 0},
		{Index: 1, Size: 4, Offset: 16},
	})
	return &CellFill{prog: prog, binding: binding}, nil
}

// Draw renders one grid's cell_fill rects (or its decoration rects,
// sharing the same instance layout) at the given z, clipped to scissor.
func (c *CellFill) Draw(rects []frame.CellFillRect, targetW, targetH float32, scissor frame.Rect, z float32) {
	if len(rects) == 0 {
		return
	}
	gl.UseProgram(c.prog)
	gl.Uniform2f(gl.GetUniformLocation(c.prog, gl.Str("uTargetSize\x00")), targetW, targetH)
	gl.Uniform1f(gl.GetUniformLocation(c.prog, gl.Str("uZ\x00")), z)
	render.SetScissor(scissor.X, scissor.Y, scissor.W, scissor.H, int(targetH))

	data := make([]float32, 0, len(rects)*8)
	for _, rc := range rects {
		quad := gglm.NewVec4(rc.Rect.X, rc.Rect.Y, rc.Rect.W, rc.Rect.H)
		color := gglm.NewVec4(float32(rc.Color.R)/255, float32(rc.Color.G)/255, float32(rc.Color.B)/255, rc.Alpha)
		data = append(data, quad.Data[:]...)
		data = append(data, color.Data[:]...)
	}
	count := c.binding.Upload(data)
	c.binding.Draw(count)
}

// Destroy releases the shader and instance binding.
func (c *CellFill) Destroy() {
	gl.DeleteProgram(c.prog)
	c.binding.Destroy()
}
