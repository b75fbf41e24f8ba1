package pipeline

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/frame"
	"github.com/novagrid/novagrid/render"
)

// glyphInstanceStride is 12 floats per glyph instance: dest rect(4),
// atlas uv rect(4), tint color(4).
const glyphInstanceStride = 12 * 4

const glyphVertexShader = `
#version 330 core
layout(location=0) in vec4 iDest;  // x, y, w, h (pixels)
layout(location=1) in vec4 iUV;    // u, v, sizeU, sizeV (normalized)
layout(location=2) in vec4 iColor; // r, g, b, a

uniform vec2 uTargetSize;

out vec2 vUV;
out vec4 vColor;

void main() {
	vec2 corners[6] = vec2[6](
		vec2(0,0), vec2(1,0), vec2(0,1),
		vec2(0,1), vec2(1,0), vec2(1,1)
	);
	vec2 corner = corners[gl_VertexID];
	vec2 px = iDest.xy + corner * iDest.zw;
	vec2 ndc = (px / uTargetSize) * 2.0 - 1.0;
	ndc.y = -ndc.y;
	gl_Position = vec4(ndc, 0.5, 1.0);
	vUV = iUV.xy + corner * iUV.zw;
	vColor = iColor;
}
`

// glyphPass is the shared GPU plumbing for the monochrome-text and
// emoji-text passes: same instance layout and vertex stage, different
// fragment stage and sampled atlas.
type glyphPass struct {
	prog    uint32
	binding *render.QuadBinding
	atlas   uint32
}

func newGlyphPass(fragmentShader string) (*glyphPass, error) {
	prog, err := render.NewProgram(glyphVertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	binding := render.NewQuadBinding(glyphInstanceStride, []render.VertexAttrib{
		{Index: 0, Size: 4, Offset: 0},
		{Index: 1, Size: 4, Offset: 16},
		{Index: 2, Size: 4, Offset: 32},
	})
	return &glyphPass{prog: prog, binding: binding}, nil
}

// SetAtlas records the current atlas texture id, refreshed by the
// caller whenever the font cache's revision counter advances.
func (p *glyphPass) SetAtlas(tex uint32) {
	p.atlas = tex
}

func (p *glyphPass) draw(glyphs []frame.GlyphRect, atlasSide int, targetW, targetH float32, scissor frame.Rect) {
	if len(glyphs) == 0 {
		return
	}
	gl.UseProgram(p.prog)
	gl.Uniform2f(gl.GetUniformLocation(p.prog, gl.Str("uTargetSize\x00")), targetW, targetH)
	gl.ActiveTexture(gl.TEXTURE3)
	gl.BindTexture(gl.TEXTURE_2D, p.atlas)
	gl.Uniform1i(gl.GetUniformLocation(p.prog, gl.Str("uAtlas\x00")), 3)
	render.SetScissor(scissor.X, scissor.Y, scissor.W, scissor.H, int(targetH))

	side := float32(atlasSide)
	data := make([]float32, 0, len(glyphs)*12)
	for _, g := range glyphs {
		dest := gglm.NewVec4(g.Dest.X, g.Dest.Y, g.Dest.W, g.Dest.H)
		uv := gglm.NewVec4(float32(g.Atlas.X)/side, float32(g.Atlas.Y)/side, float32(g.Atlas.W)/side, float32(g.Atlas.H)/side)
		color := gglm.NewVec4(float32(g.Color.R)/255, float32(g.Color.G)/255, float32(g.Color.B)/255, g.Alpha)
		data = append(data, dest.Data[:]...)
		data = append(data, uv.Data[:]...)
		data = append(data, color.Data[:]...)
	}
	count := p.binding.Upload(data)
	p.binding.Draw(count)
}

func (p *glyphPass) destroy() {
	gl.DeleteProgram(p.prog)
	p.binding.Destroy()
}
