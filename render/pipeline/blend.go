package pipeline

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/render"
)

const fullScreenVertexShader = `
#version 330 core
out vec2 vUV;
void main() {
	vec2 corners[6] = vec2[6](
		vec2(-1,-1), vec2(1,-1), vec2(-1,1),
		vec2(-1,1),  vec2(1,-1), vec2(1,1)
	);
	vec2 uvs[6] = vec2[6](
		vec2(0,0), vec2(1,0), vec2(0,1),
		vec2(0,1), vec2(1,0), vec2(1,1)
	);
	gl_Position = vec4(corners[gl_VertexID], 0.0, 1.0);
	vUV = uvs[gl_VertexID];
}
`

const blendFragmentShader = `
#version 330 core
in vec2 vUV;
uniform sampler2D uMonochrome;
out vec4 fragColor;
void main() {
	vec4 src = texture(uMonochrome, vUV); // premultiplied alpha
	fragColor = src;
}
`

// Blend is the full-screen pass that alpha-blends the monochrome target
// onto the color target using premultiplied-alpha blending, so
// monochrome glyph coverage composites correctly regardless of draw
// order within that pass.
type Blend struct {
	prog uint32
}

// NewBlend compiles the pass's shader program.
func NewBlend() (*Blend, error) {
	prog, err := render.NewProgram(fullScreenVertexShader, blendFragmentShader)
	if err != nil {
		return nil, err
	}
	return &Blend{prog: prog}, nil
}

// Draw composites targets.Monochrome onto targets.Color. Caller must
// have bound targets.Color as the draw target first.
func (b *Blend) Draw(monochromeTex uint32) {
	gl.UseProgram(b.prog)
	render.ClearScissor()
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, monochromeTex)
	gl.Uniform1i(gl.GetUniformLocation(b.prog, gl.Str("uMonochrome\x00")), 1)
	gl.BindVertexArray(emptyVAO())
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// Destroy releases the shader program.
func (b *Blend) Destroy() {
	gl.DeleteProgram(b.prog)
}

var sharedEmptyVAO uint32

// emptyVAO returns a lazily-created VAO with no attributes, sufficient
// for a vertex shader that computes positions purely from gl_VertexID.
func emptyVAO() uint32 {
	if sharedEmptyVAO == 0 {
		gl.GenVertexArrays(1, &sharedEmptyVAO)
	}
	return sharedEmptyVAO
}
