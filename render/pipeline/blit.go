package pipeline

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/novagrid/novagrid/render"
)

const blitFragmentShader = `
#version 330 core
in vec2 vUV;
uniform sampler2D uColor;
uniform float uGamma;
uniform float uTransparent; // 1.0 if the window surface is transparent
out vec4 fragColor;
void main() {
	vec4 src = texture(uColor, vUV);
	vec3 encoded = pow(max(src.rgb, 0.0), vec3(1.0 / uGamma));
	float a = mix(1.0, src.a, uTransparent);
	fragColor = vec4(encoded * a, a);
}
`

// Blit is the final pass: writes the composited color target to the
// swapchain surface, applying gamma encoding and, for a transparent
// window, premultiplying by alpha.
type Blit struct {
	prog uint32
}

// NewBlit compiles the pass's shader program.
func NewBlit() (*Blit, error) {
	prog, err := render.NewProgram(fullScreenVertexShader, blitFragmentShader)
	if err != nil {
		return nil, err
	}
	return &Blit{prog: prog}, nil
}

// Draw writes colorTex to the currently bound default framebuffer
// (the window surface). gamma is the surface's encoding exponent
// (2.2 for sRGB-like displays); transparent selects alpha-premultiplied
// output for a see-through window.
func (b *Blit) Draw(colorTex uint32, gamma float32, transparent bool) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	render.ClearScissor()
	gl.UseProgram(b.prog)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, colorTex)
	gl.Uniform1i(gl.GetUniformLocation(b.prog, gl.Str("uColor\x00")), 0)
	gl.Uniform1f(gl.GetUniformLocation(b.prog, gl.Str("uGamma\x00")), gamma)
	transparentF := float32(0)
	if transparent {
		transparentF = 1
	}
	gl.Uniform1f(gl.GetUniformLocation(b.prog, gl.Str("uTransparent\x00")), transparentF)
	gl.BindVertexArray(emptyVAO())
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Destroy releases the shader program.
func (b *Blit) Destroy() {
	gl.DeleteProgram(b.prog)
}
