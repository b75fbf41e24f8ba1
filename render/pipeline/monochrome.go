package pipeline

import "github.com/novagrid/novagrid/frame"

const monochromeFragmentShader = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uAtlas;
out vec4 fragColor;
void main() {
	float coverage = texture(uAtlas, vUV).r;
	float a = coverage * vColor.a;
	fragColor = vec4(vColor.rgb * a, a);
}
`

// Monochrome draws opaque glyphs into the monochrome target (cleared to
// transparent beforehand), sampling atlas 0, tinted by each glyph's
// resolved foreground color.
type Monochrome struct {
	*glyphPass
}

// NewMonochrome compiles the pass's shader program.
func NewMonochrome() (*Monochrome, error) {
	p, err := newGlyphPass(monochromeFragmentShader)
	if err != nil {
		return nil, err
	}
	return &Monochrome{glyphPass: p}, nil
}

// Draw renders one grid's monochrome glyph quads.
func (m *Monochrome) Draw(glyphs []frame.GlyphRect, atlasSide int, targetW, targetH float32, scissor frame.Rect) {
	m.draw(glyphs, atlasSide, targetW, targetH, scissor)
}

// Destroy releases the shader and instance binding.
func (m *Monochrome) Destroy() { m.destroy() }
