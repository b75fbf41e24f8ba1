package pipeline

import "github.com/novagrid/novagrid/frame"

const emojiFragmentShader = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uAtlas;
out vec4 fragColor;
void main() {
	vec4 src = texture(uAtlas, vUV);
	float a = src.a * vColor.a;
	fragColor = vec4(src.rgb * a, a);
}
`

// Emoji draws color glyphs into the color target (loaded, not
// cleared), sampling atlas 1. Unlike monochrome glyphs, the atlas's own
// RGB is used directly -- only alpha is modulated by the cluster's
// blend factor.
type Emoji struct {
	*glyphPass
}

// NewEmoji compiles the pass's shader program.
func NewEmoji() (*Emoji, error) {
	p, err := newGlyphPass(emojiFragmentShader)
	if err != nil {
		return nil, err
	}
	return &Emoji{glyphPass: p}, nil
}

// Draw renders one grid's emoji glyph quads.
func (e *Emoji) Draw(glyphs []frame.GlyphRect, atlasSide int, targetW, targetH float32, scissor frame.Rect) {
	e.draw(glyphs, atlasSide, targetW, targetH, scissor)
}

// Destroy releases the shader and instance binding.
func (e *Emoji) Destroy() { e.destroy() }
