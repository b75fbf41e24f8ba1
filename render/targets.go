package render

import "github.com/go-gl/gl/v3.3-core/gl"

// Targets owns the two offscreen render targets every pass writes into
// (color, monochrome) plus the depth attachment that orders floating
// windows front-to-back: all passes write to two offscreen
// targets, color (linear RGBA16F) and monochrome (linear RGBA16F).
type Targets struct {
	FBO          uint32
	Color        uint32
	Monochrome   uint32
	Depth        uint32
	Width        int
	Height       int
}

// NewTargets allocates the color, monochrome, and depth attachments at
// the given pixel size and binds them to a single framebuffer object
// with two draw buffers (color first, monochrome second) so a pass can
// select its target with glDrawBuffers.
func NewTargets(width, height int) (*Targets, error) {
	t := &Targets{Width: width, Height: height}

	gl.GenFramebuffers(1, &t.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)

	t.Color = newFloatTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.Color, 0)

	t.Monochrome = newFloatTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.TEXTURE_2D, t.Monochrome, 0)

	gl.GenRenderbuffers(1, &t.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.Depth)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return t, nil
}

func newFloatTexture(width, height int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	return tex
}

// Resize reallocates both targets and the depth buffer, called when the
// window's framebuffer size changes.
func (t *Targets) Resize(width, height int) {
	gl.DeleteTextures(1, &t.Color)
	gl.DeleteTextures(1, &t.Monochrome)
	gl.DeleteRenderbuffers(1, &t.Depth)

	t.Width, t.Height = width, height
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)

	t.Color = newFloatTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.Color, 0)
	t.Monochrome = newFloatTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.TEXTURE_2D, t.Monochrome, 0)

	gl.GenRenderbuffers(1, &t.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.Depth)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// BindForColor selects the color attachment as the sole draw target
// (cell-fill, emoji, decoration passes).
func (t *Targets) BindForColor() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.DrawBuffer(gl.COLOR_ATTACHMENT0)
}

// BindForMonochrome selects the monochrome attachment as the sole draw
// target (the monochrome-text pass).
func (t *Targets) BindForMonochrome() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.DrawBuffer(gl.COLOR_ATTACHMENT1)
}

// BindForRead selects both attachments as texture sources for passes
// that sample them (blend, cursor, gamma-blit).
func (t *Targets) BindForRead() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.Color)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, t.Monochrome)
}

// Destroy releases every GL object the targets own.
func (t *Targets) Destroy() {
	gl.DeleteTextures(1, &t.Color)
	gl.DeleteTextures(1, &t.Monochrome)
	gl.DeleteRenderbuffers(1, &t.Depth)
	gl.DeleteFramebuffers(1, &t.FBO)
}
