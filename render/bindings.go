package render

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// QuadBinding is a VAO over a single instance VBO, drawn as six vertices
// per instance (two triangles) with gl_VertexID selecting the corner in
// the vertex shader -- no per-vertex position buffer is needed.
type QuadBinding struct {
	vao, vbo uint32
	stride   int32
	capacity int
}

// VertexAttrib describes one instanced vertex attribute sourced from the
// instance VBO.
type VertexAttrib struct {
	Index  uint32
	Size   int32
	Offset int
}

// NewQuadBinding creates an instanced quad VAO with the given
// per-instance attribute layout.
func NewQuadBinding(stride int32, attribs []VertexAttrib) *QuadBinding {
	q := &QuadBinding{stride: stride}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Index)
		gl.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(a.Offset))
		gl.VertexAttribDivisor(a.Index, 1)
	}
	gl.BindVertexArray(0)
	return q
}

// Upload replaces the instance buffer's contents with data (a packed
// array of per-instance float attributes) and returns the instance
// count implied by stride.
func (q *QuadBinding) Upload(data []float32) int {
	if len(data) == 0 {
		return 0
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	size := len(data) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
	q.capacity = size
	return size / int(q.stride)
}

// Draw issues an instanced draw of six vertices (one quad) per
// instance, count instances total.
func (q *QuadBinding) Draw(count int) {
	if count == 0 {
		return
	}
	gl.BindVertexArray(q.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(count))
	gl.BindVertexArray(0)
}

// Destroy releases the VAO and VBO.
func (q *QuadBinding) Destroy() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}

// UploadAtlasTexture creates or replaces a GL texture with an atlas's
// current pixel contents, called whenever text.Cache.Revision advances.
func UploadAtlasTexture(tex uint32, side int, channels int, pixels []byte) uint32 {
	if tex == 0 {
		gl.GenTextures(1, &tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	format, internal := uint32(gl.RED), int32(gl.R8)
	if channels == 4 {
		format, internal = gl.RGBA, gl.RGBA8
	}
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = unsafe.Pointer(&pixels[0])
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(side), int32(side), 0, format, gl.UNSIGNED_BYTE, ptr)
	return tex
}
