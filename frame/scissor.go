package frame

// Rect is an axis-aligned pixel rectangle, reused both as a scissor
// region and as a draw rectangle in the emitted buffers.
type Rect struct {
	X, Y, W, H float32
}

// Scissor clips a grid's pixel rectangle (screen offset o, size s in
// cells, cellSize per axis) to the render target T: each
// axis computes min(max(o+s*c, 0), T) - max(o, 0), the visible span
// after clamping both edges into [0, T].
func Scissor(offset, cells, cellSize, target float32) (clippedOffset, clippedSize float32) {
	lo := clamp(offset, 0, target)
	hi := clamp(offset+cells*cellSize, 0, target)
	if hi < lo {
		hi = lo
	}
	return lo, hi - lo
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
