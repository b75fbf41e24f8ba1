package frame

import "testing"

func TestScissorFullyVisible(t *testing.T) {
	off, size := Scissor(10, 5, 2, 100)
	if off != 10 || size != 10 {
		t.Errorf("got off=%v size=%v, want 10,10", off, size)
	}
}

func TestScissorClipsNegativeOffset(t *testing.T) {
	off, size := Scissor(-4, 5, 2, 100)
	if off != 0 || size != 6 {
		t.Errorf("got off=%v size=%v, want 0,6", off, size)
	}
}

func TestScissorClipsPastTarget(t *testing.T) {
	off, size := Scissor(90, 10, 2, 100)
	if off != 90 || size != 10 {
		t.Errorf("got off=%v size=%v, want 90,10", off, size)
	}
}

func TestScissorEntirelyOffTarget(t *testing.T) {
	off, size := Scissor(200, 5, 2, 100)
	if off != 100 || size != 0 {
		t.Errorf("got off=%v size=%v, want 100,0", off, size)
	}
}
