package ui

import "testing"

func TestPositionResolvesFloatingAnchorOffset(t *testing.T) {
	s := NewState()
	s.Grids[1] = mustGrid(1, 80, 24)
	s.Windows[1] = Window{Kind: WindowNormal, StartRow: 0, StartCol: 0}

	s.Grids[2] = mustGrid(2, 10, 4)
	s.Windows[2] = Window{
		Kind:       WindowFloating,
		Anchor:     AnchorNW,
		AnchorGrid: 1,
		AnchorRow:  2,
		AnchorCol:  3,
	}

	pos, ok := s.position(2)
	if !ok {
		t.Fatal("position() ok = false")
	}
	if pos.Row != 2 || pos.Col != 3 {
		t.Errorf("pos = %+v, want {2 3}", pos)
	}
}

func TestPositionSECornerSubtractsSize(t *testing.T) {
	s := NewState()
	s.Grids[1] = mustGrid(1, 80, 24)
	s.Windows[1] = Window{Kind: WindowNormal}

	s.Grids[2] = mustGrid(2, 10, 4)
	s.Windows[2] = Window{
		Kind:       WindowFloating,
		Anchor:     AnchorSE,
		AnchorGrid: 1,
		AnchorRow:  10,
		AnchorCol:  20,
	}

	pos, ok := s.position(2)
	if !ok {
		t.Fatal("position() ok = false")
	}
	if pos.Row != 6 || pos.Col != 10 {
		t.Errorf("pos = %+v, want {6 10}", pos)
	}
}

func TestPositionDetectsCycle(t *testing.T) {
	s := NewState()
	s.Grids[1] = mustGrid(1, 80, 24)
	s.Grids[2] = mustGrid(2, 10, 4)
	s.Grids[3] = mustGrid(3, 10, 4)
	s.Windows[2] = Window{Kind: WindowFloating, AnchorGrid: 3}
	s.Windows[3] = Window{Kind: WindowFloating, AnchorGrid: 2}

	if _, ok := s.position(2); ok {
		t.Fatal("expected cycle detection to fail position resolution")
	}
}

func TestPositionClampsFloatingToBaseViewport(t *testing.T) {
	s := NewState()
	s.Grids[1] = mustGrid(1, 20, 10)
	s.Windows[1] = Window{Kind: WindowNormal}

	s.Grids[2] = mustGrid(2, 10, 4)
	s.Windows[2] = Window{
		Kind:       WindowFloating,
		Anchor:     AnchorNW,
		AnchorGrid: 1,
		AnchorRow:  100,
		AnchorCol:  100,
	}

	pos, ok := s.position(2)
	if !ok {
		t.Fatal("position() ok = false")
	}
	if pos.Row != 6 || pos.Col != 10 {
		t.Errorf("pos = %+v, want clamped {6 10}", pos)
	}
}
