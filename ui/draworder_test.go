package ui

import "testing"

func gridIDs(items []DrawItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Grid
	}
	return out
}

func TestDrawOrderFloatingZOrder(t *testing.T) {
	var d DrawOrder
	d.InsertFloating(1, 50) // A
	d.InsertFloating(2, 200) // B
	d.InsertFloating(3, 75) // C

	got := gridIDs(d.Items())
	want := []int{1, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDrawOrderNormalPreservesInsertionOrder(t *testing.T) {
	var d DrawOrder
	d.InsertNormal(1)
	d.InsertNormal(2)
	d.InsertNormal(3)

	got := gridIDs(d.Items())
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDrawOrderHideThenShowReinserts(t *testing.T) {
	var d DrawOrder
	d.InsertNormal(1)
	d.InsertFloating(2, 10)

	d.Remove(2)
	if len(d.Items()) != 1 {
		t.Fatalf("after remove, got %v", d.Items())
	}

	d.InsertFloating(2, 10)
	got := gridIDs(d.Items())
	if len(got) != 2 || got[1] != 2 {
		t.Fatalf("after reinsert, got %v", got)
	}
}

func TestDrawOrderNormalAndFloatingMixed(t *testing.T) {
	var d DrawOrder
	d.InsertNormal(1)
	d.InsertNormal(2)
	d.InsertFloating(3, 10)
	d.InsertNormal(4) // inserts at boundary, above 1,2 but below float 3

	got := gridIDs(d.Items())
	want := []int{1, 2, 4, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	top := gridIDs(d.TopDown())
	wantTop := []int{3, 4, 2, 1}
	for i := range wantTop {
		if top[i] != wantTop[i] {
			t.Fatalf("TopDown got %v, want %v", top, wantTop)
		}
	}
}
