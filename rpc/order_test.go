package rpc

import "testing"

// TestResponseOrderingScenario injects requests 10, 11, 12; the frontend
// completes them in order 12, 10, 11; output to the editor must be
// 12, 11, 10.
func TestResponseOrderingScenario(t *testing.T) {
	o := NewOrderer()
	o.RequestReceived(10)
	o.RequestReceived(11)
	o.RequestReceived(12)

	var got []uint32
	got = append(got, ids(o.ResponseReady(12, nil, nil))...)
	got = append(got, ids(o.ResponseReady(10, nil, nil))...)
	got = append(got, ids(o.ResponseReady(11, nil, nil))...)

	want := []uint32{12, 11, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestResponseOrderingAllArriveBeforeAnyComplete(t *testing.T) {
	o := NewOrderer()
	for _, id := range []uint32{1, 2, 3, 4} {
		o.RequestReceived(id)
	}

	var got []uint32
	for _, id := range []uint32{1, 3, 2, 4} {
		got = append(got, ids(o.ResponseReady(id, nil, nil))...)
	}

	want := []uint32{4, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func ids(out []Outgoing) []uint32 {
	ids := make([]uint32, len(out))
	for i, o := range out {
		ids[i] = o.MsgID
	}
	return ids
}
