package event

import "testing"

func TestDecodeGridLine(t *testing.T) {
	events, skipped := DecodeBatch("grid_line", [][]interface{}{
		{int64(2), int64(0), int64(0), []interface{}{
			[]interface{}{"a", int64(5), int64(2)},
			[]interface{}{"b"},
		}},
	})
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	gl := events[0].(GridLine)
	if gl.Grid != 2 || len(gl.Cells) != 2 {
		t.Fatalf("got %+v", gl)
	}
	if !gl.Cells[0].HasHl || gl.Cells[0].Hl != 5 || gl.Cells[0].Repeat != 2 {
		t.Errorf("cell[0] = %+v", gl.Cells[0])
	}
	if gl.Cells[1].HasHl || gl.Cells[1].Repeat != 1 {
		t.Errorf("cell[1] = %+v", gl.Cells[1])
	}
}

func TestDecodeHlAttrDefine(t *testing.T) {
	events, skipped := DecodeBatch("hl_attr_define", [][]interface{}{
		{int64(3), map[string]interface{}{
			"foreground": int64(0xFF0000),
			"reverse":    true,
			"blend":      int64(40),
		}, map[string]interface{}{}, []interface{}{}},
	})
	if skipped != 0 || len(events) != 1 {
		t.Fatalf("skipped=%d events=%v", skipped, events)
	}
	hl := events[0].(HlAttrDefine)
	if hl.Id != 3 || !hl.Attr.Reverse || hl.Attr.Blend != 40 {
		t.Errorf("got %+v", hl)
	}
	if hl.Attr.Foreground == nil || *hl.Attr.Foreground != (RGB{0xFF, 0, 0}) {
		t.Errorf("foreground = %+v", hl.Attr.Foreground)
	}
}

func TestDecodeWinFloatPosDefaultZ(t *testing.T) {
	events, skipped := DecodeBatch("win_float_pos", [][]interface{}{
		{int64(4), int64(1), "NW", int64(1), float64(2), float64(3), true},
	})
	if skipped != 0 || len(events) != 1 {
		t.Fatalf("skipped=%d events=%v", skipped, events)
	}
	wp := events[0].(WinFloatPos)
	if wp.ZIndex != 50 {
		t.Errorf("ZIndex = %d, want default 50", wp.ZIndex)
	}
	if wp.Anchor != "NW" || wp.AnchorGrid != 1 {
		t.Errorf("got %+v", wp)
	}
}

func TestDecodeUnknownEventDoesNotFail(t *testing.T) {
	events, skipped := DecodeBatch("some_future_event", [][]interface{}{
		{int64(1), "x"},
	})
	if skipped != 0 || len(events) != 1 {
		t.Fatalf("skipped=%d events=%v", skipped, events)
	}
	if _, ok := events[0].(Unknown); !ok {
		t.Errorf("got %T, want Unknown", events[0])
	}
}

func TestDecodeMalformedCellSkipped(t *testing.T) {
	events, skipped := DecodeBatch("grid_line", [][]interface{}{
		{int64(1), int64(0), int64(0), []interface{}{
			[]interface{}{int64(5)}, // text is not a string
		}},
	})
	if skipped != 1 || len(events) != 0 {
		t.Fatalf("skipped=%d events=%d, want 1,0", skipped, len(events))
	}
}
