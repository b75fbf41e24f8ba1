package rpc

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeNotificationRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.EncodeNotification("redraw", []interface{}{"flush"}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec := NewDecoder(&buf)
	msg, err := dec.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Kind != KindNotification {
		t.Fatalf("Kind = %v, want KindNotification", msg.Kind)
	}
	if msg.Notification.Method != "redraw" {
		t.Errorf("Method = %q", msg.Notification.Method)
	}
}

func TestEncodeDecodeRequestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.EncodeRequest(7, "nvim_input", []interface{}{"<Esc>"}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec := NewDecoder(&buf)
	msg, err := dec.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Kind != KindRequest || msg.Request.MsgID != 7 || msg.Request.Method != "nvim_input" {
		t.Fatalf("got %+v", msg.Request)
	}
}

func TestEncodeDecodeResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.EncodeResponse(3, nil, "ok"); err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec := NewDecoder(&buf)
	msg, err := dec.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Kind != KindResponse || msg.Response.MsgID != 3 {
		t.Fatalf("got %+v", msg.Response)
	}
}
