// Package rpc implements the MessagePack-RPC transport: a decoder
// that classifies each message as a request, response, or notification,
// an encoder owned by a single producer, and the request/response
// ordering algorithm described in the component design.
package rpc

import (
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"
)

// Kind tags which field of Message is populated.
type Kind int

const (
	KindRequest Kind = iota
	KindResponse
	KindNotification
)

// Message is one decoded RPC frame: exactly one of Request, Response, or
// Notification is non-nil, selected by Kind.
type Message struct {
	Kind         Kind
	Request      *Request
	Response     *Response
	Notification *Notification
}

// Request is a `[0, msgid, method, params]` message from the editor.
type Request struct {
	MsgID  uint32
	Method string
	Params []interface{}
}

// Response is a `[1, msgid, error, result]` message. Error is the raw
// decoded value (nil on success); the caller interprets it.
type Response struct {
	MsgID  uint32
	Error  interface{}
	Result interface{}
}

// Notification is a `[2, method, params]` message.
type Notification struct {
	Method string
	Params []interface{}
}

// Decoder reads one MessagePack value per message off a stream and
// classifies it by array shape.
type Decoder struct {
	r *msgp.Reader
}

// NewDecoder wraps r for framed decode.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: msgp.NewReader(r)}
}

// Decode reads and classifies the next message. Returns io.EOF
// unwrapped so callers can distinguish a graceful stream close: an
// EOF during decode is a graceful shutdown trigger, not an error to log.
func (d *Decoder) Decode() (*Message, error) {
	v, err := d.r.ReadIntf()
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]interface{})
	if !ok || len(arr) < 3 {
		return nil, fmt.Errorf("rpc: malformed message %#v", v)
	}
	tag, err := toInt(arr[0])
	if err != nil {
		return nil, fmt.Errorf("rpc: malformed message tag: %w", err)
	}

	switch tag {
	case 0: // request
		if len(arr) != 4 {
			return nil, fmt.Errorf("rpc: malformed request %#v", arr)
		}
		msgid, err := toInt(arr[1])
		if err != nil {
			return nil, err
		}
		method, _ := arr[2].(string)
		params, _ := arr[3].([]interface{})
		return &Message{Kind: KindRequest, Request: &Request{
			MsgID: uint32(msgid), Method: method, Params: params,
		}}, nil

	case 1: // response
		if len(arr) != 4 {
			return nil, fmt.Errorf("rpc: malformed response %#v", arr)
		}
		msgid, err := toInt(arr[1])
		if err != nil {
			return nil, err
		}
		return &Message{Kind: KindResponse, Response: &Response{
			MsgID: uint32(msgid), Error: arr[2], Result: arr[3],
		}}, nil

	case 2: // notification
		if len(arr) != 3 {
			return nil, fmt.Errorf("rpc: malformed notification %#v", arr)
		}
		method, _ := arr[1].(string)
		params, _ := arr[2].([]interface{})
		return &Message{Kind: KindNotification, Notification: &Notification{
			Method: method, Params: params,
		}}, nil

	default:
		return nil, fmt.Errorf("rpc: unknown message tag %d", tag)
	}
}

func toInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("rpc: expected int, got %T", v)
	}
}

// Encoder writes MessagePack-RPC messages. It is owned by a single
// producer (the editor-writer task) and flushes after every message, so
// no two goroutines may call its methods concurrently.
type Encoder struct {
	w *msgp.Writer
}

// NewEncoder wraps w for framed encode.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: msgp.NewWriter(w)}
}

// EncodeRequest writes a `[0, msgid, method, params]` message and flushes.
func (e *Encoder) EncodeRequest(msgid uint32, method string, params []interface{}) error {
	if err := e.w.WriteArrayHeader(4); err != nil {
		return err
	}
	if err := e.w.WriteInt(0); err != nil {
		return err
	}
	if err := e.w.WriteUint32(msgid); err != nil {
		return err
	}
	if err := e.w.WriteString(method); err != nil {
		return err
	}
	if err := e.w.WriteIntf(params); err != nil {
		return err
	}
	return e.w.Flush()
}

// EncodeResponse writes a `[1, msgid, error, result]` message and flushes.
func (e *Encoder) EncodeResponse(msgid uint32, errVal, result interface{}) error {
	if err := e.w.WriteArrayHeader(4); err != nil {
		return err
	}
	if err := e.w.WriteInt(1); err != nil {
		return err
	}
	if err := e.w.WriteUint32(msgid); err != nil {
		return err
	}
	if err := e.w.WriteIntf(errVal); err != nil {
		return err
	}
	if err := e.w.WriteIntf(result); err != nil {
		return err
	}
	return e.w.Flush()
}

// EncodeNotification writes a `[2, method, params]` message and flushes.
func (e *Encoder) EncodeNotification(method string, params []interface{}) error {
	if err := e.w.WriteArrayHeader(3); err != nil {
		return err
	}
	if err := e.w.WriteInt(2); err != nil {
		return err
	}
	if err := e.w.WriteString(method); err != nil {
		return err
	}
	if err := e.w.WriteIntf(params); err != nil {
		return err
	}
	return e.w.Flush()
}
