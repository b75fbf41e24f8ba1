package rpc

import (
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"
)

// Option configures an Endpoint.
type Option func(*Endpoint)

// WithLogger overrides the default logger (log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(e *Endpoint) { e.log = l }
}

// Endpoint wires a Decoder, Encoder, and Orderer into the three-task
// concurrency model: RunReader runs on the editor-reader task and,
// once dispatch returns for an editor request, queues the answer
// through the Orderer; RunWriter drains the outgoing channel on the
// editor-writer task.
type Endpoint struct {
	dec *Decoder
	enc *Encoder
	log *log.Logger

	mu       sync.RWMutex
	orderer  *Orderer
	nextID   uint32
	pending  map[uint32]chan frontendReply
	outgoing chan outboundMessage
}

type frontendReply struct {
	result interface{}
	err    error
}

type outboundMessage struct {
	kind Kind
	req  *Request
	resp *Response
	note *Notification
}

// NewEndpoint constructs an Endpoint over r (decode) and w (encode),
// with a bounded outgoing channel carrying outgoing RPC messages.
func NewEndpoint(r io.Reader, w io.Writer, opts ...Option) *Endpoint {
	e := &Endpoint{
		dec:      NewDecoder(r),
		enc:      NewEncoder(w),
		log:      log.Default(),
		orderer:  NewOrderer(),
		pending:  map[uint32]chan frontendReply{},
		outgoing: make(chan outboundMessage, 64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunWriter drains the outgoing channel and encodes each message,
// flushing after every one, until the channel is closed -- the
// editor-writer task. Returns the first encode error encountered,
// which terminates the encoder task.
func (e *Endpoint) RunWriter() error {
	for msg := range e.outgoing {
		var err error
		switch msg.kind {
		case KindRequest:
			err = e.enc.EncodeRequest(msg.req.MsgID, msg.req.Method, msg.req.Params)
		case KindResponse:
			err = e.enc.EncodeResponse(msg.resp.MsgID, msg.resp.Error, msg.resp.Result)
		case KindNotification:
			err = e.enc.EncodeNotification(msg.note.Method, msg.note.Params)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close signals the writer task to exit once its queue drains.
func (e *Endpoint) Close() {
	close(e.outgoing)
}

// Notify enqueues an outgoing notification (e.g. nvim_input, a
// neophyte.* custom notification).
func (e *Endpoint) Notify(method string, params []interface{}) {
	e.outgoing <- outboundMessage{kind: KindNotification, note: &Notification{Method: method, Params: params}}
}

// Request enqueues an outgoing request and blocks until the matching
// response arrives (or ctx-less cancellation isn't needed here: the
// editor always answers requests it accepted, per the external
// interface contract).
func (e *Endpoint) Request(method string, params []interface{}) (interface{}, error) {
	id := atomic.AddUint32(&e.nextID, 1)
	reply := make(chan frontendReply, 1)

	e.mu.Lock()
	e.pending[id] = reply
	e.mu.Unlock()

	e.outgoing <- outboundMessage{kind: KindRequest, req: &Request{MsgID: id, Method: method, Params: params}}

	r := <-reply
	return r.result, r.err
}

// RunReader blocks on Decode, classifying and routing every incoming
// frame, until EOF terminates it. EOF is treated as a
// graceful shutdown trigger and returned unwrapped; other decode errors
// are logged and the loop continues.
func (e *Endpoint) RunReader(dispatch func(method string, params []interface{}) (interface{}, error)) error {
	for {
		msg, err := e.dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			e.log.Printf("rpc: decode error, continuing: %v", err)
			continue
		}

		switch msg.Kind {
		case KindNotification:
			// Notifications carry redraw batches; routed by the caller via
			// dispatch with a nil result expectation (errors logged there).
			_, _ = dispatch(msg.Notification.Method, msg.Notification.Params)

		case KindRequest:
			e.mu.Lock()
			e.orderer.RequestReceived(msg.Request.MsgID)
			e.mu.Unlock()

			result, callErr := dispatch(msg.Request.Method, msg.Request.Params)
			e.respond(msg.Request.MsgID, result, callErr)

		case KindResponse:
			e.mu.RLock()
			reply, ok := e.pending[msg.Response.MsgID]
			e.mu.RUnlock()
			if !ok {
				e.log.Printf("rpc: response for unknown msgid %d", msg.Response.MsgID)
				continue
			}
			e.mu.Lock()
			delete(e.pending, msg.Response.MsgID)
			e.mu.Unlock()

			var callErr error
			if msg.Response.Error != nil {
				callErr = errors.New("rpc: editor returned an error")
			}
			reply <- frontendReply{result: msg.Response.Result, err: callErr}
		}
	}
}

// respond enqueues the frontend's answer to an editor-originated
// request, deferring emission until the ordering algorithm
// says it's this request's turn.
func (e *Endpoint) respond(msgid uint32, result interface{}, callErr error) {
	var errVal interface{}
	if callErr != nil {
		errVal = callErr.Error()
	}

	e.mu.Lock()
	ready := e.orderer.ResponseReady(msgid, errVal, result)
	e.mu.Unlock()

	for _, r := range ready {
		e.outgoing <- outboundMessage{kind: KindResponse, resp: &Response{MsgID: r.MsgID, Error: r.Error, Result: r.Result}}
	}
}
