package rpc

import "container/heap"

// Outgoing is a completed frontend response awaiting emission.
type Outgoing struct {
	MsgID  uint32
	Error  interface{}
	Result interface{}
}

// maxHeap orders by descending MsgID: the most recently arrived request
// drains first, matching strict LIFO relative to request arrival.
type maxHeap []Outgoing

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].MsgID > h[j].MsgID }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(Outgoing)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Orderer implements the request-id stack + response heap draining
// algorithm: a stack of in-flight request ids received from the
// editor, and a heap of completed frontend responses, drained while the
// stack's top matches the heap's extreme.
//
// Single-writer contract: Endpoint calls RequestReceived and
// ResponseReady from its RunReader loop (the editor-reader task) and
// serializes them under its one RWLock -- Orderer itself holds no lock.
type Orderer struct {
	stack []uint32
	heap  maxHeap
}

// NewOrderer returns an empty Orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// RequestReceived records one more in-flight request id, pushed when the
// editor-reader observes a new Request frame.
func (o *Orderer) RequestReceived(msgid uint32) {
	o.stack = append(o.stack, msgid)
}

// ResponseReady pushes a completed response into the heap and returns
// every response now ready to emit to the editor, in strict LIFO order
// relative to request arrival.
func (o *Orderer) ResponseReady(msgid uint32, errVal, result interface{}) []Outgoing {
	heap.Push(&o.heap, Outgoing{MsgID: msgid, Error: errVal, Result: result})

	var ready []Outgoing
	for len(o.stack) > 0 && len(o.heap) > 0 && o.stack[len(o.stack)-1] == o.heap[0].MsgID {
		o.stack = o.stack[:len(o.stack)-1]
		ready = append(ready, heap.Pop(&o.heap).(Outgoing))
	}
	return ready
}
