package sim

import "container/heap"

// EventHeap implements a min-priority queue with deterministic ordering.
// Ordering: scheduled time → insertion sequence number.
type EventHeap struct {
	events  []Event
	nextSeq uint64
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{events: make([]Event, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering.
// Order by: scheduled time (earlier first) → insertion sequence (lower first).
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.At() != ej.At() {
		return ei.At() < ej.At()
	}
	return ei.Seq() < ej.Seq()
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x interface{}) {
	h.events = append(h.events, x.(Event))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[0 : n-1]
	return item
}

// Schedule stamps the event with the next insertion sequence number and
// adds it to the heap. The stamp is what makes same-timestamp replay
// deterministic.
func (h *EventHeap) Schedule(e Event) {
	h.nextSeq++
	e.setSeq(h.nextSeq)
	heap.Push(h, e)
}

// PopEarliest removes and returns the earliest event.
// The second return value is false when the heap is empty.
func (h *EventHeap) PopEarliest() (Event, bool) {
	if h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(h).(Event), true
}

// PeekTime returns the scheduled time of the earliest event without
// removing it. The second return value is false when the heap is empty.
func (h *EventHeap) PeekTime() (float64, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return h.events[0].At(), true
}
