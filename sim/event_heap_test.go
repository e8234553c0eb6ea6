package sim

import "testing"

func TestEventHeap_OrdersByScheduledTime(t *testing.T) {
	// GIVEN events scheduled out of time order
	h := NewEventHeap()
	h.Schedule(NewOperationCompleteEvent(3.0, "c", 1.0))
	h.Schedule(NewOperationCompleteEvent(1.0, "a", 1.0))
	h.Schedule(NewOperationCompleteEvent(2.0, "b", 1.0))

	// WHEN popping all events
	var order []string
	for {
		ev, ok := h.PopEarliest()
		if !ok {
			break
		}
		order = append(order, ev.MachineName())
	}

	// THEN they come out in ascending time order
	want := []string{"a", "b", "c"}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("pop %d: got %s, want %s", i, order[i], name)
		}
	}
}

func TestEventHeap_EqualTimestampsPopInInsertionOrder(t *testing.T) {
	// GIVEN three events at the identical timestamp
	h := NewEventHeap()
	h.Schedule(NewFailureOccurredEvent(5.0, "first"))
	h.Schedule(NewMaintenanceDueEvent(5.0, "second"))
	h.Schedule(NewOperationCompleteEvent(5.0, "third", 1.0))

	// WHEN popping
	// THEN the insertion sequence breaks the tie (FIFO)
	for _, want := range []string{"first", "second", "third"} {
		ev, ok := h.PopEarliest()
		if !ok {
			t.Fatal("heap exhausted early")
		}
		if ev.MachineName() != want {
			t.Errorf("got %s, want %s", ev.MachineName(), want)
		}
	}
}

func TestEventHeap_EmptyBehavior(t *testing.T) {
	h := NewEventHeap()

	if _, ok := h.PopEarliest(); ok {
		t.Error("PopEarliest on empty heap must return ok=false")
	}
	if _, ok := h.PeekTime(); ok {
		t.Error("PeekTime on empty heap must return ok=false")
	}
}

func TestEventHeap_PeekTimeDoesNotRemove(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(NewOperationCompleteEvent(2.5, "m", 1.0))

	at, ok := h.PeekTime()
	if !ok || at != 2.5 {
		t.Fatalf("PeekTime = %v, %v; want 2.5, true", at, ok)
	}
	if h.Len() != 1 {
		t.Errorf("Len after peek = %d, want 1", h.Len())
	}
}
