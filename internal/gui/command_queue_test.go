package gui

import "testing"

func TestCommandQueueDropsWhenFull(t *testing.T) {
	q := newCommandQueue(2)
	q.EnqueueCommand("status")
	q.EnqueueCommand("market")
	q.EnqueueCommand("sleep")

	for _, want := range []string{"status", "market"} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("expected %q, got %q (ok=%v)", want, got, ok)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected queue drained")
	}
}

func TestNilCommandQueueIsSafe(t *testing.T) {
	var q *commandQueue
	q.EnqueueCommand("status")
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("nil queue should be empty")
	}
}
