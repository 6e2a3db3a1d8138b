package gui

// CommandSink accepts console lines from outside the render loop.
type CommandSink interface {
	EnqueueCommand(line string)
}

type commandQueue struct {
	ch chan string
}

func newCommandQueue(size int) *commandQueue {
	if size < 1 {
		size = 16
	}
	return &commandQueue{ch: make(chan string, size)}
}

func (q *commandQueue) EnqueueCommand(line string) {
	if q == nil {
		return
	}
	select {
	case q.ch <- line:
	default:
		// Drop only when the queue is saturated; the frame loop drains it.
	}
}

func (q *commandQueue) Dequeue() (string, bool) {
	if q == nil {
		return "", false
	}
	select {
	case line := <-q.ch:
		return line, true
	default:
		return "", false
	}
}
