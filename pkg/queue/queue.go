package queue

import "errors"

// ErrQueueFull is returned when an item cannot be enqueued without blocking.
var ErrQueueFull = errors.New("queue is full")

// Queue is a bounded FIFO used to hand results from background goroutines
// to the frame loop.
type Queue interface {
	Enqueue(item interface{}) error
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
