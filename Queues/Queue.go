package Queues

import "errors"

// ErrEmptyQueue is returned when popping from an empty queue.
var ErrEmptyQueue = errors.New("Queues: queue is empty")

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	//Peek the front item without removing it. The bool is false for an empty queue.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	Clear()
	Size() uint
}
