package Queues

import "errors"

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("queue is empty: cannot Pop")

// Queue is a first in first out collection.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, or return ErrEmptyQueue.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The bool is false when
	//the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() int
}
