// Package pqueue provides the min-priority queue used by the path search.
package pqueue

import (
	"errors"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// ErrEmpty is the panic value of Remove on an empty queue.
var ErrEmpty = errors.New("pqueue: remove from empty queue")

type entry[T any] struct {
	value    T
	priority int
	seq      uint64
}

// Queue yields the lowest-priority element first. Elements with equal
// priority come out in insertion order.
type Queue[T any] struct {
	heap *priorityqueue.Queue
	seq  uint64
}

func New[T any]() *Queue[T] {
	return &Queue[T]{heap: priorityqueue.NewWith(compare[T])}
}

func compare[T any](a, b interface{}) int {
	x, y := a.(entry[T]), b.(entry[T])
	switch {
	case x.priority < y.priority:
		return -1
	case x.priority > y.priority:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	}
	return 0
}

// Add inserts value with the given priority. Duplicates are kept.
func (q *Queue[T]) Add(value T, priority int) *Queue[T] {
	q.heap.Enqueue(entry[T]{value: value, priority: priority, seq: q.seq})
	q.seq++
	return q
}

// Remove evicts and returns the lowest-priority element.
// Callers must check IsEmpty first; an empty queue panics with ErrEmpty.
func (q *Queue[T]) Remove() T {
	v, ok := q.heap.Dequeue()
	if !ok {
		panic(ErrEmpty)
	}
	return v.(entry[T]).value
}

func (q *Queue[T]) IsEmpty() bool {
	return q.heap.Empty()
}

func (q *Queue[T]) Len() int {
	return q.heap.Size()
}
