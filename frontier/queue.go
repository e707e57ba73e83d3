package frontier

import "fmt"

// minQueueCap is the ring size allocated on the first Push.
const minQueueCap = 8

// Queue is a FIFO container backed by a ring buffer that doubles when full.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf  []T
	head int // index of the oldest item
	size int
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < minQueueCap {
		capacity = minQueueCap
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
}

// Pop removes and returns the least recently pushed item.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyContainer
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return item, nil
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.buf[q.head], nil
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// String renders the contents head to tail.
func (q *Queue[T]) String() string {
	return fmt.Sprint(q.items())
}

// grow doubles the ring and unwraps the items so head lands at index 0.
func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n < minQueueCap {
		n = minQueueCap
	}
	next := make([]T, n)
	copy(next, q.items())
	q.buf = next
	q.head = 0
}

// items returns a head-to-tail copy of the queued values.
func (q *Queue[T]) items() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}
