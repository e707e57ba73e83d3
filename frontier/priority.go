package frontier

import (
	"container/heap"
	"fmt"
)

// Compare orders two items: negative when a sorts before b, zero when they
// are equivalent, positive otherwise.
type Compare[T any] func(a, b T) int

// pqEntry pairs an item with its insertion sequence for stable tie-breaks.
type pqEntry[T any] struct {
	item T
	seq  uint64
}

// pqHeap implements heap.Interface over entries.
type pqHeap[T any] struct {
	entries []pqEntry[T]
	cmp     Compare[T]
}

func (h *pqHeap[T]) Len() int { return len(h.entries) }

func (h *pqHeap[T]) Less(i, j int) bool {
	if c := h.cmp(h.entries[i].item, h.entries[j].item); c != 0 {
		return c < 0
	}
	return h.entries[i].seq < h.entries[j].seq
}

func (h *pqHeap[T]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *pqHeap[T]) Push(x any) { h.entries = append(h.entries, x.(pqEntry[T])) }

func (h *pqHeap[T]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = pqEntry[T]{}
	h.entries = old[:n-1]
	return e
}

// PriorityQueue pops the minimum item under its comparator.
// Items that compare equal leave in the order they were pushed.
type PriorityQueue[T any] struct {
	h   pqHeap[T]
	seq uint64
}

// NewPriorityQueue returns an empty queue ordered by cmp.
// cmp must not be nil.
func NewPriorityQueue[T any](cmp Compare[T]) *PriorityQueue[T] {
	if cmp == nil {
		panic("frontier: nil comparator")
	}
	return &PriorityQueue[T]{h: pqHeap[T]{cmp: cmp}}
}

// Push inserts item. O(log n).
func (pq *PriorityQueue[T]) Push(item T) {
	heap.Push(&pq.h, pqEntry[T]{item: item, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the minimum item. O(log n).
func (pq *PriorityQueue[T]) Pop() (T, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return heap.Pop(&pq.h).(pqEntry[T]).item, nil
}

// Empty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) Empty() bool { return pq.h.Len() == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// String renders the items in heap order, which is not sorted order.
func (pq *PriorityQueue[T]) String() string {
	out := make([]T, len(pq.h.entries))
	for i, e := range pq.h.entries {
		out[i] = e.item
	}
	return fmt.Sprint(out)
}
