package frontier

import "errors"

// ErrEmptyContainer is returned by Pop when the container holds no items.
var ErrEmptyContainer = errors.New("frontier: pop from empty container")

// Frontier is an ordered container of items awaiting expansion.
// The pop order is the container's discipline (LIFO, FIFO, priority).
type Frontier[T any] interface {
	// Push adds item. There is no capacity bound.
	Push(item T)
	// Pop removes and returns the next item, or ErrEmptyContainer.
	Pop() (T, error)
	// Empty reports whether no items remain.
	Empty() bool
	// Len returns the number of items held.
	Len() int
}

var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*PriorityQueue[int])(nil)
)
