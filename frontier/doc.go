// Package frontier provides the containers that hold discovered-but-not-yet
// expanded search nodes.
//
// What
//
//   - Stack[T]:         LIFO discipline; drives depth-first search.
//   - Queue[T]:         FIFO discipline; drives breadth-first search.
//   - PriorityQueue[T]: pops the minimum under a caller comparator; ties are
//     resolved in insertion order.
//   - Frontier[T]:      the shared Push/Pop/Empty/Len contract, so a traversal
//     engine is written once over any discipline.
//
// Complexity
//
//   - Stack:         Push/Pop O(1) amortised.
//   - Queue:         Push/Pop O(1) amortised (ring buffer, grows by doubling).
//   - PriorityQueue: Push/Pop O(log n).
//
// Errors
//
//   - ErrEmptyContainer if Pop is called on an empty container.
//
// None of the containers are safe for concurrent use.
package frontier
