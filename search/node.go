package search

import (
	"cmp"
	"fmt"
)

// Handle addresses a Node inside a Tree.
type Handle int

// NoParent is the parent handle of a root node.
const NoParent Handle = -1

// Comparer is implemented by types with a total order.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equivalent, and a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// Node is a search-tree vertex: a state plus the handle of the node that
// discovered it. Cost and Heuristic are carried for priority-driven reuse;
// DFS and BFS leave them at zero.
type Node[S comparable] struct {
	State     S
	Parent    Handle
	Cost      float64
	Heuristic float64
}

var _ Comparer[Node[int]] = Node[int]{}

// Priority returns Cost + Heuristic.
func (n Node[S]) Priority() float64 { return n.Cost + n.Heuristic }

// Compare orders nodes by Cost + Heuristic, ascending.
func (n Node[S]) Compare(other Node[S]) int {
	return cmp.Compare(n.Priority(), other.Priority())
}

// CompareNodes is Node.Compare as a free function, usable as a
// frontier.PriorityQueue comparator.
func CompareNodes[S comparable](a, b Node[S]) int {
	return a.Compare(b)
}

// Tree is an append-only arena of nodes. A node's parent always has a
// smaller handle than the node, so parent chains end at a root.
type Tree[S comparable] struct {
	nodes  []Node[S]
	depths []int
}

// NewTree returns an empty tree with room for capacity nodes.
func NewTree[S comparable](capacity int) *Tree[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree[S]{
		nodes:  make([]Node[S], 0, capacity),
		depths: make([]int, 0, capacity),
	}
}

// Add appends a node and returns its handle. parent must be NoParent or a
// handle already in the tree.
func (t *Tree[S]) Add(state S, parent Handle, cost, heuristic float64) (Handle, error) {
	depth := 0
	if parent != NoParent {
		if !t.valid(parent) {
			return NoParent, fmt.Errorf("%w: parent %d", ErrInvalidNode, parent)
		}
		depth = t.depths[parent] + 1
	}
	t.nodes = append(t.nodes, Node[S]{State: state, Parent: parent, Cost: cost, Heuristic: heuristic})
	t.depths = append(t.depths, depth)

	return Handle(len(t.nodes) - 1), nil
}

// Node returns a copy of the node at h.
func (t *Tree[S]) Node(h Handle) (Node[S], error) {
	if !t.valid(h) {
		return Node[S]{}, fmt.Errorf("%w: %d", ErrInvalidNode, h)
	}
	return t.nodes[h], nil
}

// Depth returns the number of edges between h and its root.
func (t *Tree[S]) Depth(h Handle) (int, error) {
	if !t.valid(h) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNode, h)
	}
	return t.depths[h], nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

func (t *Tree[S]) valid(h Handle) bool {
	return t != nil && h >= 0 && int(h) < len(t.nodes)
}

// PathTo reconstructs the states from the root to h inclusive by following
// parent handles. Returns ErrInvalidNode if t is nil or h is not in t.
func PathTo[S comparable](t *Tree[S], h Handle) ([]S, error) {
	if !t.valid(h) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, h)
	}
	// build reversed path
	path := make([]S, 0, t.depths[h]+1)
	for cur := h; cur != NoParent; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur].State)
	}
	// reverse to get root → h
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
