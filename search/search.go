package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
)

// Algorithm names used in log records.
const (
	AlgoDFS = "dfs"
	AlgoBFS = "bfs"
)

// walker encapsulates mutable search state for a single call.
type walker[S comparable] struct {
	space    StateSpace[S]
	opts     Options[S]
	frontier frontier.Frontier[Handle]
	explored map[S]struct{}
	tree     *Tree[S]
	res      *Result[S]
}

// DFS runs depth-first search from initial. Children are pushed in the order
// Successors returns them and popped last-in first-out.
// The returned Result has Found == false when no goal is reachable.
func DFS[S comparable](space StateSpace[S], initial S, opts ...Option[S]) (*Result[S], error) {
	return run(AlgoDFS, space, initial, frontier.NewStack[Handle](0), opts)
}

// BFS runs breadth-first search from initial. Nodes are expanded in order of
// non-decreasing depth, so a found path has the fewest possible edges.
// The returned Result has Found == false when no goal is reachable.
func BFS[S comparable](space StateSpace[S], initial S, opts ...Option[S]) (*Result[S], error) {
	return run(AlgoBFS, space, initial, frontier.NewQueue[Handle](0), opts)
}

// run is the engine shared by DFS and BFS; only the frontier differs.
func run[S comparable](algo string, space StateSpace[S], initial S, f frontier.Frontier[Handle], opts []Option[S]) (*Result[S], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tree := NewTree[S](0)
	w := &walker[S]{
		space:    space,
		opts:     o,
		frontier: f,
		explored: make(map[S]struct{}),
		tree:     tree,
		res:      &Result[S]{Tree: tree, Goal: NoParent},
	}
	log := o.Logger.With(slog.String("algo", algo))
	log.Debug("search started", slog.Any("initial", initial))

	// Seed frontier with the root (no parent)
	if err := w.push(initial, NoParent); err != nil {
		return nil, err
	}
	err := w.loop()
	w.res.Explored = len(w.explored)
	if err != nil {
		log.Debug("search aborted", slog.Any("error", err))
		return w.res, err
	}

	log.Debug("search finished",
		slog.Bool("found", w.res.Found),
		slog.Int("explored", w.res.Explored),
		slog.Int("expanded", w.res.Expanded),
		slog.Int("max_frontier", w.res.MaxFrontier),
	)
	return w.res, nil
}

// push marks state explored, records its node and adds the handle to the
// frontier.
func (w *walker[S]) push(state S, parent Handle) error {
	h, err := w.tree.Add(state, parent, 0, 0)
	if err != nil {
		return err
	}
	w.explored[state] = struct{}{}
	w.frontier.Push(h)
	if n := w.frontier.Len(); n > w.res.MaxFrontier {
		w.res.MaxFrontier = n
	}
	return nil
}

// loop pops nodes until a goal is found, the frontier empties or a hook
// fails.
func (w *walker[S]) loop() error {
	for !w.frontier.Empty() {
		h, err := w.frontier.Pop()
		if err != nil {
			return err
		}
		node := w.tree.nodes[h]
		if w.space.GoalTest(node.State) {
			w.res.Found = true
			w.res.Goal = h
			return nil
		}
		if err = w.expand(h, node.State); err != nil {
			return err
		}
	}
	return nil
}

// expand runs OnExpand, then pushes every unexplored successor of state in
// the order the state space yields them.
func (w *walker[S]) expand(h Handle, state S) error {
	depth := w.tree.depths[h]
	if w.opts.OnExpand != nil {
		if err := w.opts.OnExpand(state, depth); err != nil {
			return fmt.Errorf("search: OnExpand error at %v: %w", state, err)
		}
	}
	w.res.Expanded++

	if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
		return nil
	}
	for _, next := range w.space.Successors(state) {
		if _, seen := w.explored[next]; seen {
			continue
		}
		if err := w.push(next, h); err != nil {
			return err
		}
	}
	return nil
}
