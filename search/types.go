// Package search defines the state-space contract, options and sentinel
// errors for the traversal engine.
package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrNilSpace is returned when a nil StateSpace is passed to DFS or BFS.
	ErrNilSpace = errors.New("search: state space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidNode is returned when a path is requested for a handle that
	// does not name a node of the tree.
	ErrInvalidNode = errors.New("search: invalid node handle")

	// ErrNoSolution is returned by Result.Path when the search found nothing.
	// Check Result.Found instead of relying on this error.
	ErrNoSolution = fmt.Errorf("%w: search found no solution", ErrInvalidNode)
)

// StateSpace is the domain a search runs over.
// S must be comparable so states can be kept in the explored set.
type StateSpace[S comparable] interface {
	// GoalTest reports whether s is an accepted solution.
	GoalTest(s S) bool
	// Successors returns the states reachable from s in one step.
	// The order of the returned slice drives expansion order.
	Successors(s S) []S
}

// SpaceFuncs adapts a pair of plain functions to StateSpace.
type SpaceFuncs[S comparable] struct {
	Goal func(S) bool
	Next func(S) []S
}

// GoalTest calls f.Goal.
func (f SpaceFuncs[S]) GoalTest(s S) bool { return f.Goal(s) }

// Successors calls f.Next; a nil Next means every state is a dead end.
func (f SpaceFuncs[S]) Successors(s S) []S {
	if f.Next == nil {
		return nil
	}
	return f.Next(s)
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks that customise a search.
type Options[S comparable] struct {
	// Logger receives debug records when a search starts and ends.
	Logger *slog.Logger

	// OnExpand is called for every popped non-goal node before its
	// successors are generated. Returning an error aborts the search.
	OnExpand func(state S, depth int) error

	// MaxDepth, if > 0, prevents children deeper than MaxDepth from being
	// pushed. 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a discarding logger, no hook and no
// depth limit.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand: nil,
		MaxDepth: 0,
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger[S comparable](l *slog.Logger) Option[S] {
	return func(o *Options[S]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a hook run before each expansion.
func WithOnExpand[S comparable](fn func(state S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		o.OnExpand = fn
	}
}

// WithMaxDepth bounds the depth of pushed nodes.
//
//	d > 0:  children deeper than d are not pushed
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a search.
type Result[S comparable] struct {
	// Found is false when the frontier emptied without reaching a goal.
	Found bool

	// Tree holds every node created during the search.
	Tree *Tree[S]

	// Goal is the handle of the node that passed GoalTest, NoParent otherwise.
	Goal Handle

	// Explored is the size of the explored set when the search stopped.
	Explored int

	// Expanded counts nodes whose successors were generated.
	Expanded int

	// MaxFrontier is the peak number of nodes waiting in the frontier.
	MaxFrontier int
}

// Path returns the states from the initial state to the goal inclusive.
// It returns ErrNoSolution when Found is false.
func (r *Result[S]) Path() ([]S, error) {
	if r == nil || !r.Found {
		return nil, ErrNoSolution
	}
	return PathTo(r.Tree, r.Goal)
}

// Depth returns the number of edges on the solution path, or -1 when no
// solution was found.
func (r *Result[S]) Depth() int {
	if r == nil || !r.Found {
		return -1
	}
	d, err := r.Tree.Depth(r.Goal)
	if err != nil {
		return -1
	}
	return d
}
