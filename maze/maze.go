package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// Maze is a rectangular grid of cells with one start and one goal.
// Dimensions, Start and Goal are fixed at construction; cells change only
// through Mark and Clear. A Maze is not safe for concurrent mutation.
type Maze struct {
	rows, columns int
	cells         [][]Cell
	start, goal   Location
}

var _ search.StateSpace[Location] = (*Maze)(nil)

// New builds a random maze from opts using a source seeded with opts.Seed.
func New(opts Options) (*Maze, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return NewWithRand(opts, rand.New(rand.NewSource(seed)))
}

// NewWithRand builds a random maze drawing from rng. opts.Seed is ignored.
// Each cell is blocked when rng.Float64() < opts.Sparseness; start and goal
// are stamped afterwards and are never blocked.
// Complexity: O(Rows×Columns).
func NewWithRand(opts Options, rng *rand.Rand) (*Maze, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	m := &Maze{
		rows:    opts.Rows,
		columns: opts.Columns,
		cells:   make([][]Cell, opts.Rows),
		start:   opts.Start,
		goal:    opts.Goal,
	}
	for r := 0; r < m.rows; r++ {
		row := make([]Cell, m.columns)
		for c := range row {
			row[c] = Empty
			if rng.Float64() < opts.Sparseness {
				row[c] = Blocked
			}
		}
		m.cells[r] = row
	}
	m.stamp()

	return m, nil
}

// stamp writes the start and goal markers.
func (m *Maze) stamp() {
	m.cells[m.start.Row][m.start.Column] = Start
	m.cells[m.goal.Row][m.goal.Column] = Goal
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of grid columns.
func (m *Maze) Columns() int { return m.columns }

// Start returns the start location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the goal location.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether l lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < m.rows && l.Column >= 0 && l.Column < m.columns
}

// At returns the marker at l.
func (m *Maze) At(l Location) (Cell, error) {
	if !m.InBounds(l) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, l)
	}
	return m.cells[l.Row][l.Column], nil
}

// Blocked counts blocked cells.
func (m *Maze) Blocked() int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c == Blocked {
				n++
			}
		}
	}
	return n
}

// open reports whether l is on the grid and not blocked.
func (m *Maze) open(l Location) bool {
	return m.InBounds(l) && m.cells[l.Row][l.Column] != Blocked
}

// GoalTest reports whether l is the goal.
func (m *Maze) GoalTest(l Location) bool { return l == m.goal }

// moves lists neighbour offsets in successor order: down, right, up, left.
var moves = [4]Location{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Successors returns the open neighbours of l in the order down, right, up,
// left. Out-of-bounds and blocked cells are never returned.
func (m *Maze) Successors(l Location) []Location {
	out := make([]Location, 0, len(moves))
	for _, d := range moves {
		next := Location{l.Row + d.Row, l.Column + d.Column}
		if m.open(next) {
			out = append(out, next)
		}
	}
	return out
}

// Mark draws path with the Path marker, then restamps start and goal.
// Locations outside the grid are ignored.
func (m *Maze) Mark(path []Location) {
	m.paint(path, Path)
}

// Clear resets path cells to Empty, then restamps start and goal.
// Locations outside the grid are ignored.
func (m *Maze) Clear(path []Location) {
	m.paint(path, Empty)
}

func (m *Maze) paint(path []Location, c Cell) {
	for _, l := range path {
		if m.InBounds(l) {
			m.cells[l.Row][l.Column] = c
		}
	}
	m.stamp()
}

// String renders the grid, one newline-terminated line per row.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	for _, row := range m.cells {
		for _, c := range row {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Solve runs BFS or DFS (algo is search.AlgoBFS or search.AlgoDFS) from the
// start location. Any other algo is rejected with search.ErrOptionViolation.
func (m *Maze) Solve(algo string, opts ...search.Option[Location]) (*search.Result[Location], error) {
	switch algo {
	case search.AlgoBFS:
		return search.BFS[Location](m, m.start, opts...)
	case search.AlgoDFS:
		return search.DFS[Location](m, m.start, opts...)
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", search.ErrOptionViolation, algo)
}
