package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// grid joins rows with newlines so trailing spaces survive editors.
func grid(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func loc(r, c int) maze.Location { return maze.Location{Row: r, Column: c} }

var algos = []string{search.AlgoDFS, search.AlgoBFS}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestOptions_Validate rejects every malformed option set.
func TestOptions_Validate(t *testing.T) {
	base := maze.DefaultOptions()
	cases := []struct {
		name string
		edit func(*maze.Options)
		err  error
	}{
		{"ZeroRows", func(o *maze.Options) { o.Rows = 0 }, maze.ErrEmptyGrid},
		{"NegativeColumns", func(o *maze.Options) { o.Columns = -3 }, maze.ErrEmptyGrid},
		{"SparsenessOne", func(o *maze.Options) { o.Sparseness = 1 }, maze.ErrSparseness},
		{"SparsenessNegative", func(o *maze.Options) { o.Sparseness = -0.1 }, maze.ErrSparseness},
		{"StartOff", func(o *maze.Options) { o.Start = loc(-1, 0) }, maze.ErrOutOfBounds},
		{"GoalOff", func(o *maze.Options) { o.Goal = loc(10, 9) }, maze.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := base
			tc.edit(&o)
			_, err := maze.New(o)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%+v) error = %v; want %v", o, err, tc.err)
			}
		})
	}
	require.NoError(t, base.Validate())
}

// TestNew_Deterministic checks that a seed fixes the layout.
func TestNew_Deterministic(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Seed = 42
	a, err := maze.New(opts)
	require.NoError(t, err)
	b, err := maze.New(opts)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	// seed 0 selects the default seed
	opts.Seed = 0
	c, err := maze.New(opts)
	require.NoError(t, err)
	opts.Seed = maze.DefaultSeed
	d, err := maze.New(opts)
	require.NoError(t, err)
	require.Equal(t, c.String(), d.String())
}

// TestNew_StartGoalNeverBlocked uses a near-certain blocking probability.
func TestNew_StartGoalNeverBlocked(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Sparseness = 0.999
	for seed := int64(1); seed <= 20; seed++ {
		opts.Seed = seed
		m, err := maze.New(opts)
		require.NoError(t, err)

		s, err := m.At(m.Start())
		require.NoError(t, err)
		g, err := m.At(m.Goal())
		require.NoError(t, err)
		require.Equal(t, maze.Start, s)
		require.Equal(t, maze.Goal, g)
	}
}

// TestNew_Sparseness checks the two extremes of the blocking probability
// and the shape of the rendering.
func TestNew_Sparseness(t *testing.T) {
	opts := maze.Options{Rows: 4, Columns: 6, Sparseness: 0, Start: loc(0, 0), Goal: loc(3, 5), Seed: 7}
	m, err := maze.New(opts)
	require.NoError(t, err)
	require.Zero(t, m.Blocked())
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 6, m.Columns())

	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Len(t, line, 6)
	}
	require.Equal(t, "S     ", lines[0])
	require.Equal(t, "     G", lines[3])

	opts.Sparseness = 0.9999999
	m, err = maze.New(opts)
	require.NoError(t, err)
	require.Equal(t, 4*6-2, m.Blocked())
}

// TestParse_Errors verifies Parse rejects malformed text.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"EmptyLine", "\n\n", maze.ErrEmptyGrid},
		{"Ragged", grid("S ", "  G"), maze.ErrNonRectangular},
		{"Marker", grid("S?", " G"), maze.ErrMarker},
		{"NoStart", grid("  ", " G"), maze.ErrStartGoal},
		{"TwoGoals", grid("SG", " G"), maze.ErrStartGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := maze.Parse(tc.text); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

// TestParse_RoundTrip parses text and renders it back, reading path markers
// as empty cells.
func TestParse_RoundTrip(t *testing.T) {
	text := grid("S X ", " XX ", "   G")
	m, err := maze.Parse(text)
	require.NoError(t, err)
	require.Equal(t, text, m.String())
	require.Equal(t, loc(0, 0), m.Start())
	require.Equal(t, loc(2, 3), m.Goal())
	require.Equal(t, 3, m.Blocked())

	marked, err := maze.Parse(grid("S*", "*G"))
	require.NoError(t, err)
	require.Equal(t, grid("S ", " G"), marked.String())

	crlf, err := maze.Parse("S \r\n G\r\n")
	require.NoError(t, err)
	require.Equal(t, grid("S ", " G"), crlf.String())
}

//----------------------------------------------------------------------------//
// Search contract
//----------------------------------------------------------------------------//

// TestSuccessors_Order pins the down, right, up, left order and filtering.
func TestSuccessors_Order(t *testing.T) {
	m, err := maze.Parse(grid(
		"S  ",
		"   ",
		"  G",
	))
	require.NoError(t, err)
	require.Equal(t, []maze.Location{loc(2, 1), loc(1, 2), loc(0, 1), loc(1, 0)}, m.Successors(loc(1, 1)))
	require.Equal(t, []maze.Location{loc(1, 0), loc(0, 1)}, m.Successors(loc(0, 0)))

	walled, err := maze.Parse(grid(
		"SX ",
		"X X",
		" XG",
	))
	require.NoError(t, err)
	require.Empty(t, walled.Successors(loc(1, 1)))
	require.Empty(t, walled.Successors(loc(0, 0)))
	require.True(t, walled.GoalTest(loc(2, 2)))
	require.False(t, walled.GoalTest(loc(0, 0)))
}

// TestSuccessors_NeverInvalid checks every cell of several random mazes.
func TestSuccessors_NeverInvalid(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Sparseness = 0.4
	for seed := int64(1); seed <= 10; seed++ {
		opts.Seed = seed
		m, err := maze.New(opts)
		require.NoError(t, err)
		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Columns(); c++ {
				for _, next := range m.Successors(loc(r, c)) {
					require.True(t, m.InBounds(next), "seed %d: %s out of bounds", seed, next)
					cell, err := m.At(next)
					require.NoError(t, err)
					require.NotEqual(t, maze.Blocked, cell, "seed %d: %s blocked", seed, next)
				}
			}
		}
	}
}

// TestSolve_OpenThreeByThree is the obstacle-free 3×3 scenario.
func TestSolve_OpenThreeByThree(t *testing.T) {
	m, err := maze.Parse(grid("S  ", "   ", "  G"))
	require.NoError(t, err)

	res, err := m.Solve(search.AlgoBFS)
	require.NoError(t, err)
	require.True(t, res.Found)
	path, err := res.Path()
	require.NoError(t, err)
	require.Equal(t, []maze.Location{loc(0, 0), loc(1, 0), loc(2, 0), loc(2, 1), loc(2, 2)}, path)
	require.Equal(t, 4, res.Depth())

	res, err = m.Solve(search.AlgoDFS)
	require.NoError(t, err)
	path, err = res.Path()
	require.NoError(t, err)
	require.Equal(t, []maze.Location{loc(0, 0), loc(0, 1), loc(0, 2), loc(1, 2), loc(2, 2)}, path)
}

// TestSolve_Walled is the 2×2 scenario with both neighbours of the start
// blocked.
func TestSolve_Walled(t *testing.T) {
	m, err := maze.Parse(grid("SX", "XG"))
	require.NoError(t, err)
	for _, algo := range algos {
		res, err := m.Solve(algo)
		require.NoError(t, err, algo)
		require.False(t, res.Found, algo)
		require.Equal(t, 1, res.Explored, algo)
		_, err = res.Path()
		require.ErrorIs(t, err, search.ErrNoSolution, algo)
	}
	require.False(t, m.Connected(m.Start(), m.Goal()))
}

// TestSolve_StartIsGoal returns the single-element path.
func TestSolve_StartIsGoal(t *testing.T) {
	m, err := maze.New(maze.Options{Rows: 3, Columns: 3, Start: loc(1, 1), Goal: loc(1, 1)})
	require.NoError(t, err)
	for _, algo := range algos {
		res, err := m.Solve(algo)
		require.NoError(t, err, algo)
		require.True(t, res.Found, algo)
		require.Zero(t, res.Expanded, algo)
		path, err := res.Path()
		require.NoError(t, err)
		require.Equal(t, []maze.Location{loc(1, 1)}, path, algo)
	}
}

// TestSolve_UnknownAlgorithm rejects names other than dfs and bfs.
func TestSolve_UnknownAlgorithm(t *testing.T) {
	m, err := maze.Parse(grid("SG"))
	require.NoError(t, err)
	_, err = m.Solve("astar")
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

// shortest computes edge distances from start by repeated relaxation,
// independently of the search package. -1 marks unreachable cells.
func shortest(m *maze.Maze) [][]int {
	dist := make([][]int, m.Rows())
	for r := range dist {
		dist[r] = make([]int, m.Columns())
		for c := range dist[r] {
			dist[r][c] = -1
		}
	}
	dist[m.Start().Row][m.Start().Column] = 0
	for changed := true; changed; {
		changed = false
		for r := 0; r < m.Rows(); r++ {
			for c := 0; c < m.Columns(); c++ {
				if dist[r][c] < 0 {
					continue
				}
				for _, n := range m.Successors(loc(r, c)) {
					if d := dist[r][c] + 1; dist[n.Row][n.Column] < 0 || d < dist[n.Row][n.Column] {
						dist[n.Row][n.Column] = d
						changed = true
					}
				}
			}
		}
	}
	return dist
}

// checkPath asserts path is a walk of open, adjacent cells from start to goal.
func checkPath(t *testing.T, m *maze.Maze, path []maze.Location) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.True(t, search.LinearContains(m.Successors(path[i-1]), path[i]),
			"step %s → %s is not a move", path[i-1], path[i])
	}
}

// TestSolve_RandomProperties runs both engines over seeded random mazes and
// checks them against the region and distance oracles.
func TestSolve_RandomProperties(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Sparseness = 0.3
	solvable := 0
	for seed := int64(1); seed <= 60; seed++ {
		opts.Seed = seed
		m, err := maze.New(opts)
		require.NoError(t, err)
		connected := m.Connected(m.Start(), m.Goal())
		want := shortest(m)[m.Goal().Row][m.Goal().Column]

		bfsRes, err := m.Solve(search.AlgoBFS)
		require.NoError(t, err)
		dfsRes, err := m.Solve(search.AlgoDFS)
		require.NoError(t, err)

		for _, res := range []*search.Result[maze.Location]{bfsRes, dfsRes} {
			require.Equal(t, connected, res.Found, "seed %d", seed)
			require.LessOrEqual(t, res.Explored, m.Rows()*m.Columns(), "seed %d", seed)
			require.Equal(t, res.Explored, res.Tree.Len(), "seed %d", seed)
		}
		if !connected {
			require.Equal(t, -1, want, "seed %d", seed)
			continue
		}
		solvable++

		bfsPath, err := bfsRes.Path()
		require.NoError(t, err)
		checkPath(t, m, bfsPath)
		dfsPath, err := dfsRes.Path()
		require.NoError(t, err)
		checkPath(t, m, dfsPath)

		assert.Equal(t, want, bfsRes.Depth(), "seed %d: BFS not minimal", seed)
		assert.LessOrEqual(t, bfsRes.Depth(), dfsRes.Depth(), "seed %d", seed)
	}
	require.Positive(t, solvable, "no solvable maze among the seeds")
}

//----------------------------------------------------------------------------//
// Mark / Clear / Regions
//----------------------------------------------------------------------------//

// TestMarkClear marks a solution, checks the markers, then clears it and
// expects the original grid back.
func TestMarkClear(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Sparseness = 0.25
	for seed := int64(1); seed <= 30; seed++ {
		opts.Seed = seed
		m, err := maze.New(opts)
		require.NoError(t, err)
		res, err := m.Solve(search.AlgoBFS)
		require.NoError(t, err)
		if !res.Found {
			continue
		}
		path, err := res.Path()
		require.NoError(t, err)
		before := m.String()

		m.Mark(path)
		for _, l := range path {
			cell, _ := m.At(l)
			switch l {
			case m.Start():
				require.Equal(t, maze.Start, cell)
			case m.Goal():
				require.Equal(t, maze.Goal, cell)
			default:
				require.Equal(t, maze.Path, cell)
			}
		}

		m.Clear(path)
		for _, l := range path[1 : len(path)-1] {
			cell, _ := m.At(l)
			require.Equal(t, maze.Empty, cell)
		}
		require.Equal(t, before, m.String(), "seed %d", seed)
	}
}

// TestMark_IgnoresOutOfBounds keeps the grid intact for foreign locations.
func TestMark_IgnoresOutOfBounds(t *testing.T) {
	m, err := maze.Parse(grid("S ", " G"))
	require.NoError(t, err)
	m.Mark([]maze.Location{loc(5, 5), loc(-1, 0), loc(0, 1)})
	require.Equal(t, grid("S*", " G"), m.String())

	_, err = m.At(loc(2, 0))
	require.ErrorIs(t, err, maze.ErrOutOfBounds)
}

// TestRegions counts islands of open cells.
//
//	S X
//	XXX
//	  G
//
// Expect 3 regions: {S, (0,1)}, {(0,3)}, {(2,0) … G}.
func TestRegions(t *testing.T) {
	m, err := maze.Parse(grid(
		"S X ",
		"XXXX",
		"   G",
	))
	require.NoError(t, err)
	regions := m.Regions()
	require.Len(t, regions, 3)
	require.ElementsMatch(t, []maze.Location{loc(0, 0), loc(0, 1)}, regions[0])
	require.Equal(t, []maze.Location{loc(0, 3)}, regions[1])
	require.Len(t, regions[2], 4)

	require.True(t, m.Connected(loc(2, 0), m.Goal()))
	require.False(t, m.Connected(m.Start(), m.Goal()))
	require.False(t, m.Connected(loc(1, 1), loc(0, 0)), "blocked cell is never connected")
}
