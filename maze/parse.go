package maze

import (
	"fmt"
	"strings"
)

// Parse builds a maze from rendered text: one line per row, using the
// markers ' ', 'X', 'S', 'G' and '*'. A single trailing newline is allowed
// and '\r' is stripped. Path markers are read as empty cells so the output
// of String after Mark parses back to the unmarked maze.
// Exactly one 'S' and one 'G' are required.
// Complexity: O(Rows×Columns).
func Parse(text string) (*Maze, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	h, w := len(lines), len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	m := &Maze{rows: h, columns: w, cells: make([][]Cell, h)}
	starts, goals := 0, 0
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		row := make([]Cell, w)
		for c := 0; c < w; c++ {
			cell := Cell(line[c])
			switch cell {
			case Start:
				starts++
				m.start = Location{r, c}
			case Goal:
				goals++
				m.goal = Location{r, c}
			case Path:
				cell = Empty
			case Empty, Blocked:
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrMarker, line[c], Location{r, c})
			}
			row[c] = cell
		}
		m.cells[r] = row
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d goal", ErrStartGoal, starts, goals)
	}

	return m, nil
}
