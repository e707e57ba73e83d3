// Package maze defines cell markers, locations, options and sentinel errors.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrSparseness indicates a blocking probability outside [0,1).
	ErrSparseness = errors.New("maze: sparseness must be in [0,1)")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMarker indicates an unknown cell character in parsed text.
	ErrMarker = errors.New("maze: unknown cell marker")
	// ErrStartGoal indicates parsed text without exactly one start and one goal.
	ErrStartGoal = errors.New("maze: need exactly one start and one goal")
)

// Cell is the single-character marker of a grid cell.
type Cell byte

const (
	Empty   Cell = ' '
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Path    Cell = '*'
)

// Valid reports whether c is one of the known markers.
func (c Cell) Valid() bool {
	switch c {
	case Empty, Blocked, Start, Goal, Path:
		return true
	}
	return false
}

// String returns the marker as a one-character string.
func (c Cell) String() string { return string(rune(c)) }

// Location is a (row, column) cell coordinate. Row 0 is the top line.
type Location struct {
	Row    int `json:"row" yaml:"row" mapstructure:"row"`
	Column int `json:"column" yaml:"column" mapstructure:"column"`
}

// String formats the location as "(row,column)".
func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.Row, l.Column) }

// Options contains tunable parameters for random generation.
type Options struct {
	// Rows and Columns fix the grid size.
	Rows    int `json:"rows" yaml:"rows" mapstructure:"rows"`
	Columns int `json:"columns" yaml:"columns" mapstructure:"columns"`
	// Sparseness is the probability each cell is blocked.
	Sparseness float64 `json:"sparseness" yaml:"sparseness" mapstructure:"sparseness"`
	// Start and Goal are stamped after the random fill.
	Start Location `json:"start" yaml:"start" mapstructure:"start"`
	Goal  Location `json:"goal" yaml:"goal" mapstructure:"goal"`
	// Seed feeds the random source; 0 selects DefaultSeed.
	Seed int64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// Default generation parameters.
const (
	DefaultRows       = 10
	DefaultColumns    = 10
	DefaultSparseness = 0.2
	DefaultSeed int64 = 1
)

// DefaultOptions returns a 10×10 grid, 20% blocked, start at the origin and
// goal in the opposite corner.
func DefaultOptions() Options {
	return Options{
		Rows:       DefaultRows,
		Columns:    DefaultColumns,
		Sparseness: DefaultSparseness,
		Start:      Location{0, 0},
		Goal:       Location{DefaultRows - 1, DefaultColumns - 1},
		Seed:       0,
	}
}

// Validate checks dimensions, sparseness and that Start and Goal lie on the
// grid.
func (o Options) Validate() error {
	if o.Rows < 1 || o.Columns < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, o.Rows, o.Columns)
	}
	if o.Sparseness < 0 || o.Sparseness >= 1 {
		return fmt.Errorf("%w: got %v", ErrSparseness, o.Sparseness)
	}
	for _, l := range []Location{o.Start, o.Goal} {
		if l.Row < 0 || l.Row >= o.Rows || l.Column < 0 || l.Column >= o.Columns {
			return fmt.Errorf("%w: %s on %d×%d grid", ErrOutOfBounds, l, o.Rows, o.Columns)
		}
	}
	return nil
}
