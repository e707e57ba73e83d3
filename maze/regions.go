package maze

import "github.com/katalvlaran/lvsearch/search"

// Regions finds all 4-connected regions of open (non-blocked) cells.
// Each region lists its locations in discovery order; regions are ordered
// by their first cell in row-major order.
//
// Time:   O(Rows·Columns).
// Memory: O(Rows·Columns) for the seen flags and output.
func (m *Maze) Regions() [][]Location {
	seen := make([]bool, m.rows*m.columns)
	var regions [][]Location

	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.columns; c++ {
			if m.cells[r][c] == Blocked {
				continue
			}
			i0 := m.index(Location{r, c})
			if seen[i0] {
				continue
			}
			// flood the region with a slice-backed queue
			queue := []int{i0}
			seen[i0] = true
			var region []Location

			for qi := 0; qi < len(queue); qi++ {
				u := m.location(queue[qi])
				region = append(region, u)
				for _, next := range m.Successors(u) {
					vi := m.index(next)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// Connected reports whether a and b are open cells of the same region.
// Complexity: O(Rows·Columns).
func (m *Maze) Connected(a, b Location) bool {
	if !m.open(a) || !m.open(b) {
		return false
	}
	for _, region := range m.Regions() {
		if search.LinearContains(region, a) {
			return search.LinearContains(region, b)
		}
	}
	return false
}

// index maps l to a row-major index: Row*columns + Column.
func (m *Maze) index(l Location) int {
	return l.Row*m.columns + l.Column
}

// location converts a row-major index back to a Location.
func (m *Maze) location(i int) Location {
	return Location{i / m.columns, i % m.columns}
}
