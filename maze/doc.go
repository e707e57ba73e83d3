// Package maze generates a random rectangular grid with blocked cells and
// exposes it as a search.StateSpace[Location], so the generic DFS/BFS engine
// can route from the start cell to the goal cell.
//
// What:
//
//   - New / NewWithRand: random fill; every cell is blocked with probability
//     Sparseness, then Start and Goal are stamped over whatever was drawn.
//   - Parse: build a maze from its rendered text, for fixed scenarios.
//   - GoalTest / Successors: the search contract. Successors yields the open
//     in-bounds neighbours in the fixed order down, right, up, left.
//   - Mark / Clear: draw a solution path with '*' and erase it again; both
//     restamp Start and Goal so they stay visible.
//   - Regions / Connected: 4-connected open regions, an independent check on
//     whether a path can exist at all.
//
// Rendering:
//
//	' ' empty   'X' blocked   'S' start   'G' goal   '*' path
//
// One line per row, each terminated by a newline.
//
// Determinism:
//
//	The random source is seeded from Options.Seed (0 selects a fixed default),
//	so the same options always yield the same grid.
//
// Complexity:
//
//   - New, String, Regions: O(Rows×Columns).
//   - Successors, GoalTest: O(1).
//   - Mark, Clear:          O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid       rows or columns < 1, or empty text.
//   - ErrSparseness      sparseness outside [0,1).
//   - ErrOutOfBounds     start or goal off the grid.
//   - ErrNonRectangular  Parse input rows of differing lengths.
//   - ErrMarker          Parse input with an unknown character.
//   - ErrStartGoal       Parse input without exactly one S and one G.
package maze
