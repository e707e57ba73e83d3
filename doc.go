// Package lvsearch is a small playground for uninformed state-space search:
// a reusable frontier/explored-set engine, and a random grid maze to run it
// on.
//
// What's inside
//
//	frontier/     Stack (LIFO), Queue (FIFO ring) and PriorityQueue containers
//	search/       DFS and BFS over any StateSpace[S], node arena, path rebuild
//	maze/         random blocked-cell grid implementing StateSpace[Location]
//	cmd/lvsearch  CLI: solve, compare, version
//
// Quick example:
//
//	m, _ := maze.New(maze.DefaultOptions())
//	res, _ := search.BFS[maze.Location](m, m.Start())
//	if res.Found {
//		path, _ := res.Path()
//		m.Mark(path)
//	}
//	fmt.Print(m)
//
// Which prints something like
//
//	S  X    XX
//	*X   X   X
//	**** X X X
//	XX *X    X
//	 X **X  XX
//	X X *X   X
//	    ***X X
//	 X X  **XX
//	X      ***
//	   X    XG
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch

// Version is the release reported by `lvsearch version`.
const Version = "0.1.0"
