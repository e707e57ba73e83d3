// Package search provides uninformed graph search (depth-first and
// breadth-first) over an arbitrary state space, returning a parent-linked
// search tree from which the solution path is reconstructed.
//
// What
//
//   - StateSpace[S]: the domain contract; GoalTest(S) and Successors(S).
//   - DFS / BFS:     one engine, two frontier disciplines (frontier.Stack and
//     frontier.Queue).
//   - Tree[S]:       an append-only arena of Nodes addressed by Handle; each
//     Node stores the Handle of its parent, NoParent for the root.
//   - Result[S]:     Found flag, the tree, the goal Handle and counters
//     (Explored, Expanded, MaxFrontier).
//   - PathTo:        walks parent handles back to the root and reverses.
//
// Semantics
//
//	frontier ← {root(initial)}; explored ← {initial}
//	while frontier not empty:
//	    n ← pop
//	    if GoalTest(n.State): return n
//	    for s in Successors(n.State), in order:
//	        if s ∉ explored: explored ← explored ∪ {s}; push child(s, n)
//	return no solution
//
// A state enters the frontier at most once per search. Successor order is
// preserved: BFS expands every node at depth k before any at depth k+1, so
// on an unweighted space its path has the minimum number of edges. DFS pops
// the most recently pushed child first.
//
// No solution is not an error: Result.Found is false and the caller decides
// what to print. Errors are reserved for bad input (ErrNilSpace,
// ErrOptionViolation), misuse of the tree (ErrInvalidNode) and errors
// returned by an OnExpand hook.
//
// Complexity (V = reachable states, E = successor edges)
//
//   - Time:   O(V + E) successor calls and set lookups.
//   - Memory: O(V) for the arena, the explored set and the frontier.
//
// Usage
//
//	res, err := search.BFS(m, m.Start())
//	if err != nil {
//		return err
//	}
//	if !res.Found {
//		fmt.Println("no solution")
//		return nil
//	}
//	path, _ := res.Path()
package search
