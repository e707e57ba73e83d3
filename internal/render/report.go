package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// Summary is one row of a comparison report.
type Summary struct {
	Algorithm   string
	Found       bool
	Steps       int // path edges; -1 when not found
	Explored    int
	Expanded    int
	MaxFrontier int
}

// Summarize extracts the report row for one search result.
func Summarize(algo string, res *search.Result[maze.Location]) Summary {
	return Summary{
		Algorithm:   algo,
		Found:       res.Found,
		Steps:       res.Depth(),
		Explored:    res.Explored,
		Expanded:    res.Expanded,
		MaxFrontier: res.MaxFrontier,
	}
}

// Report builds a markdown table comparing search runs on the same maze.
func Report(m *maze.Maze, rows []Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search comparison\n\n")
	fmt.Fprintf(&b, "Maze %d×%d, %d blocked, start %s, goal %s.\n\n",
		m.Rows(), m.Columns(), m.Blocked(), m.Start(), m.Goal())
	b.WriteString("| algorithm | found | steps | explored | expanded | peak frontier |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range rows {
		steps := "-"
		if r.Found {
			steps = fmt.Sprint(r.Steps)
		}
		fmt.Fprintf(&b, "| %s | %t | %s | %d | %d | %d |\n",
			r.Algorithm, r.Found, steps, r.Explored, r.Expanded, r.MaxFrontier)
	}
	return b.String()
}
