package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/render"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// newCompareCmd runs DFS and BFS on one maze and prints a summary table.
func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare depth-first and breadth-first search on one maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			m, err := buildMaze(cfg, log)
			if err != nil {
				return err
			}

			rows := make([]render.Summary, 0, 2)
			for _, algo := range []string{search.AlgoDFS, search.AlgoBFS} {
				res, err := m.Solve(algo, search.WithLogger[maze.Location](log))
				if err != nil {
					return err
				}
				rows = append(rows, render.Summarize(algo, res))
			}

			out := cmd.OutOrStdout()
			r := render.New(out, cfg.Color)
			fmt.Fprint(out, r.Grid(m))
			fmt.Fprint(out, r.Markdown(render.Report(m, rows)))
			return nil
		},
	}
}
