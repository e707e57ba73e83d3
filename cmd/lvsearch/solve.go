package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/render"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// algoNames spells out algorithm flags for user-facing messages.
var algoNames = map[string]string{
	search.AlgoDFS: "depth-first search",
	search.AlgoBFS: "breadth-first search",
}

// newSolveCmd prints a maze, then the marked and cleared solution.
func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a maze and solve it",
		Long: `Generates a random maze, prints it, searches from start to goal and prints the
grid with the path marked and again after clearing it. Prints a message instead
when the goal is unreachable.`,
		Args: cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			r := render.New(out, cfg.Color)
			fmt.Fprint(out, r.Grid(m))

			res, err := m.Solve(cfg.Algorithm, search.WithLogger[maze.Location](log))
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintf(out, "No solution found using %s.\n", algoNames[cfg.Algorithm])
				return nil
			}
			path, err := res.Path()
			if err != nil {
				return err
			}
			log.Info("path found",
				slog.String("algo", cfg.Algorithm),
				slog.Int("steps", res.Depth()),
				slog.Int("explored", res.Explored),
			)

			fmt.Fprintln(out, "Marking the path from the start to the goal...")
			m.Mark(path)
			fmt.Fprint(out, r.Grid(m))
			fmt.Fprintln(out, "Clearing the path from the start to the goal...")
			m.Clear(path)
			fmt.Fprint(out, r.Grid(m))
			return nil
		},
	}
	cmd.Flags().String("algo", search.AlgoBFS, "search algorithm: dfs or bfs")
	return cmd
}
