package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/maze"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "lvsearch solves random grid mazes with uninformed search",
		Long:          `lvsearch generates a random maze of blocked cells and routes from start to goal with depth-first or breadth-first search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	pf := root.PersistentFlags()
	pf.String("config", "", "YAML or JSON settings file")
	pf.Int("rows", maze.DefaultRows, "grid rows")
	pf.Int("columns", maze.DefaultColumns, "grid columns")
	pf.Float64("sparseness", maze.DefaultSparseness, "probability a cell is blocked, in [0,1)")
	pf.Int64("seed", 0, "random seed (0 uses the fixed default)")
	pf.String("start", "", "start location as row,column (default 0,0)")
	pf.String("goal", "", "goal location as row,column (default opposite corner)")
	pf.String("color", config.ColorAuto, "color output: auto, always or never")
	pf.String("log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newSolveCmd(), newCompareCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the --config file and applies every flag the user set
// explicitly on top of it.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	overrides := map[string]any{}
	mazeOverrides := map[string]any{}
	for flag, key := range map[string]string{
		"rows": "rows", "columns": "columns", "sparseness": "sparseness",
		"seed": "seed", "start": "start", "goal": "goal",
	} {
		if !flags.Changed(flag) {
			continue
		}
		mazeOverrides[key] = flags.Lookup(flag).Value.String()
	}
	// keep the configured goal unless the size or the goal itself changed
	if _, ok := mazeOverrides["goal"]; !ok && !flags.Changed("rows") && !flags.Changed("columns") {
		mazeOverrides["goal"] = fmt.Sprintf("%d,%d", cfg.Maze.Goal.Row, cfg.Maze.Goal.Column)
	}
	if len(mazeOverrides) > 0 {
		overrides["maze"] = mazeOverrides
	}
	for _, flag := range []string{"color", "log-level", "algo"} {
		f := flags.Lookup(flag)
		if f == nil || !flags.Changed(flag) {
			continue
		}
		switch flag {
		case "log-level":
			overrides["log_level"] = f.Value.String()
		case "algo":
			overrides["algorithm"] = f.Value.String()
		default:
			overrides[flag] = f.Value.String()
		}
	}
	return config.Decode(overrides, cfg)
}

// newLogger builds the stderr logger for cfg.
func newLogger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), level), nil
}

// buildMaze generates the maze described by cfg and logs its shape.
func buildMaze(cfg config.Config, log *slog.Logger) (*maze.Maze, error) {
	m, err := maze.New(cfg.Maze)
	if err != nil {
		return nil, err
	}
	log.Info("maze generated",
		slog.Int("rows", m.Rows()),
		slog.Int("columns", m.Columns()),
		slog.Int("blocked", m.Blocked()),
		slog.Int64("seed", cfg.Maze.Seed),
	)
	return m, nil
}
