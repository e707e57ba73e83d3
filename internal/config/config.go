// Package config loads lvsearch run settings from YAML or JSON files and
// merges them over defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Color modes for grid rendering.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full set of run settings.
type Config struct {
	Maze      maze.Options `yaml:"maze" json:"maze" mapstructure:"maze"`
	Algorithm string       `yaml:"algorithm" json:"algorithm" mapstructure:"algorithm"`
	Color     string       `yaml:"color" json:"color" mapstructure:"color"`
	LogLevel  string       `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
}

// Default returns the built-in settings: the default maze, BFS, automatic
// color and info logging.
func Default() Config {
	return Config{
		Maze:      maze.DefaultOptions(),
		Algorithm: search.AlgoBFS,
		Color:     ColorAuto,
		LogLevel:  "info",
	}
}

// Validate checks the maze options and the enumerated fields.
func (c Config) Validate() error {
	if err := c.Maze.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Algorithm {
	case search.AlgoBFS, search.AlgoDFS:
	default:
		return fmt.Errorf("%w: algorithm must be %q or %q, got %q", ErrInvalidConfig, search.AlgoDFS, search.AlgoBFS, c.Algorithm)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}
	return nil
}

// Load reads path (YAML, or JSON when the extension is .json) over Default.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}
	return Decode(raw, Default())
}

// Decode merges raw over base. Keys absent from raw keep base values, except
// that the goal follows the opposite corner when the grid size changes and
// no goal is given. Values are weakly typed ("0.3" decodes as 0.3) and
// locations may be written as "row,column". Unknown keys are rejected.
func Decode(raw map[string]any, base Config) (Config, error) {
	cfg := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       locationHook,
	})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if m, ok := raw["maze"].(map[string]any); ok {
		if _, hasGoal := m["goal"]; !hasGoal {
			cfg.Maze.Goal = maze.Location{Row: cfg.Maze.Rows - 1, Column: cfg.Maze.Columns - 1}
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// locationHook lets "row,column" strings decode into maze.Location.
func locationHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(maze.Location{}) {
		return data, nil
	}
	return ParseLocation(data.(string))
}

// ParseLocation parses "row,column" (spaces allowed) into a location.
func ParseLocation(s string) (maze.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Location{}, fmt.Errorf("%w: location %q is not row,column", ErrInvalidConfig, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Location{}, fmt.Errorf("%w: location %q: bad row", ErrInvalidConfig, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Location{}, fmt.Errorf("%w: location %q: bad column", ErrInvalidConfig, s)
	}
	return maze.Location{Row: r, Column: c}, nil
}
