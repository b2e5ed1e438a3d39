// Package config loads the routegraph TOML configuration.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default. Relative paths are taken relative to the file's own
// directory.
//
//	[input]
//	edges = "data.txt"
//	entities = "users.csv"
//	attribute_column = 6
//	min_columns = 7
//
//	[output]
//	mst = "mst_output.txt"
//
//	[engine]
//	workers = 4
//	root = "JFK"
//
//	[log]
//	verbosity = 1
//	file = "routegraph.log"
//	max_size_mb = 10
//	max_backups = 3
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned when the file holds keys Config does not know.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the full routegraph configuration.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Engine EngineConfig `toml:"engine"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig names the input files and the entity CSV layout.
type InputConfig struct {
	Edges           string `toml:"edges"`
	Entities        string `toml:"entities"`
	AttributeColumn int    `toml:"attribute_column"`
	MinColumns      int    `toml:"min_columns"`
}

// OutputConfig names output files.
type OutputConfig struct {
	MST string `toml:"mst"`
}

// EngineConfig tunes the algorithms.
type EngineConfig struct {
	// Workers bounds concurrent Dijkstra runs when building the table.
	Workers int `toml:"workers"`
	// Root is the MST start vertex; empty means the first vertex read.
	Root string `toml:"root"`
}

// LogConfig controls logging. An empty File logs to stderr only.
type LogConfig struct {
	Verbosity  int    `toml:"verbosity"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			AttributeColumn: 6,
			MinColumns:      7,
		},
		Output: OutputConfig{MST: "mst_output.txt"},
		Engine: EngineConfig{Workers: runtime.NumCPU()},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load decodes the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg.resolvePaths(filepath.Dir(path))
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// resolvePaths makes every non-empty relative path absolute under dir.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Input.Edges, &c.Input.Entities, &c.Output.MST, &c.Log.File} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Input.AttributeColumn < 0:
		return fmt.Errorf("%w: input.attribute_column %d < 0", ErrInvalid, c.Input.AttributeColumn)
	case c.Input.MinColumns < 0:
		return fmt.Errorf("%w: input.min_columns %d < 0", ErrInvalid, c.Input.MinColumns)
	case c.Engine.Workers < 1:
		return fmt.Errorf("%w: engine.workers %d < 1", ErrInvalid, c.Engine.Workers)
	case c.Log.Verbosity < 0:
		return fmt.Errorf("%w: log.verbosity %d < 0", ErrInvalid, c.Log.Verbosity)
	case c.Log.MaxSizeMB < 1:
		return fmt.Errorf("%w: log.max_size_mb %d < 1", ErrInvalid, c.Log.MaxSizeMB)
	case c.Log.MaxBackups < 0:
		return fmt.Errorf("%w: log.max_backups %d < 0", ErrInvalid, c.Log.MaxBackups)
	}

	return nil
}
