// SPDX-License-Identifier: MIT

// Package config loads the datalink command configuration.
//
// A YAML file is read into a generic map and decoded with mapstructure over
// DefaultConfig, so keys missing from the file keep their defaults. Unknown
// keys are an error. The file is looked up in this order:
//
//  1. the --config flag
//  2. $DATALINK_CONFIG
//  3. ./datalink.yaml, when it exists
//
// With none of them the defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/SebastianSpeitel/datalink/format"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "DATALINK_CONFIG"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "datalink.yaml"

// ErrInvalid indicates a config value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Format   FormatConfig `mapstructure:"format"`
	Walk     WalkConfig   `mapstructure:"walk"`
}

// FormatConfig mirrors format.Options.
type FormatConfig struct {
	Verbose    bool   `mapstructure:"verbose"`
	MaxDepth   int    `mapstructure:"max_depth"`
	Collapse   bool   `mapstructure:"collapse"`
	Strategy   string `mapstructure:"strategy"`
	SortedKeys bool   `mapstructure:"sorted_keys"`
	Indent     string `mapstructure:"indent"`
}

// WalkConfig selects the traversal of the walk command.
type WalkConfig struct {
	Order    string `mapstructure:"order"`     // dfs or bfs
	MaxDepth int    `mapstructure:"max_depth"` // 0: unlimited
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Format: FormatConfig{
			MaxDepth: format.DefaultMaxDepth,
			Collapse: true,
			Strategy: format.Eager.String(),
			Indent:   "  ",
		},
		Walk: WalkConfig{
			Order:    "dfs",
			MaxDepth: 8,
		},
	}
}

// applyDefaults fills values a file set to empty.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Format.Strategy == "" {
		c.Format.Strategy = d.Format.Strategy
	}
	if c.Format.Indent == "" {
		c.Format.Indent = d.Format.Indent
	}
	if c.Walk.Order == "" {
		c.Walk.Order = d.Walk.Order
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Format.MaxDepth < 0 {
		return fmt.Errorf("%w: format.max_depth %d", ErrInvalid, c.Format.MaxDepth)
	}
	if _, err := format.ParseStrategy(c.Format.Strategy); err != nil {
		return fmt.Errorf("%w: format.strategy: %v", ErrInvalid, err)
	}
	if c.Walk.Order != "dfs" && c.Walk.Order != "bfs" {
		return fmt.Errorf("%w: walk.order %q", ErrInvalid, c.Walk.Order)
	}
	if c.Walk.MaxDepth < 0 {
		return fmt.Errorf("%w: walk.max_depth %d", ErrInvalid, c.Walk.MaxDepth)
	}

	return nil
}

// FormatOptions translates c.Format into format options.
func (c Config) FormatOptions() ([]format.Option, error) {
	s, err := format.ParseStrategy(c.Format.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []format.Option{
		format.WithVerbose(c.Format.Verbose),
		format.WithMaxDepth(c.Format.MaxDepth),
		format.WithCollapseLinkless(c.Format.Collapse),
		format.WithStrategy(s),
		format.WithIndent(c.Format.Indent),
	}
	if c.Format.SortedKeys {
		opts = append(opts, format.WithSortedKeys())
	}

	return opts, nil
}

// Resolve returns the config path to load: flag, then the EnvVar value from
// getenv, then DefaultFile when it exists. "" means none.
func Resolve(flag string, getenv func(string) string) string {
	if flag != "" {
		return flag
	}
	if p := getenv(EnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// Load reads the file at path over the defaults; "" yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}

	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = dec.Decode(m); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
