package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/abyssdigger/natlog"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings of the natlog command. The library itself reads
// no configuration.
type Config struct {
	MinLevel   string `toml:"min_level"`
	Color      string `toml:"color"`
	BufferSize int    `toml:"buffer_size"`
}

func Default() *Config {
	return &Config{
		MinLevel:   natlog.LVL_ALL.String(),
		Color:      natlog.COLOR_AUTO.String(),
		BufferSize: natlog.DEFAULT_MSG_BUFF,
	}
}

// Load reads a TOML config file. A missing file yields the defaults, missing
// keys keep their default values.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var merr *multierror.Error
	if _, err := natlog.ParseLevel(c.MinLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("min_level: %w", err))
	}
	if _, err := natlog.ParseColorMode(c.Color); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("color: %w", err))
	}
	if c.BufferSize < 2 {
		merr = multierror.Append(merr, fmt.Errorf("buffer_size: must be at least 2, got %d", c.BufferSize))
	}
	return merr.ErrorOrNil()
}

// Level returns the parsed minimal level.
func (c *Config) Level() (natlog.LogLevel, error) {
	return natlog.ParseLevel(c.MinLevel)
}

// Options converts the settings to logger construction options.
func (c *Config) Options() ([]natlog.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	color, _ := natlog.ParseColorMode(c.Color)
	return []natlog.Option{
		natlog.WithColor(color),
		natlog.WithBufferSize(c.BufferSize),
	}, nil
}
