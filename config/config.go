package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds startup settings. Nothing here changes while a game runs.
type Config struct {
	Width                int    `yaml:"width"`                  // grid columns
	Height               int    `yaml:"height"`                 // grid rows
	CellSize             int    `yaml:"cell_size"`              // pixels per cell in the client
	Obstacles            int    `yaml:"obstacles"`              // obstacle samples per game
	Pursuers             int    `yaml:"pursuers"`               // number of chasing monsters
	MaxPlacementAttempts int    `yaml:"max_placement_attempts"` // random draws before falling back to a scan
	Seed                 int64  `yaml:"seed"`                   // 0 picks a time based seed
	Map                  string `yaml:"map"`                    // optional fixed layout file
	LogLevel             string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Width:                20,
		Height:               15,
		CellSize:             30,
		Obstacles:            50,
		Pursuers:             3,
		MaxPlacementAttempts: 1000,
		LogLevel:             "info",
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.CellSize)
	case c.Obstacles < 0:
		return fmt.Errorf("%w: obstacles %d", ErrInvalidConfig, c.Obstacles)
	case c.Pursuers < 0:
		return fmt.Errorf("%w: pursuers %d", ErrInvalidConfig, c.Pursuers)
	case c.MaxPlacementAttempts <= 0:
		return fmt.Errorf("%w: max_placement_attempts %d", ErrInvalidConfig, c.MaxPlacementAttempts)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyLogLevel sets the logrus level, leaving it untouched if unparsable.
func (c Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q", c.LogLevel)
		return
	}
	log.SetLevel(level)
}
