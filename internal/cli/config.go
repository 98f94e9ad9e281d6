package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mwalther/importgraph/pkg/errors"
)

// Config holds defaults read from the optional TOML config file.
// Command-line flags take precedence over config values.
type Config struct {
	Paths     []string     `toml:"paths"`      // default search paths for trace
	Filter    string       `toml:"filter"`     // default path filter regex
	GraphName string       `toml:"graph_name"` // DOT graph name
	Render    RenderConfig `toml:"render"`
}

// RenderConfig holds render command defaults.
type RenderConfig struct {
	Format string  `toml:"format"` // svg, pdf, or png
	Scale  float64 `toml:"scale"`  // PNG scale factor
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file at the default location yields a zero
// config without error; an explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/importgraph/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
