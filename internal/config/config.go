package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config file is given explicitly. It is not an
// error for it to be missing.
const DefaultFile = ".scaffold.yaml"

// Config holds the settings of the scaffold command.
type Config struct {
	// Extension selects the files check and watch look at.
	Extension string `yaml:"extension"`
	// Jobs bounds the number of files checked concurrently.
	Jobs int `yaml:"jobs"`
	// Debounce is how long watch waits for a file to settle.
	Debounce time.Duration `yaml:"debounce"`
	// Timeout bounds a single eval; zero means no limit.
	Timeout time.Duration `yaml:"timeout"`
	// Format is the default output format of the lex command.
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Extension: ".arith",
		Jobs:      4,
		Debounce:  125 * time.Millisecond,
		Format:    "text",
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path loads
// DefaultFile if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Debounce < 0 || c.Timeout < 0 {
		return errors.New("durations must not be negative")
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
