package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents an rlang.yaml project file.
type Config struct {
	// Files are the source files checked when none are given on the
	// command line.
	Files []string `yaml:"files,omitempty"`

	// Prelude files are loaded into the base scope before every file, so
	// their declarations are shared by all of them.
	Prelude []string `yaml:"prelude,omitempty"`

	// Color is one of auto, always, never.
	Color string `yaml:"color,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`

	// History is the REPL history file. Relative paths are resolved
	// against the user's home directory.
	History string `yaml:"history,omitempty"`
}

// Default is the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses an rlang.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses rlang.yaml content from bytes. File paths are made
// relative to the directory of path.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	dir := filepath.Dir(path)
	cfg.Files = resolve(dir, cfg.Files)
	cfg.Prelude = resolve(dir, cfg.Prelude)
	return &cfg, nil
}

// FindConfig searches for rlang.yaml starting from dir and walking up to
// parent directories. It returns "" and a nil error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be %s, %s or %s, got %q", path, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	for i, f := range c.Files {
		if !strings.HasSuffix(f, SourceFileExt) {
			return fmt.Errorf("%s: files[%d]: %q is not a %s file", path, i, f, SourceFileExt)
		}
	}
	for i, f := range c.Prelude {
		if !strings.HasSuffix(f, SourceFileExt) {
			return fmt.Errorf("%s: prelude[%d]: %q is not a %s file", path, i, f, SourceFileExt)
		}
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.History == "" {
		c.History = DefaultHistoryFile
	}
}

func resolve(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(dir, p)
		}
	}
	return out
}
