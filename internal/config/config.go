package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of config.yaml.
type Config struct {
	Core      CoreConfig      `yaml:"core"`
	Display   DisplayConfig   `yaml:"display"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

// CoreConfig controls where commands live and what the bare
// "cmdx <path>" invocation does.
type CoreConfig struct {
	StorePath string `yaml:"store_path"`
	// DefaultAction is one of copy, run, show.
	DefaultAction string `yaml:"default_action"`
	Shell         string `yaml:"shell"`
}

// DisplayConfig controls listing output.
type DisplayConfig struct {
	Color bool `yaml:"color"`
	// TreeStyle is unicode or ascii.
	TreeStyle string `yaml:"tree_style"`
}

// ClipboardConfig selects the clipboard backend for cmdx copy.
type ClipboardConfig struct {
	// Tool is auto, wl-copy, xclip or xsel.
	Tool string `yaml:"tool"`
}

// Dir returns the configuration directory, e.g. ~/.config/cmdx on Linux.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "cmdx"), nil
}

// Path returns the absolute path of config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Core: CoreConfig{
			StorePath:     "~/.config/cmdx/store",
			DefaultAction: "copy",
			Shell:         "bash",
		},
		Display: DisplayConfig{
			Color:     true,
			TreeStyle: "unicode",
		},
		Clipboard: ClipboardConfig{
			Tool: "auto",
		},
	}
}

// Load reads config.yaml, falling back to defaults when the file is
// absent. Keys missing from the file keep their default values.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return cfg, nil
}

// Save marshals cfg and writes it to config.yaml, creating the
// configuration directory if needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// StorePath returns the store root with a leading ~ expanded.
func (c *Config) StorePath() (string, error) {
	return ExpandPath(c.Core.StorePath)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}
