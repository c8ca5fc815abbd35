package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daptify14/keynav/internal/listnav"
)

const (
	defaultHeight = 10
	maxHeight     = 200
)

type Config struct {
	Axis               string        `yaml:"axis"` // "vertical" (default), "horizontal", "both"
	WaitForInteractive bool          `yaml:"wait_for_interactive"`
	TypeaheadTimeout   time.Duration `yaml:"typeahead_timeout"`
	TypeaheadInteracts bool          `yaml:"typeahead_interacts"`
	Icons              string        `yaml:"icons"` // "nerdfont" (default), "unicode", "none"
	Height             int           `yaml:"height"`
	Prompt             string        `yaml:"prompt"`
}

func Default() Config {
	return Config{
		Axis:             string(listnav.AxisVertical),
		TypeaheadTimeout: listnav.DefaultTypeaheadTimeout,
		Icons:            "nerdfont",
		Height:           defaultHeight,
		Prompt:           "Select",
	}
}

func (c *Config) Normalize() {
	c.Axis = strings.TrimSpace(strings.ToLower(c.Axis))
	if c.Axis == "" {
		c.Axis = string(listnav.AxisVertical)
	}
	c.Icons = strings.TrimSpace(strings.ToLower(c.Icons))
	if c.TypeaheadTimeout == 0 {
		c.TypeaheadTimeout = listnav.DefaultTypeaheadTimeout
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	c.Prompt = strings.TrimSpace(c.Prompt)
}

func (c Config) Validate() error {
	if _, err := listnav.ParseAxis(c.Axis); err != nil {
		return fmt.Errorf("invalid axis %q (valid: vertical, horizontal, both)", c.Axis)
	}
	if c.Icons != "" {
		switch c.Icons {
		case "nerdfont", "unicode", "none":
		default:
			return fmt.Errorf("invalid icons %q (valid: nerdfont, unicode, none)", c.Icons)
		}
	}
	if c.TypeaheadTimeout < 0 {
		return fmt.Errorf("invalid typeahead_timeout %s (must be positive)", c.TypeaheadTimeout)
	}
	if c.Height < 1 || c.Height > maxHeight {
		return fmt.Errorf("invalid height %d (valid: 1-%d)", c.Height, maxHeight)
	}
	return nil
}

func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "keynav", "config.yaml")
}

func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom returns Default() if path doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
