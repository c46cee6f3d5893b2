// Package config describes, in YAML, the windows a multiwindow process opens.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ignite-laboratories/glwindow"
	"gopkg.in/yaml.v3"
)

// Backend selects the platform library.
type Backend string

const (
	BackendGLFW Backend = "glfw"
	BackendSDL2 Backend = "sdl2"
)

// Window describes one window to open.
type Window struct {
	Title  string               `yaml:"title"`
	Width  int                  `yaml:"width"`
	Height int                  `yaml:"height"`
	Share  string               `yaml:"share,omitempty"` // title of an earlier window
	Clear  [4]float32           `yaml:"clear"`           // RGBA clear colour
	Hints  []glwindow.NamedHint `yaml:"hints,omitempty"`
}

// Config is the top level of a multiwindow config file.
type Config struct {
	Backend  Backend  `yaml:"backend"`
	Debug    bool     `yaml:"debug"`
	Threaded bool     `yaml:"threaded"` // render each window from its own OS thread
	Windows  []Window `yaml:"windows"`
}

// DefaultConfig opens two windows sharing one set of GPU objects.
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendGLFW,
		Threaded: true,
		Windows: []Window{
			{Title: "First", Width: glwindow.DefaultSize.X, Height: glwindow.DefaultSize.Y, Clear: [4]float32{0.25, 0.25, 0.25, 1}},
			{Title: "Second", Width: glwindow.DefaultSize.X, Height: glwindow.DefaultSize.Y, Share: "First", Clear: [4]float32{0.1, 0.2, 0.4, 1}},
		},
	}
}

// Load reads path, falling back to DefaultConfig when it does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over DefaultConfig and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Windows {
		if c.Windows[i].Width == 0 {
			c.Windows[i].Width = glwindow.DefaultSize.X
		}
		if c.Windows[i].Height == 0 {
			c.Windows[i].Height = glwindow.DefaultSize.Y
		}
	}
}

// Validate checks the backend, window sizes and share references.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGLFW, BackendSDL2:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if len(c.Windows) == 0 {
		return errors.New("at least one window is required")
	}

	seen := make(map[string]bool, len(c.Windows))
	for i, w := range c.Windows {
		if w.Title == "" {
			return fmt.Errorf("windows[%d]: title is required", i)
		}
		if seen[w.Title] {
			return fmt.Errorf("windows[%d]: duplicate title %q", i, w.Title)
		}
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("windows[%d] %q: %w (%dx%d)", i, w.Title, glwindow.ErrInvalidSize, w.Width, w.Height)
		}
		if w.Share != "" && !seen[w.Share] {
			return fmt.Errorf("windows[%d] %q: shares with %q, which is not an earlier window", i, w.Title, w.Share)
		}
		seen[w.Title] = true
	}
	return nil
}

// ResolveHints resolves a window's named hints against the platform.
func (w Window) ResolveHints(p glwindow.Platform) (glwindow.Hints, error) {
	hints, err := glwindow.ResolveHints(p, w.Hints)
	if err != nil {
		return nil, fmt.Errorf("window %q: %w", w.Title, err)
	}
	return hints, nil
}
