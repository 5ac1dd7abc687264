// Package config loads javapy.toml project settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest looked up from the working directory upward.
const FileName = "javapy.toml"

// Config mirrors javapy.toml.
type Config struct {
	Translate TranslateConfig `toml:"translate"`
	Output    OutputConfig    `toml:"output"`
}

type TranslateConfig struct {
	StrictLoops    bool     `toml:"strict_loops"`
	Verify         bool     `toml:"verify"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	Extensions     []string `toml:"extensions"`
}

type OutputConfig struct {
	// Dir receives translated files; empty means next to the source.
	Dir   string `toml:"dir"`
	Color string `toml:"color"` // auto|on|off
}

// Manifest is a loaded config together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the settings used when no javapy.toml exists.
func Default() Config {
	return Config{
		Translate: TranslateConfig{
			MaxDiagnostics: 1000,
			Extensions:     []string{".java", ".jv"},
		},
		Output: OutputConfig{Color: "auto"},
	}
}

// Find walks from startDir to the filesystem root looking for javapy.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the nearest manifest. ok is false when none
// exists; the returned manifest then carries Default().
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load decodes path over Default() and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// Validate normalizes extensions and checks ranges.
func (c *Config) Validate() error {
	if c.Translate.MaxDiagnostics < 0 {
		return fmt.Errorf("[translate].max_diagnostics must be >= 0, got %d", c.Translate.MaxDiagnostics)
	}
	if c.Translate.Jobs < 0 {
		return fmt.Errorf("[translate].jobs must be >= 0, got %d", c.Translate.Jobs)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color)
	}
	exts := c.Translate.Extensions[:0]
	for _, ext := range c.Translate.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return errors.New("[translate].extensions must not be empty")
	}
	c.Translate.Extensions = exts
	return nil
}

// ResolveOutputDir returns the output directory relative to the manifest root.
func (m *Manifest) ResolveOutputDir() string {
	dir := strings.TrimSpace(m.Config.Output.Dir)
	if dir == "" || filepath.IsAbs(dir) || m.Root == "" {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault creates dir/javapy.toml with Default(). It refuses to
// overwrite unless force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists", path)
		}
	}
	data, err := Encode(Default())
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
