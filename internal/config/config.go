// Package config reads and writes the wirepath CLI configuration file,
// a TOML document at ~/.config/wirepath/config.toml. Library callers
// never touch this package; it only feeds CLI flag defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds wirepath CLI defaults.
type Config struct {
	Router   RouterConfig   `toml:"router"`
	Cache    CacheConfig    `toml:"cache"`
	Viewport ViewportConfig `toml:"viewport"`
}

// RouterConfig mirrors the router options a user tunes per machine.
type RouterConfig struct {
	Clearance   float64 `toml:"clearance"`
	BendPenalty float64 `toml:"bend_penalty"`
	BudgetMS    int     `toml:"budget_ms"`
	GridLimit   int     `toml:"grid_limit"`
}

// CacheConfig controls the route cache the CLI constructs.
type CacheConfig struct {
	Capacity int `toml:"capacity"`
}

// ViewportConfig controls culling defaults.
type ViewportConfig struct {
	Padding float64 `toml:"padding"`
}

// Default returns the default configuration, matching the library's
// DefaultOptions values.
func Default() *Config {
	return &Config{
		Router: RouterConfig{
			Clearance:   12,
			BendPenalty: 40,
			BudgetMS:    16,
			GridLimit:   4096,
		},
		Cache:    CacheConfig{Capacity: 512},
		Viewport: ViewportConfig{Padding: 0.5},
	}
}

// Dir returns the wirepath config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "wirepath")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, or the default location when path
// is empty. A missing or unreadable file yields the defaults.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)

	return cfg
}

// Save writes the config to the default location.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
