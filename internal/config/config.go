// Package config loads and validates the diskscope configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the on-disk settings.
type Config struct {
	// TopK is the default number of largest files to track per scan.
	TopK int `yaml:"top_k"`
	// ProgressEvery is the default progress cadence in files.
	ProgressEvery int `yaml:"progress_every"`
	// Workers bounds concurrent cache-root scans.
	Workers int `yaml:"workers"`
	// CacheRoots are extra directories scanned alongside the built-in
	// cache locations.
	CacheRoots []string `yaml:"cache_roots"`
	// ProtectedPaths are never cleaned, nor is anything under them.
	ProtectedPaths []string `yaml:"protected_paths"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TopK:           25,
		ProgressEvery:  200,
		Workers:        3,
		ProtectedPaths: defaultProtected(),
	}
}

// defaultProtected lists paths no clean pass may touch, regardless of where
// it was pointed.
func defaultProtected() []string {
	protected := []string{
		"/",
		"/bin",
		"/boot",
		"/etc",
		"/lib",
		"/sbin",
		"/usr",
		"/var/lib",
		"/System",       // macOS
		"/Applications", // macOS
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return protected
	}

	return append(protected,
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Pictures"),
		filepath.Join(home, ".config"),
	)
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}

	return filepath.Join(home, ".config", "diskscope", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// a present file is parsed, merged over the defaults, and validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be >= 1, got %d", c.TopK)
	}

	if c.ProgressEvery < 1 {
		return fmt.Errorf("progress_every must be >= 1, got %d", c.ProgressEvery)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}

	for _, p := range c.ProtectedPaths {
		if !filepath.IsAbs(p) {
			return fmt.Errorf("protected path must be absolute: %s", p)
		}
	}

	return nil
}
