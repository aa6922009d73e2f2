// Package config provides configuration loading and management for ontosnip.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ontoforge/ontosnip/catalog"
)

// Config is the complete ontosnip configuration.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Repository RepositoryConfig `yaml:"repository"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	Packages   []catalog.Package `yaml:"packages"`
}

// OutputConfig configures where the package tree is written.
type OutputConfig struct {
	// Dir is the package repository root (default: "packages").
	Dir string `yaml:"dir"`
}

// RepositoryConfig describes the published location of the tree.
type RepositoryConfig struct {
	// URL is the git URL users pass to the installer's --git flag.
	URL string `yaml:"url"`

	// Author is recorded in generated manifests.
	Author string `yaml:"author"`
}

// CacheConfig configures where fetched sources are kept.
type CacheConfig struct {
	// Dir is the cache directory (default: user cache dir / ontosnip).
	Dir string `yaml:"dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults and the shipped
// catalog.
func DefaultConfig() *Config {
	return &Config{
		Output:     OutputConfig{Dir: "packages"},
		Repository: RepositoryConfig{Author: "ontosnip"},
		Log:        LogConfig{Level: "info"},
		Packages:   catalog.Default().Packages,
	}
}

// Catalog returns the configured packages as a catalog.
func (c *Config) Catalog() *catalog.Catalog {
	return &catalog.Catalog{Packages: c.Packages}
}

// CacheDir resolves the cache directory, falling back to the user cache.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ontosnip")
	}
	return filepath.Join(base, "ontosnip")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if len(c.Packages) == 0 {
		return fmt.Errorf("no packages configured")
	}
	return c.Catalog().Validate()
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Merge(layer)
	return config, nil
}

// loadLayer reads a config file without applying defaults, so merging
// it onto lower layers only overrides the keys the file actually sets.
func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	if other.Repository.URL != "" {
		c.Repository.URL = other.Repository.URL
	}
	if other.Repository.Author != "" {
		c.Repository.Author = other.Repository.Author
	}

	if other.Cache.Dir != "" {
		c.Cache.Dir = other.Cache.Dir
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	// Packages replace wholesale; merging catalogs entry-by-entry would
	// make the installed set depend on file ordering.
	if len(other.Packages) > 0 {
		c.Packages = other.Packages
	}
}
