// Package config loads run configuration for the spec suite tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specsuite/core/pkg/domain"
)

// Config holds suite layout and scan settings. The suite root and area
// list are explicit configuration, not global constants.
type Config struct {
	// SuiteRoot is the directory holding the per-area test trees.
	SuiteRoot string `yaml:"suiteRoot"`
	// Areas lists the area subdirectories to scan.
	Areas []string `yaml:"areas"`
	// Workers bounds the verify worker pool. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Exclude names directories skipped during discovery.
	Exclude []string `yaml:"exclude"`
	// Patterns holds glob patterns filtering test files.
	Patterns []string `yaml:"patterns"`
}

// Default returns the stock configuration: all areas under "testData".
func Default() *Config {
	areas := domain.DefaultAreas()
	names := make([]string, 0, len(areas))
	for _, area := range areas {
		names = append(names, string(area))
	}
	return &Config{
		SuiteRoot: "testData",
		Areas:     names,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, err := cfg.TestAreas(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// TestAreas converts the configured area names to domain areas, rejecting
// unknown names.
func (c *Config) TestAreas() ([]domain.TestArea, error) {
	areas := make([]domain.TestArea, 0, len(c.Areas))
	for _, name := range c.Areas {
		area, ok := domain.ParseArea(name)
		if !ok {
			return nil, fmt.Errorf("unknown test area %q", name)
		}
		areas = append(areas, area)
	}
	return areas, nil
}
