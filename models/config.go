// Package models defines data structures shared across the pipeline:
// runtime configuration and the renderer-facing graph model.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default sizing constants for the graph model. Size is an abstract
// magnitude; renderers scale it to pixels themselves.
const (
	DefaultTopK        = 3
	DefaultCenterLabel = "Generative AI Applications"
	DefaultCenterSize  = 3200
	DefaultBaseSize    = 1800
	DefaultSizeScale   = 400
)

// Sizing holds the node size formula constants: a term node's size is
// Base + count*Scale, and the center node always gets the fixed Center size.
type Sizing struct {
	Center float64 `yaml:"center"`
	Base   float64 `yaml:"base"`
	Scale  float64 `yaml:"scale"`
}

// Config holds runtime configuration for an analyze run. Values come from an
// optional YAML file and are overridden by CLI flags; the core packages never
// read files or flags themselves.
type Config struct {
	VocabPath    string `yaml:"vocab"`
	ResearchPath string `yaml:"research"`
	OutputDir    string `yaml:"output_dir"`
	TopK         int    `yaml:"top_k"`
	CenterLabel  string `yaml:"center_label"`
	Renderer     string `yaml:"renderer"`
	CacheTTL     string `yaml:"cache_ttl"`
	Sizing       Sizing `yaml:"sizing"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "results",
		TopK:        DefaultTopK,
		CenterLabel: DefaultCenterLabel,
		Renderer:    "echarts",
		CacheTTL:    "24h",
		Sizing: Sizing{
			Center: DefaultCenterSize,
			Base:   DefaultBaseSize,
			Scale:  DefaultSizeScale,
		},
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// Zero-valued fields in the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.merge(&fileConfig)
	return config, nil
}

func (c *Config) merge(other *Config) {
	if other.VocabPath != "" {
		c.VocabPath = other.VocabPath
	}
	if other.ResearchPath != "" {
		c.ResearchPath = other.ResearchPath
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.TopK > 0 {
		c.TopK = other.TopK
	}
	if other.CenterLabel != "" {
		c.CenterLabel = other.CenterLabel
	}
	if other.Renderer != "" {
		c.Renderer = other.Renderer
	}
	if other.CacheTTL != "" {
		c.CacheTTL = other.CacheTTL
	}
	if other.Sizing.Center > 0 {
		c.Sizing.Center = other.Sizing.Center
	}
	if other.Sizing.Base > 0 {
		c.Sizing.Base = other.Sizing.Base
	}
	if other.Sizing.Scale > 0 {
		c.Sizing.Scale = other.Sizing.Scale
	}
}
