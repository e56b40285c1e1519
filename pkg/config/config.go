// Package config loads analyzer settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of an analysis run.
type Config struct {
	// Workers is the parallelism for all-pairs traversals. Zero means one
	// worker per CPU.
	Workers int `yaml:"workers"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// TopK caps ranked output lists (top central nodes, predicted links).
	TopK int `yaml:"top_k"`

	PageRank    PageRankConfig    `yaml:"pagerank"`
	Communities CommunitiesConfig `yaml:"communities"`
}

// PageRankConfig tunes the iterative centrality measures.
type PageRankConfig struct {
	DampingFactor float64 `yaml:"damping_factor"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// CommunitiesConfig tunes community detection.
type CommunitiesConfig struct {
	Algorithm     string `yaml:"algorithm"`
	MaxIterations int    `yaml:"max_iterations"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Workers:  1,
		LogLevel: "info",
		TopK:     10,
		PageRank: PageRankConfig{
			DampingFactor: 0.85,
			MaxIterations: 100,
			Tolerance:     1e-6,
		},
		Communities: CommunitiesConfig{
			Algorithm:     "greedy_modularity",
			MaxIterations: 100,
		},
	}
}

// Load reads a YAML config file. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make an analysis misbehave.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.PageRank.DampingFactor <= 0 || c.PageRank.DampingFactor >= 1 {
		return fmt.Errorf("pagerank damping factor must be in (0, 1), got %f", c.PageRank.DampingFactor)
	}
	if c.PageRank.MaxIterations <= 0 {
		return fmt.Errorf("pagerank max iterations must be > 0, got %d", c.PageRank.MaxIterations)
	}
	if c.PageRank.Tolerance <= 0 {
		return fmt.Errorf("pagerank tolerance must be > 0, got %f", c.PageRank.Tolerance)
	}
	if c.TopK < 0 {
		return fmt.Errorf("top_k must be >= 0, got %d", c.TopK)
	}
	return nil
}
