package app

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when neither an input file nor a manifest is configured.
var ErrNoInput = errors.New("an input path or a manifest path is required")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string // puzzle input, one grid row or record per line
	ManifestPath string // hcl file or directory of hcl files

	// Day selects the puzzle for InputPath. Zero means the latest registered day.
	Day int
	// Part selects a single part. Zero means every part of Day.
	Part int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && cfg.ManifestPath == "" {
		return nil, ErrNoInput
	}
	if cfg.Day < 0 {
		return nil, fmt.Errorf("day must not be negative, got %d", cfg.Day)
	}
	if cfg.Part < 0 || cfg.Part > 2 {
		return nil, fmt.Errorf("part must be 0, 1 or 2, got %d", cfg.Part)
	}
	return &cfg, nil
}
