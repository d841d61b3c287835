package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/classify"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
)

// Prefix namespaces every environment variable, e.g. DXF2ELMT_SPLINE_STEP.
const Prefix = "DXF2ELMT"

type Config struct {
	SplineStep     int     `envconfig:"SPLINE_STEP" default:"20"`
	DynamicText    bool    `envconfig:"DYNAMIC_TEXT" default:"true"`
	MaxBlockDepth  int     `envconfig:"MAX_BLOCK_DEPTH" default:"32"`
	Strict         bool    `envconfig:"STRICT" default:"false"`
	CircularityMin float64 `envconfig:"CIRCULARITY_MIN" default:"0.98"`
	CircularityMax float64 `envconfig:"CIRCULARITY_MAX" default:"1.02"`
	Port           int     `envconfig:"PORT" default:"8080"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	MaxUploadBytes int64   `envconfig:"MAX_UPLOAD_BYTES" default:"33554432"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.SplineStep < 1 || c.SplineStep > engine.MaxSplineStep:
		return fmt.Errorf("spline step must be in [1, %d], got %d", engine.MaxSplineStep, c.SplineStep)
	case c.MaxBlockDepth < 1:
		return fmt.Errorf("max block depth must be positive, got %d", c.MaxBlockDepth)
	case c.CircularityMin <= 0 || c.CircularityMin > c.CircularityMax:
		return fmt.Errorf("invalid circularity band [%g, %g]", c.CircularityMin, c.CircularityMax)
	case c.MaxUploadBytes < 1:
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Options returns the conversion options described by c.
func (c *Config) Options() engine.Options {
	th := classify.DefaultThresholds
	th.CircularityMin = c.CircularityMin
	th.CircularityMax = c.CircularityMax
	return engine.Options{
		SplineStep:    c.SplineStep,
		DynamicText:   c.DynamicText,
		MaxBlockDepth: c.MaxBlockDepth,
		Strict:        c.Strict,
		Thresholds:    th,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
