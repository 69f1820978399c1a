// SPDX-License-Identifier: MIT

// Package config loads the xmath CLI settings from a YAML or TOML file. The
// format follows the file extension; decoded values override Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xmath/analysis"
	"github.com/katalvlaran/xmath/matrix"
)

var (
	// ErrFormat is returned for a file extension that is neither YAML nor TOML.
	ErrFormat = errors.New("config: unsupported file format")

	// ErrValue is returned for a setting the option constructors would reject,
	// such as a NaN or infinite bound.
	ErrValue = errors.New("config: invalid value")
)

// Format is a supported serialization.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

const (
	DefaultPlotHeight  = 12
	DefaultPlotWidth   = 72
	DefaultPlotSamples = 200
)

// Config is the CLI configuration.
type Config struct {
	Sampler SamplerConfig `yaml:"sampler" toml:"sampler"`
	Plot    PlotConfig    `yaml:"plot" toml:"plot"`
	Matrix  MatrixConfig  `yaml:"matrix" toml:"matrix"`
}

// SamplerConfig feeds analysis.NewSampler. A zero Workers means GOMAXPROCS.
type SamplerConfig struct {
	Min       float64 `yaml:"min" toml:"min"`
	Max       float64 `yaml:"max" toml:"max"`
	Precision float64 `yaml:"precision" toml:"precision"`
	Workers   int     `yaml:"workers" toml:"workers"`
}

// PlotConfig sizes the terminal plots.
type PlotConfig struct {
	Height  int `yaml:"height" toml:"height"`
	Width   int `yaml:"width" toml:"width"`
	Samples int `yaml:"samples" toml:"samples"`
}

// MatrixConfig holds the float matrix numeric policy.
type MatrixConfig struct {
	Epsilon float64 `yaml:"epsilon" toml:"epsilon"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sampler: SamplerConfig{
			Min:       analysis.DefaultMin,
			Max:       analysis.DefaultMax,
			Precision: analysis.DefaultPrecision,
		},
		Plot: PlotConfig{
			Height:  DefaultPlotHeight,
			Width:   DefaultPlotWidth,
			Samples: DefaultPlotSamples,
		},
		Matrix: MatrixConfig{Epsilon: matrix.DefaultEpsilon},
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return 0, fmt.Errorf("%q: %w", path, ErrFormat)
}

// Decode unmarshals data in the given format into v.
func Decode(data []byte, f Format, v any) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml: %w", err)
		}
		return nil
	case FormatTOML:
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("toml: %w", err)
		}
		return nil
	}

	return ErrFormat
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = Decode(data, f, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func valueErrorf(key string, v any) error {
	return fmt.Errorf("%s = %v: %w", key, v, ErrValue)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// SamplerOptions converts the sampler section into analysis options.
// Non-finite values are rejected with ErrValue; an empty range (min >= max),
// a non-positive precision or worker count keep the analysis defaults.
func (c *Config) SamplerOptions() ([]analysis.Option, error) {
	s := c.Sampler
	switch {
	case !isFinite(s.Min):
		return nil, valueErrorf("sampler.min", s.Min)
	case !isFinite(s.Max):
		return nil, valueErrorf("sampler.max", s.Max)
	case !isFinite(s.Precision):
		return nil, valueErrorf("sampler.precision", s.Precision)
	}

	var opts []analysis.Option
	if s.Min < s.Max {
		opts = append(opts, analysis.WithRange(s.Min, s.Max))
	}
	if s.Precision > 0 {
		opts = append(opts, analysis.WithPrecision(s.Precision))
	}
	if s.Workers > 0 {
		opts = append(opts, analysis.WithWorkers(s.Workers))
	}

	return opts, nil
}

// MatrixOptions converts the matrix section into float matrix options.
// Errors: ErrValue when epsilon is negative or not finite.
func (c *Config) MatrixOptions() ([]matrix.Option, error) {
	eps := c.Matrix.Epsilon
	if !isFinite(eps) || eps < 0 {
		return nil, valueErrorf("matrix.epsilon", eps)
	}

	return []matrix.Option{matrix.WithEpsilon(eps)}, nil
}
