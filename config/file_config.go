package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatUnknown Format = "unknown"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
)

// formatFromFilename returns the format of the file based on the filename extension.
func formatFromFilename(filename string) Format {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml", ".YAML", ".YML":
		return FormatYAML
	case ".toml", ".TOML":
		return FormatTOML
	case ".json", ".JSON":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

func load(r io.Reader, format Format, into any) error {
	switch format {
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(into)
	case FormatTOML:
		return toml.NewDecoder(r).Decode(into)
	case FormatJSON:
		return json.NewDecoder(r).Decode(into)
	default:
		return fmt.Errorf("unable to determine data format")
	}
}

type fileConfig struct {
	Logger  LoggerConfig  `json:"logger" yaml:"Logger"`
	Metrics MetricsConfig `json:"metrics" yaml:"Metrics"`
	Sampler SamplerChoice `json:"sampler" yaml:"Sampler"`
}

type LoggerConfig struct {
	Type  string `json:"type" yaml:"Type" default:"logrus"`
	Level Level  `json:"level" yaml:"Level" default:"warn"`
}

type MetricsConfig struct {
	Type                 string `json:"type" yaml:"Type" default:"null"`
	PrometheusListenAddr string `json:"prometheuslistenaddr" yaml:"PrometheusListenAddr" default:"localhost:2112"`
}

// FileConfig implements Config by reading a YAML, TOML, or JSON file chosen
// by its extension. Values not present in the file get their defaults;
// invalid sampler settings are rejected here, at load time, rather than
// when the sampler starts.
type FileConfig struct {
	Path string

	conf fileConfig
}

var _ Config = (*FileConfig)(nil)

// Start reads and validates the config file.
func (f *FileConfig) Start() error {
	r, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	// Top-level defaults go in before the file is read; the sampler choice
	// is a set of nil pointers at this point, so they survive untouched and
	// the file alone decides which sampler gets built.
	f.conf = fileConfig{}
	if err := defaults.Set(&f.conf); err != nil {
		return fmt.Errorf("unable to apply defaults: %w", err)
	}
	if err := load(r, formatFromFilename(f.Path), &f.conf); err != nil {
		return fmt.Errorf("unable to load config %s: %w", f.Path, err)
	}
	// if no sampler was named, use a randomized interval sampler with
	// default settings; otherwise fill in whatever the file left unset
	if c, _ := f.conf.Sampler.Sampler(); c == nil {
		f.conf.Sampler.IntervalSampler = &IntervalSamplerConfig{}
	}
	c, _ := f.conf.Sampler.Sampler()
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("unable to apply defaults: %w", err)
	}
	if err := f.conf.Sampler.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", f.Path, err)
	}
	return nil
}

func (f *FileConfig) GetSamplerConfig() (any, string) {
	return f.conf.Sampler.Sampler()
}

func (f *FileConfig) GetLoggerType() string {
	return f.conf.Logger.Type
}

func (f *FileConfig) GetLoggingLevel() Level {
	return f.conf.Logger.Level
}

func (f *FileConfig) GetMetricsType() string {
	return f.conf.Metrics.Type
}

func (f *FileConfig) GetPrometheusListenAddr() string {
	return f.conf.Metrics.PrometheusListenAddr
}
