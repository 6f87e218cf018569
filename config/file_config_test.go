package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
	}{
		{"a.yaml", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.toml", FormatTOML},
		{"a.json", FormatJSON},
		{"a.txt", FormatUnknown},
		{"a", FormatUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.format, formatFromFilename(tt.filename), tt.filename)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
Logger:
  Type: logrus
  Level: debug
Metrics:
  Type: prometheus
  PrometheusListenAddr: localhost:9090
Sampler:
  IntervalSampler:
    SampleRate: 1MiB
    Seed: 42
`)
	c := &FileConfig{Path: path}
	require.NoError(t, c.Start())

	assert.Equal(t, "logrus", c.GetLoggerType())
	assert.Equal(t, DebugLevel, c.GetLoggingLevel())
	assert.Equal(t, "prometheus", c.GetMetricsType())
	assert.Equal(t, "localhost:9090", c.GetPrometheusListenAddr())

	sc, name := c.GetSamplerConfig()
	assert.Equal(t, "IntervalSampler", name)
	ic, ok := sc.(*IntervalSamplerConfig)
	require.True(t, ok)
	assert.Equal(t, MemorySize(1024*1024), ic.SampleRate)
	assert.Equal(t, uint64(42), ic.Seed)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
[Sampler.DeterministicSampler]
SampleRate = "64KiB"
`)
	c := &FileConfig{Path: path}
	require.NoError(t, c.Start())

	sc, name := c.GetSamplerConfig()
	assert.Equal(t, "DeterministicSampler", name)
	dc, ok := sc.(*DeterministicSamplerConfig)
	require.True(t, ok)
	assert.Equal(t, MemorySize(64*1024), dc.SampleRate)
}

func TestDefaultsApplied(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
Sampler:
  IntervalSampler: {}
`)
	c := &FileConfig{Path: path}
	require.NoError(t, c.Start())

	assert.Equal(t, "logrus", c.GetLoggerType())
	assert.Equal(t, WarnLevel, c.GetLoggingLevel())
	assert.Equal(t, "null", c.GetMetricsType())

	sc, _ := c.GetSamplerConfig()
	ic := sc.(*IntervalSamplerConfig)
	assert.Equal(t, MemorySize(512*1024), ic.SampleRate)
}

func TestEmptyConfigGetsIntervalSampler(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `{}`)
	c := &FileConfig{Path: path}
	require.NoError(t, c.Start())

	sc, name := c.GetSamplerConfig()
	assert.Equal(t, "IntervalSampler", name)
	assert.Equal(t, MemorySize(512*1024), sc.(*IntervalSamplerConfig).SampleRate)
}

func TestZeroRateRejected(t *testing.T) {
	assert.Error(t, (&IntervalSamplerConfig{SampleRate: 0}).Validate())
	assert.Error(t, (&DeterministicSamplerConfig{SampleRate: 0}).Validate())
	assert.Error(t, (&AdaptiveSamplerConfig{StartingSampleRate: 0}).Validate())
	assert.Error(t, (&SamplerChoice{}).Validate())
}

func TestMissingFile(t *testing.T) {
	c := &FileConfig{Path: "/nonexistent/config.yaml"}
	assert.Error(t, c.Start())
}

func TestAdaptiveValidation(t *testing.T) {
	good := &AdaptiveSamplerConfig{
		StartingSampleRate: 512 * 1024,
		MinSampleRate:      1024,
		GoalSamplesPerSec:  10,
		AdjustmentInterval: Duration(5_000_000_000),
		AdjustmentWeight:   0.5,
	}
	assert.NoError(t, good.Validate())

	bad := *good
	bad.AdjustmentWeight = 1.5
	assert.Error(t, bad.Validate())

	bad = *good
	bad.MinSampleRate = good.StartingSampleRate * 2
	assert.Error(t, bad.Validate())

	bad = *good
	bad.GoalSamplesPerSec = 0
	assert.Error(t, bad.Validate())
}
