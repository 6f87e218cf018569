package config

import (
	"fmt"
)

// The yaml tags are PascalCase to match the config file format; json tags
// exist for the config serializer.

// IntervalSamplerConfig configures the randomized interval sampler: one
// sample is triggered per SampleRate bytes of observed weight, on average,
// with sample points spaced by geometric variates. A Seed of 0 means "seed
// from the clock".
type IntervalSamplerConfig struct {
	SampleRate MemorySize `json:"samplerate" yaml:"SampleRate" default:"512KiB"`
	Seed       uint64     `json:"seed" yaml:"Seed"`
}

func (c *IntervalSamplerConfig) Validate() error {
	if c.SampleRate == 0 {
		return fmt.Errorf("IntervalSampler: SampleRate must be positive")
	}
	return nil
}

// DeterministicSamplerConfig configures the deterministic variant, which
// triggers exactly every SampleRate bytes. Used for reproducible tests.
type DeterministicSamplerConfig struct {
	SampleRate MemorySize `json:"samplerate" yaml:"SampleRate" default:"512KiB"`
}

func (c *DeterministicSamplerConfig) Validate() error {
	if c.SampleRate == 0 {
		return fmt.Errorf("DeterministicSampler: SampleRate must be positive")
	}
	return nil
}

// AdaptiveSamplerConfig configures the adaptive variant, which starts at
// StartingSampleRate and rescales itself every AdjustmentInterval so that
// the long-run trigger rate approaches GoalSamplesPerSec.
type AdaptiveSamplerConfig struct {
	StartingSampleRate MemorySize `json:"startingsamplerate" yaml:"StartingSampleRate" default:"512KiB"`
	MinSampleRate      MemorySize `json:"minsamplerate" yaml:"MinSampleRate" default:"1KiB"`
	GoalSamplesPerSec  float64    `json:"goalsamplespersec" yaml:"GoalSamplesPerSec" default:"10"`
	AdjustmentInterval Duration   `json:"adjustmentinterval" yaml:"AdjustmentInterval" default:"5s"`
	AdjustmentWeight   float64    `json:"adjustmentweight" yaml:"AdjustmentWeight" default:"0.5"`
	Seed               uint64     `json:"seed" yaml:"Seed"`
}

func (c *AdaptiveSamplerConfig) Validate() error {
	if c.StartingSampleRate == 0 {
		return fmt.Errorf("AdaptiveSampler: StartingSampleRate must be positive")
	}
	if c.MinSampleRate == 0 || c.MinSampleRate > c.StartingSampleRate {
		return fmt.Errorf("AdaptiveSampler: MinSampleRate must be positive and no larger than StartingSampleRate")
	}
	if c.GoalSamplesPerSec <= 0 {
		return fmt.Errorf("AdaptiveSampler: GoalSamplesPerSec must be positive")
	}
	if c.AdjustmentInterval <= 0 {
		return fmt.Errorf("AdaptiveSampler: AdjustmentInterval must be positive")
	}
	if c.AdjustmentWeight <= 0 || c.AdjustmentWeight > 1 {
		return fmt.Errorf("AdaptiveSampler: AdjustmentWeight must be in (0, 1]")
	}
	return nil
}

// SamplerChoice holds exactly one of the sampler configs; which pointer is
// non-nil decides which sampler implementation gets built.
type SamplerChoice struct {
	IntervalSampler      *IntervalSamplerConfig      `json:"intervalsampler" yaml:"IntervalSampler,omitempty"`
	DeterministicSampler *DeterministicSamplerConfig `json:"deterministicsampler" yaml:"DeterministicSampler,omitempty"`
	AdaptiveSampler      *AdaptiveSamplerConfig      `json:"adaptivesampler" yaml:"AdaptiveSampler,omitempty"`
}

func (v *SamplerChoice) Sampler() (any, string) {
	switch {
	case v.IntervalSampler != nil:
		return v.IntervalSampler, "IntervalSampler"
	case v.DeterministicSampler != nil:
		return v.DeterministicSampler, "DeterministicSampler"
	case v.AdaptiveSampler != nil:
		return v.AdaptiveSampler, "AdaptiveSampler"
	default:
		return nil, ""
	}
}

func (v *SamplerChoice) Validate() error {
	c, name := v.Sampler()
	if c == nil {
		return fmt.Errorf("no sampler configured")
	}
	type validator interface{ Validate() error }
	if err := c.(validator).Validate(); err != nil {
		return fmt.Errorf("sampler %s: %w", name, err)
	}
	return nil
}
