package sample

import (
	"fmt"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
)

// DeterministicIntervalSampler triggers exactly every SampleRate bytes of
// observed weight, with no randomness. Runs are exactly reproducible, which
// is what you want in tests and when comparing two profiles of the same
// workload. After a trigger the distance resets to exactly SampleRate; any
// overshoot from the triggering event is not carried over.
type DeterministicIntervalSampler struct {
	Config *config.DeterministicSamplerConfig
	Logger logger.Logger

	rate      int64
	remaining int64
}

var _ Sampler = (*DeterministicIntervalSampler)(nil)

func (d *DeterministicIntervalSampler) Start() error {
	d.Logger.Debug().Logf("Starting DeterministicIntervalSampler")
	defer func() { d.Logger.Debug().Logf("Finished starting DeterministicIntervalSampler") }()

	if d.Config.SampleRate == 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	d.rate = int64(d.Config.SampleRate)
	d.remaining = d.rate

	return nil
}

func (d *DeterministicIntervalSampler) Observe(weight uint64) int {
	d.remaining -= int64(weight)
	if d.remaining > 0 {
		return 0
	}
	if weight == 0 {
		return 0
	}
	d.remaining = d.rate
	if weight >= uint64(d.rate) {
		return int(weight/uint64(d.rate)) + 1
	}
	return 1
}
