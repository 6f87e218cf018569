package sample

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/metrics"
)

// Sampler decides, event by event, whether a sampling action is due.
// Observe must be called exactly once per event with that event's weight
// (for allocation sampling, the allocation size in bytes). The return value
// is the number of sampling actions the caller should take now; it is 0 on
// the vast majority of calls. The sampler never performs the sampled action
// itself.
//
// A sampler is owned by a single goroutine. Callers that sample several
// concurrent streams should give each stream its own sampler; in aggregate
// the streams still sample at the configured rate, with no coordination.
type Sampler interface {
	Observe(weight uint64) int
	Start() error
}

// SamplerFactory is used to create new samplers with common (injected) resources
type SamplerFactory struct {
	Config  config.Config   `inject:""`
	Logger  logger.Logger   `inject:""`
	Metrics metrics.Metrics `inject:"metrics"`
}

// GetSamplerImplementation returns a started sampler built from the
// configured sampler choice.
func (s *SamplerFactory) GetSamplerImplementation() (Sampler, error) {
	c, name := s.Config.GetSamplerConfig()

	var sampler Sampler
	switch c := c.(type) {
	case *config.IntervalSamplerConfig:
		sampler = &IntervalSampler{Config: c, Logger: s.Logger}
	case *config.DeterministicSamplerConfig:
		sampler = &DeterministicIntervalSampler{Config: c, Logger: s.Logger}
	case *config.AdaptiveSamplerConfig:
		sampler = &AdaptiveIntervalSampler{Config: c, Logger: s.Logger, Metrics: s.Metrics, Clock: clockwork.NewRealClock()}
	default:
		return nil, fmt.Errorf("unknown sampler type %T", c)
	}

	if err := sampler.Start(); err != nil {
		s.Logger.Error().WithField("sampler", name).Logf("failed to start sampler: %s", err)
		return nil, err
	}

	s.Logger.Debug().WithField("sampler", name).Logf("created implementation for sampler type %T", c)

	return sampler, nil
}
