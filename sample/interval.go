package sample

import (
	"fmt"
	"time"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/variate"
)

// IntervalSampler triggers, on average, one sample per SampleRate bytes of
// observed event weight. Distances between sample points are drawn from a
// geometric distribution with success probability 1/SampleRate, which makes
// the sample points statistically indistinguishable from sampling each byte
// independently -- but the per-event cost is a subtract and a compare, with
// one random draw per triggered sample rather than per event.
type IntervalSampler struct {
	Config *config.IntervalSamplerConfig
	Logger logger.Logger

	rate        int64
	probability float64
	remaining   int64
	rng         *variate.Source
}

var _ Sampler = (*IntervalSampler)(nil)

func (s *IntervalSampler) Start() error {
	s.Logger.Debug().Logf("Starting IntervalSampler")
	defer func() { s.Logger.Debug().Logf("Finished starting IntervalSampler") }()

	if s.Config.SampleRate == 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	s.rate = int64(s.Config.SampleRate)
	s.probability = 1.0 / float64(s.rate)

	seed := s.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// the source is owned exclusively by this sampler
	s.rng = variate.New(seed)
	s.remaining = s.rng.Geometric(s.probability)

	return nil
}

// Observe subtracts the event's weight from the distance to the next sample
// point and reports how many samples are due. The common path -- not due
// yet -- does no random draw and takes no branch beyond the comparison.
func (s *IntervalSampler) Observe(weight uint64) int {
	s.remaining -= int64(weight)
	if s.remaining > 0 {
		return 0
	}
	return s.trigger(weight)
}

func (s *IntervalSampler) trigger(weight uint64) int {
	// A zero-weight event can land exactly on a boundary, but it carries no
	// weight, so it cannot be the event that crosses it. Leave the state
	// alone and let the next weighted event trigger.
	if weight == 0 {
		return 0
	}
	// The fresh interval deliberately ignores how far remaining overshot;
	// one draw per sample, not a restart of the process at the overshoot
	// point.
	s.remaining = s.rng.Geometric(s.probability)
	if weight >= uint64(s.rate) {
		// This one event spans several mean-sized intervals. Count it as
		// the number of intervals it covers instead of redrawing inside
		// its span, so oversized events aren't undercounted relative to
		// their weight.
		return int(weight/uint64(s.rate)) + 1
	}
	return 1
}
