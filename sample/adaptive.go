package sample

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/metrics"
	"github.com/honeycombio/wsample/variate"
)

// AdaptiveIntervalSampler is an IntervalSampler whose rate is not fixed:
// a background ticker tracks an exponential moving average of how many
// samples per second the workload is triggering and rescales the rate so
// the trigger rate approaches GoalSamplesPerSec. A bursty allocation-heavy
// phase raises the rate (fewer samples per byte); a quiet phase lowers it
// back toward MinSampleRate.
//
// Observe must still be called from a single goroutine. The ticker
// goroutine only touches the rate cell and the trigger counter, both
// atomics, so the hot path stays lock-free.
type AdaptiveIntervalSampler struct {
	Config  *config.AdaptiveSamplerConfig
	Logger  logger.Logger
	Metrics metrics.Metrics
	Clock   clockwork.Clock

	rate      atomic.Int64
	triggered atomic.Int64
	remaining int64
	rng       *variate.Source

	goal     float64
	weight   float64
	interval time.Duration
	minRate  int64
	lastEMA  float64

	done chan struct{}
}

var _ Sampler = (*AdaptiveIntervalSampler)(nil)

func (a *AdaptiveIntervalSampler) Start() error {
	a.Logger.Debug().Logf("Starting AdaptiveIntervalSampler")
	defer func() { a.Logger.Debug().Logf("Finished starting AdaptiveIntervalSampler") }()

	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("adaptive sampler: %w", err)
	}
	if a.Clock == nil {
		a.Clock = clockwork.NewRealClock()
	}
	a.rate.Store(int64(a.Config.StartingSampleRate))
	a.minRate = int64(a.Config.MinSampleRate)
	a.goal = a.Config.GoalSamplesPerSec
	a.weight = a.Config.AdjustmentWeight
	a.interval = a.Config.AdjustmentInterval.Duration()

	seed := a.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.rng = variate.New(seed)
	a.remaining = a.rng.Geometric(1.0 / float64(a.rate.Load()))

	a.Metrics.Register("adaptive_sample_rate", "gauge")
	a.Metrics.Register("adaptive_rate_adjustments", "counter")
	a.Metrics.Gauge("adaptive_sample_rate", a.rate.Load())

	a.done = make(chan struct{})
	go a.adjustLoop()

	return nil
}

// Stop halts the rate adjustment ticker. The sampler keeps working after
// Stop, at whatever rate it last settled on.
func (a *AdaptiveIntervalSampler) Stop() error {
	close(a.done)
	return nil
}

func (a *AdaptiveIntervalSampler) Observe(weight uint64) int {
	a.remaining -= int64(weight)
	if a.remaining > 0 {
		return 0
	}
	return a.trigger(weight)
}

func (a *AdaptiveIntervalSampler) trigger(weight uint64) int {
	if weight == 0 {
		return 0
	}
	rate := a.rate.Load()
	a.remaining = a.rng.Geometric(1.0 / float64(rate))
	count := 1
	if weight >= uint64(rate) {
		count = int(weight/uint64(rate)) + 1
	}
	a.triggered.Add(int64(count))
	return count
}

func (a *AdaptiveIntervalSampler) adjustLoop() {
	ticker := a.Clock.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-a.done:
			return
		case <-ticker.Chan():
			a.adjust()
		}
	}
}

func (a *AdaptiveIntervalSampler) adjust() {
	perSec := float64(a.triggered.Swap(0)) / a.interval.Seconds()
	a.lastEMA = a.weight*perSec + (1-a.weight)*a.lastEMA
	if a.lastEMA <= 0 {
		return
	}

	rate := a.rate.Load()
	newRate := int64(float64(rate) * a.lastEMA / a.goal)
	if newRate < a.minRate {
		newRate = a.minRate
	}
	if newRate == rate {
		return
	}
	a.rate.Store(newRate)
	a.Metrics.Gauge("adaptive_sample_rate", newRate)
	a.Metrics.Increment("adaptive_rate_adjustments")
	a.Logger.Debug().WithFields(map[string]any{
		"samples_per_sec": perSec,
		"ema":             a.lastEMA,
		"sample_rate":     newRate,
	}).Logf("adjusted sample rate")
}
