package sample

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/metrics"
)

func newAdaptive(t *testing.T, clock clockwork.Clock) (*AdaptiveIntervalSampler, *metrics.MockMetrics) {
	t.Helper()
	mm := &metrics.MockMetrics{}
	mm.Start()
	a := &AdaptiveIntervalSampler{
		Config: &config.AdaptiveSamplerConfig{
			StartingSampleRate: 1024,
			MinSampleRate:      64,
			GoalSamplesPerSec:  10,
			AdjustmentInterval: config.Duration(time.Second),
			AdjustmentWeight:   1.0, // no smoothing, to make assertions exact
			Seed:               3,
		},
		Logger:  &logger.NullLogger{},
		Metrics: mm,
		Clock:   clock,
	}
	require.NoError(t, a.Start())
	return a, mm
}

func TestAdaptiveValidatesConfig(t *testing.T) {
	a := &AdaptiveIntervalSampler{
		Config:  &config.AdaptiveSamplerConfig{StartingSampleRate: 0},
		Logger:  &logger.NullLogger{},
		Metrics: &metrics.NullMetrics{},
		Clock:   clockwork.NewFakeClock(),
	}
	assert.Error(t, a.Start())
}

func TestAdaptiveRaisesRateUnderLoad(t *testing.T) {
	clock := clockwork.NewFakeClock()
	a, mm := newAdaptive(t, clock)
	defer a.Stop()

	// hammer it: way more than 10 samples in the interval
	weights := variateStream(5)
	for i := 0; i < 100_000; i++ {
		a.Observe(weights())
	}
	triggered := a.triggered.Load()
	require.Greater(t, triggered, int64(10))

	clock.BlockUntilContext(context.Background(), 1)
	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		return a.rate.Load() > 1024
	}, 2*time.Second, 10*time.Millisecond)

	// with weight 1.0 the EMA equals the measured rate, so the new rate is
	// startingRate * triggered / goal
	assert.Equal(t, int64(1024*float64(triggered)/10), a.rate.Load())

	rate, ok := mm.Get("adaptive_sample_rate")
	assert.True(t, ok)
	assert.Equal(t, float64(a.rate.Load()), rate)
	adjustments, _ := mm.Get("adaptive_rate_adjustments")
	assert.GreaterOrEqual(t, adjustments, 1.0)
}

func TestAdaptiveFloorsAtMinRate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	a, _ := newAdaptive(t, clock)
	defer a.Stop()

	// one sample in the whole interval: measured rate far below goal, so
	// the rate should drop, but never below the floor
	a.triggered.Store(1)
	clock.BlockUntilContext(context.Background(), 1)
	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		return a.rate.Load() == 64
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAdaptiveIdleIntervalLeavesRateAlone(t *testing.T) {
	clock := clockwork.NewFakeClock()
	a, _ := newAdaptive(t, clock)
	defer a.Stop()

	clock.BlockUntilContext(context.Background(), 1)
	clock.Advance(time.Second)
	// no samples triggered: the EMA is 0 and the rate must not move
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1024), a.rate.Load())
}

func TestAdaptiveSamplesLikeIntervalSampler(t *testing.T) {
	// with the ticker never firing, behavior matches the plain randomized
	// sampler's contract
	clock := clockwork.NewFakeClock()
	a, _ := newAdaptive(t, clock)
	defer a.Stop()

	assert.Equal(t, 0, a.Observe(0))
	a.remaining = 5
	assert.Equal(t, int(95/1024)+1, a.Observe(95))
	a.remaining = 5
	assert.Equal(t, int(4096/1024)+1, a.Observe(4096))
}
