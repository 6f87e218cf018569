package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
	"github.com/honeycombio/wsample/metrics"
	"github.com/honeycombio/wsample/sample"
	"github.com/honeycombio/wsample/variate"
)

// App drives a synthetic allocation workload through the configured sampler
// and reports the achieved sampling rate. It exists to exercise the library
// end to end and to eyeball rate convergence against real-looking event
// streams.
type App struct {
	Config         config.Config          `inject:""`
	Logger         logger.Logger          `inject:""`
	Metrics        metrics.Metrics        `inject:"metrics"`
	SamplerFactory *sample.SamplerFactory `inject:""`

	// set from the command line before the injection graph is populated
	EventCount int
	Seed       uint64
	Version    string

	sampler sample.Sampler
}

func (a *App) Start() error {
	a.Logger.Debug().Logf("Starting up App...")

	a.Metrics.Register("events_observed", "counter")
	a.Metrics.Register("event_weight", "histogram")
	a.Metrics.Register("samples_triggered", "counter")

	s, err := a.SamplerFactory.GetSamplerImplementation()
	if err != nil {
		return err
	}
	a.sampler = s
	return nil
}

func (a *App) Stop() error {
	a.Logger.Debug().Logf("Shutting down App...")
	if s, ok := a.sampler.(interface{ Stop() error }); ok {
		return s.Stop()
	}
	return nil
}

// Run feeds EventCount synthetic events through the sampler. It returns
// early on SIGINT/SIGTERM.
func (a *App) Run() error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	seed := a.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen := variate.New(seed)

	var totalWeight uint64
	var totalSamples int
	start := time.Now()
	for i := 0; i < a.EventCount; i++ {
		// check for shutdown once in a while, not per event
		if i%65536 == 0 {
			select {
			case sig := <-sigs:
				a.Logger.Error().Logf("Caught signal \"%s\"", sig)
				return a.report(i, totalWeight, totalSamples, time.Since(start))
			default:
			}
		}

		w := nextWeight(gen)
		totalWeight += w
		if n := a.sampler.Observe(w); n > 0 {
			totalSamples += n
			a.Metrics.Count("samples_triggered", n)
		}
		a.Metrics.Histogram("event_weight", w)
	}
	a.Metrics.Count("events_observed", a.EventCount)
	return a.report(a.EventCount, totalWeight, totalSamples, time.Since(start))
}

func (a *App) report(events int, totalWeight uint64, totalSamples int, elapsed time.Duration) error {
	fields := map[string]any{
		"events":        events,
		"total_weight":  totalWeight,
		"samples":       totalSamples,
		"elapsed":       elapsed.String(),
		"events_per_us": float64(events) / float64(elapsed.Microseconds()+1),
	}
	if totalSamples > 0 {
		fields["achieved_bytes_per_sample"] = totalWeight / uint64(totalSamples)
	}
	a.Logger.Info().WithFields(fields).Logf("run complete")
	return nil
}

// nextWeight produces allocation-like sizes: mostly small, occasionally
// huge, so the oversized-event path gets real traffic.
func nextWeight(g *variate.Source) uint64 {
	u := g.Uint64()
	switch {
	case u%100 < 90:
		return 16 + u%4080
	case u%100 < 99:
		return 4096 + u%61440
	default:
		return 65536 + u%983040
	}
}
