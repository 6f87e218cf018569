package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/honeycombio/wsample/config"
	"github.com/honeycombio/wsample/logger"
)

// PromMetrics exposes all registered metrics on a prometheus scrape
// endpoint. Values are shadowed locally so Get works without querying the
// registry.
type PromMetrics struct {
	Config config.Config `inject:""`
	Logger logger.Logger `inject:""`

	lock    sync.RWMutex
	metrics map[string]prometheus.Collector
	values  map[string]float64

	registry *prometheus.Registry
	server   *http.Server
}

var _ Metrics = (*PromMetrics)(nil)

func (p *PromMetrics) Start() error {
	p.Logger.Debug().Logf("Starting PromMetrics")
	defer func() { p.Logger.Debug().Logf("Finished starting PromMetrics") }()

	p.metrics = make(map[string]prometheus.Collector)
	p.values = make(map[string]float64)
	p.registry = prometheus.NewRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
	p.server = &http.Server{
		Addr:    p.Config.GetPrometheusListenAddr(),
		Handler: mux,
	}
	go func() {
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.Logger.Error().WithField("error", err.Error()).Logf("prometheus listener failed")
		}
	}()
	return nil
}

func (p *PromMetrics) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

func (p *PromMetrics) Register(name string, metricType string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.metrics[name]; ok {
		return
	}

	var col prometheus.Collector
	switch metricType {
	case "counter":
		col = prometheus.NewCounter(prometheus.CounterOpts{Name: name})
	case "gauge":
		col = prometheus.NewGauge(prometheus.GaugeOpts{Name: name})
	case "histogram":
		col = prometheus.NewHistogram(prometheus.HistogramOpts{Name: name})
	default:
		p.Logger.Error().WithField("metric_type", metricType).Logf("unknown metric type; registering as gauge")
		col = prometheus.NewGauge(prometheus.GaugeOpts{Name: name})
	}
	p.registry.MustRegister(col)
	p.metrics[name] = col
}

func (p *PromMetrics) Increment(name string) {
	p.Count(name, 1)
}

func (p *PromMetrics) Count(name string, n interface{}) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if c, ok := p.metrics[name].(prometheus.Counter); ok {
		c.Add(ConvertNumeric(n))
		p.values[name] += ConvertNumeric(n)
	}
}

func (p *PromMetrics) Gauge(name string, val interface{}) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if g, ok := p.metrics[name].(prometheus.Gauge); ok {
		g.Set(ConvertNumeric(val))
		p.values[name] = ConvertNumeric(val)
	}
}

func (p *PromMetrics) Histogram(name string, obs interface{}) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if h, ok := p.metrics[name].(prometheus.Histogram); ok {
		h.Observe(ConvertNumeric(obs))
	}
}

func (p *PromMetrics) Get(name string) (float64, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	v, ok := p.values[name]
	return v, ok
}
