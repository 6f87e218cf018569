package metrics

import (
	"fmt"

	"github.com/honeycombio/wsample/config"
)

type Metrics interface {
	// Register declares a metric; metricType should be one of counter,
	// gauge, histogram
	Register(name string, metricType string)
	Increment(name string)                  // for counters
	Count(name string, n interface{})       // for counters
	Gauge(name string, val interface{})     // for gauges
	Histogram(name string, obs interface{}) // for histograms
	Get(name string) (float64, bool)        // for reading back a counter or a gauge
}

func GetMetricsImplementation(c config.Config) (Metrics, error) {
	switch c.GetMetricsType() {
	case "prometheus":
		return &PromMetrics{}, nil
	case "null":
		return &NullMetrics{}, nil
	default:
		return nil, fmt.Errorf("unknown metrics type %s", c.GetMetricsType())
	}
}

func ConvertNumeric(val interface{}) float64 {
	switch n := val.(type) {
	case int:
		return float64(n)
	case uint:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case int32:
		return float64(n)
	case uint32:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	default:
		return 0
	}
}
