package metrics

import "sync"

// MockMetrics collects metrics that were registered and changed to allow
// tests to verify expected behavior
type MockMetrics struct {
	Registrations     map[string]string
	CounterIncrements map[string]int
	GaugeRecords      map[string]float64
	Histograms        map[string][]float64

	lock sync.Mutex
}

var _ Metrics = (*MockMetrics)(nil)

// Start initializes all metrics or resets all metrics to zero
func (m *MockMetrics) Start() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Registrations = make(map[string]string)
	m.CounterIncrements = make(map[string]int)
	m.GaugeRecords = make(map[string]float64)
	m.Histograms = make(map[string][]float64)
}

func (m *MockMetrics) Register(name string, metricType string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Registrations[name] = metricType
}

func (m *MockMetrics) Increment(name string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.CounterIncrements[name] += 1
}

func (m *MockMetrics) Count(name string, val interface{}) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.CounterIncrements[name] += int(ConvertNumeric(val))
}

func (m *MockMetrics) Gauge(name string, val interface{}) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.GaugeRecords[name] = ConvertNumeric(val)
}

func (m *MockMetrics) Histogram(name string, obs interface{}) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Histograms[name] = append(m.Histograms[name], ConvertNumeric(obs))
}

func (m *MockMetrics) Get(name string) (float64, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if v, ok := m.CounterIncrements[name]; ok {
		return float64(v), true
	}
	v, ok := m.GaugeRecords[name]
	return v, ok
}
