package sample

// MockSampler returns a fixed count on every nth observation, for testing
// code that consumes samplers.
type MockSampler struct {
	GiveCount int
	Every     uint64

	Observed []uint64
}

var _ Sampler = (*MockSampler)(nil)

func (m *MockSampler) Start() error {
	if m.Every == 0 {
		m.Every = 1
	}
	return nil
}

func (m *MockSampler) Observe(weight uint64) int {
	m.Observed = append(m.Observed, weight)
	if uint64(len(m.Observed))%m.Every == 0 {
		return m.GiveCount
	}
	return 0
}
