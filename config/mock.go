package config

// MockConfig will respond with whatever config it's set to do during
// initialization
type MockConfig struct {
	GetSamplerConfigVal  any
	GetSamplerNameVal    string
	GetLoggerTypeVal     string
	GetLoggingLevelVal   Level
	GetMetricsTypeVal    string
	GetPromListenAddrVal string
}

var _ Config = (*MockConfig)(nil)

func (m *MockConfig) GetSamplerConfig() (any, string) {
	return m.GetSamplerConfigVal, m.GetSamplerNameVal
}

func (m *MockConfig) GetLoggerType() string           { return m.GetLoggerTypeVal }
func (m *MockConfig) GetLoggingLevel() Level          { return m.GetLoggingLevelVal }
func (m *MockConfig) GetMetricsType() string          { return m.GetMetricsTypeVal }
func (m *MockConfig) GetPrometheusListenAddr() string { return m.GetPromListenAddrVal }
