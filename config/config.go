package config

// Config is the interface for providing configuration to the rest of the
// code. It is implemented by FileConfig for real use and by MockConfig in
// tests.
type Config interface {
	// GetSamplerConfig returns the configuration for the one sampler this
	// process should build, along with its type name.
	GetSamplerConfig() (any, string)

	// GetLoggerType returns the type of the logger to use (logrus, null)
	GetLoggerType() string

	// GetLoggingLevel returns the verbosity for the chosen logger
	GetLoggingLevel() Level

	// GetMetricsType returns the type of the metrics backend to use
	// (prometheus, null)
	GetMetricsType() string

	// GetPrometheusListenAddr returns the address on which the prometheus
	// metrics server should listen, when prometheus metrics are enabled
	GetPrometheusListenAddr() string
}
