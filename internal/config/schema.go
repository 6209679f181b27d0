package config

// Config is the top-level YAML structure for eventlogd.
type Config struct {
	Logger    LoggerConf    `yaml:"logger"`
	Metrics   MetricsConf   `yaml:"metrics"`
	Heartbeat HeartbeatConf `yaml:"heartbeat"`
}

// LoggerConf selects the sink for emitted event records.
type LoggerConf struct {
	// Output is "stdout", "stderr", or a file path. Defaults to "stdout".
	Output string `yaml:"output"`
	// Correlation attaches a correlation_id to every record's metadata.
	Correlation bool `yaml:"correlation"`
}

// MetricsConf configures the Prometheus scrape endpoint.
type MetricsConf struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":9090"
}

// HeartbeatConf tunes the demo heartbeat emitter.
type HeartbeatConf struct {
	IntervalMs int `yaml:"interval_ms"`
}

// Sink targets with dedicated handling in eventlogd.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

func applyDefaults(cfg *Config) {
	if cfg.Logger.Output == "" {
		cfg.Logger.Output = OutputStdout
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
	if cfg.Heartbeat.IntervalMs == 0 {
		cfg.Heartbeat.IntervalMs = 1000
	}
}
