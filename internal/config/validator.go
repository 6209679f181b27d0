package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for values the daemon cannot start with.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Logger.Output == "" {
		errs = append(errs, "logger.output must not be empty")
	}
	if !strings.Contains(cfg.Metrics.Addr, ":") {
		errs = append(errs, fmt.Sprintf("metrics.addr %q is not a listen address", cfg.Metrics.Addr))
	}
	if cfg.Heartbeat.IntervalMs < 0 {
		errs = append(errs, fmt.Sprintf("heartbeat.interval_ms must not be negative, got %d", cfg.Heartbeat.IntervalMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
