package config

import "time"

const defaultTelemetryInterval = 5 * time.Second

type TelemetryCfg struct {
	// Interval between two log records of counter deltas.
	Interval time.Duration `yaml:"interval"`
}

func (cfg *TelemetryCfg) Enabled() bool {
	return cfg != nil
}
