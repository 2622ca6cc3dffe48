package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Borislavv/go-ash-rand/internal/shared/simd"
)

func (cfg *Random) AdjustConfig() error {
	switch cfg.FillMode {
	case "", FillModeAuto:
		cfg.FillMode = FillModeAuto
		cfg.IsBulk = simd.Available()
	case FillModeBulk:
		cfg.IsBulk = true
	case FillModeScalar:
		cfg.IsBulk = false
	default:
		return fmt.Errorf("unknown fill mode %q", cfg.FillMode)
	}

	if cfg.Telemetry.Enabled() && cfg.Telemetry.Interval <= 0 {
		cfg.Telemetry.Interval = defaultTelemetryInterval
	}
	return nil
}

// Default returns an adjusted configuration with the default seed.
func Default() *Random {
	cfg := &Random{FillMode: FillModeAuto}
	_ = cfg.AdjustConfig()
	return cfg
}

func LoadConfig(path string) (*Random, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Random
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Random{}
	}
	if err = cfg.AdjustConfig(); err != nil {
		return nil, fmt.Errorf("adjust config from %s: %w", path, err)
	}

	return cfg, nil
}
