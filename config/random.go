package config

// DefaultSeed is applied when no seed is configured. It is a constant, not
// entropy, so unconfigured engines stay reproducible.
const DefaultSeed uint32 = 12345

// FillMode selects the bulk fill path.
type FillMode string

const (
	// FillModeAuto uses the bulk path when the CPU has 128-bit vector units.
	FillModeAuto FillMode = "auto"

	// FillModeBulk always uses the bulk path.
	FillModeBulk FillMode = "bulk"

	// FillModeScalar always generates word by word.
	FillModeScalar FillMode = "scalar"
)

// Random groups configuration of an engine instance.
type Random struct {
	// Seed is applied at construction. If nil, DefaultSeed is used.
	// Zero is a valid seed.
	Seed *uint32 `yaml:"seed"`

	// FillMode chooses between the bulk and the scalar fill path.
	// Both produce the same output; the choice only affects speed.
	// Supported values:
	//   - "auto"   (default): bulk when the CPU supports it
	//   - "bulk"
	//   - "scalar"
	FillMode FillMode `yaml:"fill_mode"`

	// IsBulk is derived from FillMode during initialization.
	// This field is not read from YAML.
	IsBulk bool // virtual: computed during init

	// Telemetry configures periodic logging of engine counters.
	// If nil, telemetry is disabled.
	Telemetry *TelemetryCfg `yaml:"telemetry"`
}

// SeedValue returns the configured seed or DefaultSeed.
func (cfg *Random) SeedValue() uint32 {
	if cfg == nil || cfg.Seed == nil {
		return DefaultSeed
	}
	return *cfg.Seed
}
