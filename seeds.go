package ashrand

import "github.com/Borislavv/go-ash-rand/internal/shared/random"

// NewSeed returns a fresh non-reproducible seed. Engines never draw one on
// their own.
func NewSeed() uint32 { return random.NewSeed() }

// NewSeeds returns n distinct fresh seeds.
func NewSeeds(n int) []uint32 { return random.NewSeeds(n) }

// SeedFromKey derives a stable seed from a name, e.g. "fold-3".
func SeedFromKey(key string) uint32 { return random.SeedFromKey(key) }

// DeriveSeed derives a stable child seed of base for key.
func DeriveSeed(base uint32, key string) uint32 { return random.DeriveSeed(base, key) }
