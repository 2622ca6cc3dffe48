package random

import (
	"sync/atomic"
	"time"

	"github.com/zeebo/xxh3"
)

const golden = 0x9e3779b97f4a7c15

// SplitMix64 state shared by NewSeed callers. Updated via atomic CAS.
var _state atomic.Uint64

func init() { _state.Store(splitmixSeed(time.Now().UnixNano())) }

// NewSeed returns a fresh, non-reproducible seed. Engines never call it on
// their own; it exists for callers that explicitly opt out of reproducibility.
// Safe for concurrent use.
func NewSeed() uint32 {
	return fold(splitmixNext(&_state))
}

// NewSeeds returns n distinct fresh seeds, e.g. one per worker-owned engine.
func NewSeeds(n int) []uint32 {
	seeds := make([]uint32, 0, n)
	seen := make(map[uint32]struct{}, n)
	for len(seeds) < n {
		s := NewSeed()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		seeds = append(seeds, s)
	}
	return seeds
}

// SeedFromKey derives a stable seed from a name such as "fold-3".
func SeedFromKey(key string) uint32 {
	return fold(xxh3.HashString(key))
}

// DeriveSeed derives a stable child seed from a base seed and a key, so that
// one experiment seed fans out into independent per-component streams.
func DeriveSeed(base uint32, key string) uint32 {
	return fold(xxh3.HashStringSeed(key, splitmixSeed(int64(base))))
}

func fold(x uint64) uint32 {
	return uint32(x ^ x>>32)
}

// ---------- SplitMix64 (lock-free) ----------

// splitmixNext advances s atomically and returns a mixed 64-bit value.
func splitmixNext(s *atomic.Uint64) uint64 {
	for {
		old := s.Load()
		x := old + golden
		if s.CompareAndSwap(old, x) {
			return mix(x)
		}
	}
}

// splitmixSeed turns a signed seed into a well-mixed non-zero 64-bit state.
func splitmixSeed(seed int64) uint64 {
	z := mix(uint64(seed) + golden)
	if z == 0 {
		z = golden
	}
	return z
}

func mix(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
