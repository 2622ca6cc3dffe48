package telemetry

import (
	"github.com/Borislavv/go-ash-rand/internal/dsfmt"
	"github.com/Borislavv/go-ash-rand/internal/sfmt"
)

const (
	blockWords32 = sfmt.N32
	blockWords64 = sfmt.N64
	blockReals   = dsfmt.N64
)

type sampler struct {
	engine Metered
}

func newSampler(m Metered) sampler {
	return sampler{engine: m}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	words32  uint64
	words64  uint64
	reals    uint64
	rejected uint64
	reseeds  uint64
}

func (s sampler) snapshot() snapshot {
	words32, words64, reals, rejected, reseeds := s.engine.Metrics()
	return snapshot{
		words32:  words32,
		words64:  words64,
		reals:    reals,
		rejected: rejected,
		reseeds:  reseeds,
	}
}

// generatedBytes is the volume produced by the recurrences in the interval.
func (s snapshot) generatedBytes() uint64 {
	return s.words32*4 + s.words64*8 + s.reals*8
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		words32:  delta(prev.words32, cur.words32),
		words64:  delta(prev.words64, cur.words64),
		reals:    delta(prev.reals, cur.reals),
		rejected: delta(prev.rejected, cur.rejected),
		reseeds:  delta(prev.reseeds, cur.reseeds),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
