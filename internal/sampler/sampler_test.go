package sampler

import (
	"github.com/Borislavv/go-ash-rand/internal/dsfmt"
	"github.com/Borislavv/go-ash-rand/internal/sfmt"
)

// engineSource wires the real generators the way the root package does.
type engineSource struct {
	g32  *sfmt.Gen32
	g64  *sfmt.Gen64
	real *dsfmt.Gen
}

func newEngineSource(seed uint32) *engineSource {
	return &engineSource{
		g32:  sfmt.New32(seed, false),
		g64:  sfmt.New64(seed, false),
		real: dsfmt.New(seed, false),
	}
}

func (s *engineSource) Uint32() uint32   { return s.g32.Uint32() }
func (s *engineSource) Uint64() uint64   { return s.g64.Uint64() }
func (s *engineSource) Float64() float64 { return s.real.Float64(dsfmt.CloseOpen) }

// stubSource replays fixed values, cycling when exhausted.
type stubSource struct {
	u32    []uint32
	u64    []uint64
	f64    []float64
	i, j, k int
}

func (s *stubSource) Uint32() uint32 {
	v := s.u32[s.i%len(s.u32)]
	s.i++
	return v
}

func (s *stubSource) Uint64() uint64 {
	v := s.u64[s.j%len(s.u64)]
	s.j++
	return v
}

func (s *stubSource) Float64() float64 {
	v := s.f64[s.k%len(s.f64)]
	s.k++
	return v
}
