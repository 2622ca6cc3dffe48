package ashrand

import (
	"log/slog"
	"sync/atomic"

	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/dsfmt"
	"github.com/Borislavv/go-ash-rand/internal/sampler"
	"github.com/Borislavv/go-ash-rand/internal/sfmt"
)

// Interval selects the unit interval a double is mapped onto.
type Interval = dsfmt.Interval

const (
	CloseOpen   = dsfmt.CloseOpen   // [0,1)
	OpenClose   = dsfmt.OpenClose   // (0,1]
	OpenOpen    = dsfmt.OpenOpen    // (0,1)
	Close1Open2 = dsfmt.Close1Open2 // [1,2)
)

// Block sizes of the underlying generators, in output words.
const (
	BlockUint32  = sfmt.N32
	BlockUint64  = sfmt.N64
	BlockFloat64 = dsfmt.N64
)

type Random interface {
	Seed(seed uint32)
	SeedValue() uint32

	Uint32() uint32
	Uint64() uint64
	FillUint32(dst []uint32, n int) error
	FillUint64(dst []uint64, n int) error

	Float64() float64
	Float64OpenClosed() float64
	Float64Open() float64
	Float64Close1Open2() float64
	FillUniform(dst []float64, n int) error
	FillUniformOpenClosed(dst []float64, n int) error
	FillFloat64(dst []float64, n int, iv Interval) error

	Normal(mean, stddev float64) float64
	StdNormal() float64
	NormalPolar(mean, stddev float64) float64

	SampleInt32(lo, hi int32) (int32, error)
	SampleUint32(lo, hi uint32) (uint32, error)
	SampleInt64(lo, hi int64) (int64, error)
	SampleUint64(lo, hi uint64) (uint64, error)
	Shuffle(n int, swap func(i, j int)) error
	Permutation(n int) ([]int, error)

	Metrics() (words32, words64, reals, rejected, reseeds uint64)
}

// Rand is an engine instance. It owns three generators seeded with the same
// value: 32-bit words, 64-bit words and doubles each come from their own
// state, so drawing from one never shifts the others.
//
// A Rand is not safe for concurrent use; give each goroutine its own
// instance or guard it with a lock.
type Rand struct {
	seed    atomic.Uint32
	g32     *sfmt.Gen32
	g64     *sfmt.Gen64
	real    *dsfmt.Gen
	sampler *sampler.Sampler
	logger  *slog.Logger
	reseeds atomic.Uint64
}

var _ Random = (*Rand)(nil)

// New builds an engine from cfg. A nil cfg means config.Default(), a nil
// logger discards records.
func New(cfg *config.Random, logger *slog.Logger) *Rand {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seed := cfg.SeedValue()
	r := &Rand{
		g32:    sfmt.New32(seed, cfg.IsBulk),
		g64:    sfmt.New64(seed, cfg.IsBulk),
		real:   dsfmt.New(seed, cfg.IsBulk),
		logger: logger,
	}
	r.seed.Store(seed)
	r.sampler = sampler.New(r)

	logger.Debug("random engine initialized", "seed", seed, "fill_mode", cfg.FillMode, "bulk", cfg.IsBulk)
	return r
}

// NewWithSeed builds an engine with the default configuration and seed.
func NewWithSeed(seed uint32) *Rand {
	cfg := config.Default()
	cfg.Seed = &seed
	return New(cfg, nil)
}

// Seed resets every generator. Re-applying a seed replays the same streams.
func (r *Rand) Seed(seed uint32) {
	r.seed.Store(seed)
	r.g32.Seed(seed)
	r.g64.Seed(seed)
	r.real.Seed(seed)
	r.reseeds.Add(1)
	r.logger.Debug("random engine reseeded", "seed", seed)
}

// SeedValue returns the last applied seed.
func (r *Rand) SeedValue() uint32 { return r.seed.Load() }

// Bulk reports whether fills use the in-place bulk path.
func (r *Rand) Bulk() bool { return r.g32.Bulk() }

// SetBulk switches the fill path of every generator. Output is unaffected.
func (r *Rand) SetBulk(enabled bool) {
	r.g32.SetBulk(enabled)
	r.g64.SetBulk(enabled)
	r.real.SetBulk(enabled)
}

func (r *Rand) Uint32() uint32 { return r.g32.Uint32() }

func (r *Rand) Uint64() uint64 { return r.g64.Uint64() }

// FillUint32 writes the next n words of the 32-bit stream into dst[:n].
func (r *Rand) FillUint32(dst []uint32, n int) error {
	if err := checkBuffer(dst, n); err != nil {
		return err
	}
	r.g32.Fill(dst[:n])
	return nil
}

// FillUint64 writes the next n words of the 64-bit stream into dst[:n].
func (r *Rand) FillUint64(dst []uint64, n int) error {
	if err := checkBuffer(dst, n); err != nil {
		return err
	}
	r.g64.Fill(dst[:n])
	return nil
}

// Float64 returns a double in [0,1).
func (r *Rand) Float64() float64 { return r.real.Float64(dsfmt.CloseOpen) }

// Float64OpenClosed returns a double in (0,1].
func (r *Rand) Float64OpenClosed() float64 { return r.real.Float64(dsfmt.OpenClose) }

// Float64Open returns a double in (0,1).
func (r *Rand) Float64Open() float64 { return r.real.Float64(dsfmt.OpenOpen) }

// Float64Close1Open2 returns the raw recurrence output in [1,2).
func (r *Rand) Float64Close1Open2() float64 { return r.real.Float64(dsfmt.Close1Open2) }

func (r *Rand) FillUniform(dst []float64, n int) error {
	return r.FillFloat64(dst, n, CloseOpen)
}

func (r *Rand) FillUniformOpenClosed(dst []float64, n int) error {
	return r.FillFloat64(dst, n, OpenClose)
}

// FillFloat64 writes the next n doubles, mapped onto iv, into dst[:n].
func (r *Rand) FillFloat64(dst []float64, n int, iv Interval) error {
	if err := checkBuffer(dst, n); err != nil {
		return err
	}
	r.real.Fill(dst[:n], iv)
	return nil
}

func (r *Rand) Normal(mean, stddev float64) float64 { return r.sampler.Normal(mean, stddev) }

func (r *Rand) StdNormal() float64 { return r.sampler.StdNormal() }

func (r *Rand) NormalPolar(mean, stddev float64) float64 { return r.sampler.NormalPolar(mean, stddev) }

func (r *Rand) SampleInt32(lo, hi int32) (int32, error) { return r.sampler.Int32(lo, hi) }

func (r *Rand) SampleUint32(lo, hi uint32) (uint32, error) { return r.sampler.Uint32(lo, hi) }

func (r *Rand) SampleInt64(lo, hi int64) (int64, error) { return r.sampler.Int64(lo, hi) }

func (r *Rand) SampleUint64(lo, hi uint64) (uint64, error) { return r.sampler.Uint64(lo, hi) }

// Shuffle permutes n elements in place through swap (Fisher-Yates).
func (r *Rand) Shuffle(n int, swap func(i, j int)) error { return r.sampler.Shuffle(n, swap) }

func (r *Rand) Permutation(n int) ([]int, error) { return r.sampler.Permutation(n) }

// Metrics returns cumulative counters: words generated by each recurrence,
// range draws rejected for bias, and reseeds.
func (r *Rand) Metrics() (words32, words64, reals, rejected, reseeds uint64) {
	return r.g32.Generated(), r.g64.Generated(), r.real.Generated(), r.sampler.Rejected(), r.reseeds.Load()
}
