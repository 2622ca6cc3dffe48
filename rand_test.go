package ashrand

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/Borislavv/go-ash-rand/config"
	"github.com/stretchr/testify/require"
)

func newTestRand(t *testing.T, mode config.FillMode) *Rand {
	t.Helper()
	cfg := &config.Random{FillMode: mode}
	require.NoError(t, cfg.AdjustConfig())
	return New(cfg, slog.Default())
}

// TestRand_ReferenceValues checks the recorded values for the default seed.
func TestRand_ReferenceValues(t *testing.T) {
	require.Equal(t, uint32(1811630862), New(nil, nil).Uint32())
	require.Equal(t, uint64(18328733385137801998), New(nil, nil).Uint64())
	require.Equal(t, 75.567130769021162, New(nil, nil).Normal(100.0, 10.0))
}

// TestRand_FillBlockBoundary checks the value at the first block boundary
// for a bulk-eligible and a scalar-tail length, in both fill modes.
func TestRand_FillBlockBoundary(t *testing.T) {
	for _, mode := range []config.FillMode{config.FillModeScalar, config.FillModeBulk} {
		t.Run(string(mode), func(t *testing.T) {
			for _, size := range []int{2 * BlockUint32, 2*BlockUint32 + 1} {
				dst := make([]uint32, size)
				require.NoError(t, newTestRand(t, mode).FillUint32(dst, size))
				require.Equal(t, uint32(2228230814), dst[BlockUint32])
			}
			for _, size := range []int{2 * BlockUint64, 2*BlockUint64 + 1} {
				dst := make([]uint64, size)
				require.NoError(t, newTestRand(t, mode).FillUint64(dst, size))
				require.Equal(t, uint64(9564086722318310046), dst[BlockUint64])
			}
			for _, size := range []int{2 * BlockFloat64, 2*BlockFloat64 + 1} {
				dst := make([]float64, size)
				require.NoError(t, newTestRand(t, mode).FillUniformOpenClosed(dst, size))
				require.Equal(t, 0.25551924513287405, dst[BlockFloat64])
			}
		})
	}
}

// TestRand_FillMatchesScalarCalls verifies fill equals one-by-one calls.
func TestRand_FillMatchesScalarCalls(t *testing.T) {
	const n = 3*BlockUint32 + 5

	ref := New(nil, nil)
	want32 := make([]uint32, n)
	for i := range want32 {
		want32[i] = ref.Uint32()
	}
	want64 := make([]uint64, n)
	for i := range want64 {
		want64[i] = ref.Uint64()
	}
	wantF := make([]float64, n)
	for i := range wantF {
		wantF[i] = ref.Float64()
	}

	r := newTestRand(t, config.FillModeBulk)
	got32 := make([]uint32, n)
	require.NoError(t, r.FillUint32(got32, n))
	got64 := make([]uint64, n)
	require.NoError(t, r.FillUint64(got64, n))
	gotF := make([]float64, n)
	require.NoError(t, r.FillUniform(gotF, n))

	require.Equal(t, want32, got32)
	require.Equal(t, want64, got64)
	require.Equal(t, wantF, gotF)
}

// TestRand_FillPartialBuffer writes only the first n entries.
func TestRand_FillPartialBuffer(t *testing.T) {
	r := New(nil, nil)
	dst := []uint32{7, 7, 7, 7}
	require.NoError(t, r.FillUint32(dst, 2))
	require.Equal(t, uint32(1811630862), dst[0])
	require.Equal(t, []uint32{7, 7}, dst[2:])
}

// TestRand_FillInvalidArgument rejects bad buffers without consuming output.
func TestRand_FillInvalidArgument(t *testing.T) {
	r := New(nil, nil)

	require.ErrorIs(t, r.FillUint32(nil, 1), ErrInvalidArgument)
	require.ErrorIs(t, r.FillUint64(make([]uint64, 2), 3), ErrInvalidArgument)
	require.ErrorIs(t, r.FillUniform(make([]float64, 2), -1), ErrInvalidArgument)
	require.ErrorIs(t, r.FillFloat64(nil, 5, OpenOpen), ErrInvalidArgument)

	require.NoError(t, r.FillUint32(nil, 0))
	require.NoError(t, r.FillUniformOpenClosed(nil, 0))

	require.Equal(t, uint32(1811630862), r.Uint32())
	require.Equal(t, uint64(18328733385137801998), r.Uint64())
}

// TestRand_Intervals keeps every scalar draw within its interval.
func TestRand_Intervals(t *testing.T) {
	r := New(nil, nil)
	for i := 0; i < 2*BlockFloat64; i++ {
		co := r.Float64()
		require.True(t, co >= 0 && co < 1)
		oc := r.Float64OpenClosed()
		require.True(t, oc > 0 && oc <= 1)
		oo := r.Float64Open()
		require.True(t, oo > 0 && oo < 1)
	}
}

// TestRand_Seed_Replays verifies reseeding resets every stream.
func TestRand_Seed_Replays(t *testing.T) {
	r := NewWithSeed(17)
	require.Equal(t, uint32(17), r.SeedValue())

	a32, a64, aF, aN := r.Uint32(), r.Uint64(), r.Float64(), r.StdNormal()
	r.Uint32()

	r.Seed(17)
	require.Equal(t, a32, r.Uint32())
	require.Equal(t, a64, r.Uint64())
	require.Equal(t, aF, r.Float64())
	require.Equal(t, aN, r.StdNormal())

	r.Seed(0)
	require.Equal(t, uint32(0), r.SeedValue())
	require.NotEqual(t, a32, r.Uint32())
}

// TestRand_StreamsIndependent verifies drawing doubles does not shift words.
func TestRand_StreamsIndependent(t *testing.T) {
	a := New(nil, nil)
	b := New(nil, nil)
	for i := 0; i < 10; i++ {
		b.Float64()
		b.Uint64()
	}
	require.Equal(t, a.Uint32(), b.Uint32())
}

// TestRand_Sampling covers the range sampler through the engine.
func TestRand_Sampling(t *testing.T) {
	r := NewWithSeed(17)
	var seen [10]bool
	for i := 0; i < 10000; i++ {
		v, err := r.SampleUint32(0, 9)
		require.NoError(t, err)
		seen[v] = true

		w, err := r.SampleInt64(-1, 0)
		require.NoError(t, err)
		require.True(t, w == -1 || w == 0)
	}
	for v, ok := range seen {
		require.True(t, ok, "value %d never drawn", v)
	}

	_, err := r.SampleInt32(3, 2)
	require.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = r.SampleUint64(3, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestRand_Permutation is reproducible for a seed.
func TestRand_Permutation(t *testing.T) {
	a, err := NewWithSeed(5).Permutation(50)
	require.NoError(t, err)
	b, err := NewWithSeed(5).Permutation(50)
	require.NoError(t, err)
	require.Equal(t, a, b)

	items := []string{"a", "b", "c", "d"}
	require.NoError(t, NewWithSeed(5).Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] }))
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, items)
}

// TestRand_NormalPolar is deterministic and honours zero stddev.
func TestRand_NormalPolar(t *testing.T) {
	require.Equal(t, NewWithSeed(3).NormalPolar(1, 2), NewWithSeed(3).NormalPolar(1, 2))
	require.Equal(t, 8.0, New(nil, nil).NormalPolar(8, 0))
	require.Equal(t, 8.0, New(nil, nil).Normal(8, 0))
}

// TestRand_Metrics counts generated words, rejections and reseeds.
func TestRand_Metrics(t *testing.T) {
	r := New(nil, nil)
	words32, words64, reals, rejected, reseeds := r.Metrics()
	require.Zero(t, words32+words64+reals+rejected+reseeds)

	r.Uint32()
	r.Uint64()
	r.Float64()
	r.Seed(1)

	words32, words64, reals, _, reseeds = r.Metrics()
	require.Equal(t, uint64(BlockUint32), words32)
	require.Equal(t, uint64(BlockUint64), words64)
	require.Equal(t, uint64(BlockFloat64), reals)
	require.Equal(t, uint64(1), reseeds)
}

// TestRand_SetBulk toggles the fill path without changing output.
func TestRand_SetBulk(t *testing.T) {
	a := newTestRand(t, config.FillModeScalar)
	require.False(t, a.Bulk())
	a.SetBulk(true)
	require.True(t, a.Bulk())

	b := newTestRand(t, config.FillModeScalar)
	x := make([]uint32, 2*BlockUint32)
	y := make([]uint32, 2*BlockUint32)
	require.NoError(t, a.FillUint32(x, len(x)))
	require.NoError(t, b.FillUint32(y, len(y)))
	require.Equal(t, x, y)
}

// TestNew_NilConfig uses the default seed and an adjusted config.
func TestNew_NilConfig(t *testing.T) {
	r := New(nil, nil)
	require.Equal(t, config.DefaultSeed, r.SeedValue())
}

// TestRand_Close1Open2 relates the raw interval to the close-open one.
func TestRand_Close1Open2(t *testing.T) {
	raw := New(nil, nil).Float64Close1Open2()
	require.True(t, raw >= 1 && raw < 2)
	require.Equal(t, raw-1, New(nil, nil).Float64())
}

// TestRand_SeedValue_ConcurrentReaders verifies counters and the seed can be
// read while another goroutine reseeds.
func TestRand_SeedValue_ConcurrentReaders(t *testing.T) {
	r := New(nil, nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = r.SeedValue()
			_, _, _, _, _ = r.Metrics()
		}
	}()
	for i := uint32(0); i < 20; i++ {
		r.Seed(i)
	}
	<-done
	require.Equal(t, uint32(19), r.SeedValue())
	_, _, _, _, reseeds := r.Metrics()
	require.Equal(t, uint64(20), reseeds)
}
