package dsfmt

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

const testSeed = 12345

// TestGen_Golden compares stream prefixes bit for bit with the fixtures.
func TestGen_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for name, iv := range map[string]Interval{
		"close_open_seed_12345": CloseOpen,
		"open_close_seed_12345": OpenClose,
	} {
		gen := New(testSeed, false)
		var buf bytes.Buffer
		for i := 0; i < 16; i++ {
			fmt.Fprintf(&buf, "%016x\n", math.Float64bits(gen.Float64(iv)))
		}
		g.Assert(t, name, buf.Bytes())
	}
}

// TestGen_FillOpenClose_BlockBoundary checks the first double of the second
// block for both the scalar-tail and the bulk length.
func TestGen_FillOpenClose_BlockBoundary(t *testing.T) {
	for _, size := range []int{2*N64 + 1, 2 * N64} {
		for _, bulk := range []bool{false, true} {
			dst := make([]float64, size)
			New(testSeed, bulk).Fill(dst, OpenClose)
			require.Equal(t, 0.25551924513287405, dst[N64], "size=%d bulk=%v", size, bulk)
			require.Equal(t, 0.6965292016457845, dst[0])
		}
	}
}

// TestGen_Fill_MatchesScalar verifies the fill paths for every interval.
func TestGen_Fill_MatchesScalar(t *testing.T) {
	lengths := []int{0, 1, 2, N64 - 1, N64, N64 + 1, 2 * N64, 3*N64 + 1}
	offsets := []int{0, 3, N64}

	for _, iv := range []Interval{CloseOpen, OpenClose, OpenOpen, Close1Open2} {
		for _, offset := range offsets {
			for _, length := range lengths {
				ref := New(testSeed, false)
				for i := 0; i < offset; i++ {
					ref.Float64(iv)
				}
				want := make([]float64, length+3)
				for i := range want {
					want[i] = ref.Float64(iv)
				}

				for _, bulk := range []bool{false, true} {
					g := New(testSeed, bulk)
					for i := 0; i < offset; i++ {
						g.Float64(iv)
					}
					got := make([]float64, length)
					g.Fill(got, iv)
					for i := 0; i < 3; i++ {
						got = append(got, g.Float64(iv))
					}
					require.Equal(t, want, got, "iv=%s offset=%d length=%d bulk=%v", iv, offset, length, bulk)
				}
			}
		}
	}
}

// TestGen_Intervals verifies every draw stays inside its interval.
func TestGen_Intervals(t *testing.T) {
	g := New(testSeed, true)
	dst := make([]float64, 4*N64)

	g.Fill(dst, CloseOpen)
	for _, v := range dst {
		require.True(t, v >= 0 && v < 1, "close-open %v", v)
	}
	g.Fill(dst, OpenClose)
	for _, v := range dst {
		require.True(t, v > 0 && v <= 1, "open-close %v", v)
	}
	g.Fill(dst, OpenOpen)
	for _, v := range dst {
		require.True(t, v > 0 && v < 1, "open-open %v", v)
	}
	g.Fill(dst, Close1Open2)
	for _, v := range dst {
		require.True(t, v >= 1 && v < 2, "close1-open2 %v", v)
	}
}

// TestGen_IntervalsShareStream verifies the intervals are views of one stream.
func TestGen_IntervalsShareStream(t *testing.T) {
	a := New(testSeed, false)
	b := New(testSeed, false)
	for i := 0; i < N64+10; i++ {
		raw := a.Float64(Close1Open2)
		require.Equal(t, raw-1.0, b.Float64(CloseOpen))
	}
}

// TestGen_Seed_Resets verifies reseeding replays the stream.
func TestGen_Seed_Resets(t *testing.T) {
	g := New(testSeed, true)
	first := make([]float64, 2*N64)
	g.Fill(first, CloseOpen)

	g.Seed(testSeed)
	second := make([]float64, 2*N64)
	g.Fill(second, CloseOpen)
	require.Equal(t, first, second)
	require.Equal(t, uint64(4*N64), g.Generated())
}

func TestInterval_String(t *testing.T) {
	require.Equal(t, "[0,1)", CloseOpen.String())
	require.Equal(t, "(0,1]", OpenClose.String())
	require.Equal(t, "(0,1)", OpenOpen.String())
	require.Equal(t, "[1,2)", Close1Open2.String())
	require.Equal(t, "unknown", Interval(42).String())
}

func BenchmarkGen_Fill(b *testing.B) {
	for _, bulk := range []bool{false, true} {
		b.Run(fmt.Sprintf("bulk=%v", bulk), func(b *testing.B) {
			g := New(testSeed, bulk)
			dst := make([]float64, 16*N64)
			b.SetBytes(int64(8 * len(dst)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Fill(dst, CloseOpen)
			}
		})
	}
}
