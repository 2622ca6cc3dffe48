package dsfmt

import (
	"math"
	"sync/atomic"
)

type w128 [2]uint64

// Gen produces doubles with the dSFMT19937 recurrence. Every state word is a
// double in [1,2); the lung carries the extra feedback word.
// A Gen is not safe for concurrent use.
type Gen struct {
	state     [N]w128
	lung      w128
	idx       int
	bulk      bool
	generated atomic.Uint64
}

func New(seed uint32, bulk bool) *Gen {
	g := &Gen{bulk: bulk}
	g.Seed(seed)
	return g
}

// Seed resets the state. Seeding runs the same linear initialiser as the
// integer generators but over a larger state with a different recurrence,
// so the real and integer streams do not alias.
func (g *Gen) Seed(seed uint32) {
	var lanes [(N + 1) * 4]uint32
	lanes[0] = seed
	for i := 1; i < len(lanes); i++ {
		prev := lanes[i-1]
		lanes[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	word := func(k int) uint64 { return uint64(lanes[2*k+1])<<32 | uint64(lanes[2*k]) }

	for i := range g.state {
		g.state[i] = w128{
			word(2*i)&lowMask | highConst,
			word(2*i+1)&lowMask | highConst,
		}
	}
	g.lung = w128{word(2 * N), word(2*N + 1)}
	g.certifyPeriod()
	g.idx = N64
}

func (g *Gen) certifyPeriod() {
	inner := (g.lung[0]^fix1)&pcv1 ^ (g.lung[1]^fix2)&pcv2
	for i := 32; i > 0; i >>= 1 {
		inner ^= inner >> i
	}
	if inner&1 == 1 {
		return
	}
	g.lung[1] ^= 1
}

func (g *Gen) Bulk() bool { return g.bulk }

func (g *Gen) SetBulk(enabled bool) { g.bulk = enabled }

// Generated returns the number of doubles produced by the recurrence so far.
func (g *Gen) Generated() uint64 { return g.generated.Load() }

// Float64 returns the next double mapped onto iv.
func (g *Gen) Float64(iv Interval) float64 {
	return iv.convert(g.next())
}

// Fill writes the next len(dst) doubles, mapped onto iv, into dst.
// The output is identical to len(dst) calls of Float64.
func (g *Gen) Fill(dst []float64, iv Interval) {
	n := 0
	for n < len(dst) && g.idx < N64 {
		dst[n] = iv.convert(g.state[g.idx>>1][g.idx&1])
		g.idx++
		n++
	}
	if g.bulk {
		if rest := (len(dst) - n) &^ 1; rest >= N64 {
			g.genRandArray(dst[n : n+rest])
			if iv != Close1Open2 {
				for k := n; k < n+rest; k++ {
					dst[k] = iv.convert(math.Float64bits(dst[k]))
				}
			}
			n += rest
		}
	}
	for ; n < len(dst); n++ {
		dst[n] = g.Float64(iv)
	}
}

func (g *Gen) next() uint64 {
	if g.idx >= N64 {
		g.genRandAll()
		g.idx = 0
	}
	v := g.state[g.idx>>1][g.idx&1]
	g.idx++
	return v
}

func (g *Gen) genRandAll() {
	lung := g.lung
	i := 0
	for ; i < N-pos1; i++ {
		g.state[i] = recursion(g.state[i], g.state[i+pos1], &lung)
	}
	for ; i < N; i++ {
		g.state[i] = recursion(g.state[i], g.state[i+pos1-N], &lung)
	}
	g.lung = lung
	g.generated.Add(N64)
}

// genRandArray runs the recurrence directly over dst, leaving raw [1,2)
// values in it. dst must hold an even number of doubles, at least N64.
func (g *Gen) genRandArray(dst []float64) {
	arr := doubles(dst)
	size := len(dst) / 2
	lung := g.lung

	i := 0
	for ; i < N-pos1; i++ {
		arr.set(i, recursion(g.state[i], g.state[i+pos1], &lung))
	}
	for ; i < N; i++ {
		arr.set(i, recursion(g.state[i], arr.at(i+pos1-N), &lung))
	}
	for ; i < size-N; i++ {
		arr.set(i, recursion(arr.at(i-N), arr.at(i+pos1-N), &lung))
	}
	j := 0
	for ; j < 2*N-size; j++ {
		g.state[j] = arr.at(j + size - N)
	}
	for ; i < size; i, j = i+1, j+1 {
		w := recursion(arr.at(i-N), arr.at(i+pos1-N), &lung)
		arr.set(i, w)
		g.state[j] = w
	}

	g.lung = lung
	g.idx = N64
	g.generated.Add(uint64(len(dst)))
}

// recursion computes one step from a = w[i], b = w[i+pos1] and the lung,
// which it advances in place.
func recursion(a, b w128, lung *w128) (r w128) {
	t0, t1 := a[0], a[1]
	l0, l1 := lung[0], lung[1]
	lung[0] = (t0 << sl1) ^ (l1 >> 32) ^ (l1 << 32) ^ b[0]
	lung[1] = (t1 << sl1) ^ (l0 >> 32) ^ (l0 << 32) ^ b[1]
	r[0] = (lung[0] >> sr) ^ (lung[0] & msk1) ^ t0
	r[1] = (lung[1] >> sr) ^ (lung[1] & msk2) ^ t1
	return r
}

// doubles views a caller buffer as consecutive 128-bit words. Every word the
// recurrence writes is a valid double in [1,2), so the bits round-trip.
type doubles []float64

func (s doubles) at(i int) w128 {
	return w128{math.Float64bits(s[2*i]), math.Float64bits(s[2*i+1])}
}

func (s doubles) set(i int, w w128) {
	s[2*i], s[2*i+1] = math.Float64frombits(w[0]), math.Float64frombits(w[1])
}
