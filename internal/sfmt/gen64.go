package sfmt

import "sync/atomic"

// dw128 is one state word as two 64-bit halves, each packing two 32-bit
// lanes (low lane in the low bits).
type dw128 [2]uint64

// Gen64 produces the 64-bit SFMT19937 stream. It runs the same recurrence as
// Gen32 on the packed representation, so its k-th word equals the 2k-th and
// (2k+1)-th words of a Gen32 with the same seed, low word first.
// A Gen64 is not safe for concurrent use.
type Gen64 struct {
	state     [N]dw128
	idx       int
	bulk      bool
	generated atomic.Uint64
}

func New64(seed uint32, bulk bool) *Gen64 {
	g := &Gen64{bulk: bulk}
	g.Seed(seed)
	return g
}

func (g *Gen64) Seed(seed uint32) {
	lanes := initLanes(seed)
	for i := range g.state {
		g.state[i] = dw128{
			uint64(lanes[4*i+1])<<32 | uint64(lanes[4*i]),
			uint64(lanes[4*i+3])<<32 | uint64(lanes[4*i+2]),
		}
	}
	g.idx = N64
}

func (g *Gen64) Bulk() bool { return g.bulk }
func (g *Gen64) SetBulk(enabled bool) { g.bulk = enabled }

// Generated returns the number of words produced by the recurrence so far.
func (g *Gen64) Generated() uint64 { return g.generated.Load() }

func (g *Gen64) Uint64() uint64 {
	if g.idx >= N64 {
		g.genRandAll()
		g.idx = 0
	}
	v := g.state[g.idx>>1][g.idx&1]
	g.idx++
	return v
}

// Fill writes the next len(dst) words of the stream into dst.
func (g *Gen64) Fill(dst []uint64) {
	n := 0
	for n < len(dst) && g.idx < N64 {
		dst[n] = g.state[g.idx>>1][g.idx&1]
		g.idx++
		n++
	}
	if g.bulk {
		if rest := (len(dst) - n) &^ 1; rest >= N64 {
			g.genRandArray(dst[n : n+rest])
			n += rest
		}
	}
	for ; n < len(dst); n++ {
		dst[n] = g.Uint64()
	}
}

func (g *Gen64) genRandAll() {
	r1, r2 := g.state[N-2], g.state[N-1]
	i := 0
	for ; i < N-pos1; i++ {
		w := recursion64(g.state[i], g.state[i+pos1], r1, r2)
		g.state[i] = w
		r1, r2 = r2, w
	}
	for ; i < N; i++ {
		w := recursion64(g.state[i], g.state[i+pos1-N], r1, r2)
		g.state[i] = w
		r1, r2 = r2, w
	}
	g.generated.Add(N64)
}

// genRandArray is the 64-bit twin of Gen32.genRandArray; dst must hold an
// even number of words and at least N64 of them.
func (g *Gen64) genRandArray(dst []uint64) {
	arr := words64(dst)
	size := len(dst) / 2

	r1, r2 := g.state[N-2], g.state[N-1]
	i := 0
	for ; i < N-pos1; i++ {
		w := recursion64(g.state[i], g.state[i+pos1], r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	for ; i < N; i++ {
		w := recursion64(g.state[i], arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	for ; i < size-N; i++ {
		w := recursion64(arr.at(i-N), arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	j := 0
	for ; j < 2*N-size; j++ {
		g.state[j] = arr.at(j + size - N)
	}
	for ; i < size; i, j = i+1, j+1 {
		w := recursion64(arr.at(i-N), arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
		g.state[j] = w
	}

	g.idx = N64
	g.generated.Add(uint64(len(dst)))
}

// recursion64 is recursion on packed halves: the 128-bit byte shifts cross
// the halves, the per-lane bit shifts are masked so no bit leaks between
// neighbouring 32-bit lanes.
func recursion64(a, b, c, d dw128) (r dw128) {
	xl := a[0] << (sl2 * 8)
	xh := a[1]<<(sl2*8) | a[0]>>(64-sl2*8)
	yl := c[0]>>(sr2*8) | c[1]<<(64-sr2*8)
	yh := c[1] >> (sr2 * 8)

	r[0] = a[0] ^ xl ^ ((b[0] >> sr1) & laneShrMask & mskLo) ^ yl ^ ((d[0] << sl1) & laneShlMask)
	r[1] = a[1] ^ xh ^ ((b[1] >> sr1) & laneShrMask & mskHi) ^ yh ^ ((d[1] << sl1) & laneShlMask)
	return r
}

type words64 []uint64

func (s words64) at(i int) dw128 {
	return dw128{s[2*i], s[2*i+1]}
}

func (s words64) set(i int, w dw128) {
	s[2*i], s[2*i+1] = w[0], w[1]
}
