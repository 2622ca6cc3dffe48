package sfmt

import "sync/atomic"

// w128 is one state word as four 32-bit lanes, lane 0 first.
type w128 [4]uint32

// Gen32 produces the 32-bit SFMT19937 stream.
// A Gen32 is not safe for concurrent use.
type Gen32 struct {
	state     [N]w128
	idx       int
	bulk      bool
	generated atomic.Uint64
}

// New32 returns a generator seeded with seed. When bulk is true, Fill writes
// whole blocks straight into the destination instead of going word by word.
func New32(seed uint32, bulk bool) *Gen32 {
	g := &Gen32{bulk: bulk}
	g.Seed(seed)
	return g
}

// Seed resets the state. The next fetch regenerates the first block.
func (g *Gen32) Seed(seed uint32) {
	lanes := initLanes(seed)
	for i := range g.state {
		g.state[i] = w128{lanes[4*i], lanes[4*i+1], lanes[4*i+2], lanes[4*i+3]}
	}
	g.idx = N32
}

func (g *Gen32) Bulk() bool { return g.bulk }
func (g *Gen32) SetBulk(enabled bool) { g.bulk = enabled }

// Generated returns the number of words produced by the recurrence so far.
func (g *Gen32) Generated() uint64 { return g.generated.Load() }

// Uint32 returns the next word of the stream.
func (g *Gen32) Uint32() uint32 {
	if g.idx >= N32 {
		g.genRandAll()
		g.idx = 0
	}
	v := g.state[g.idx>>2][g.idx&3]
	g.idx++
	return v
}

// Fill writes the next len(dst) words of the stream into dst.
// The output is identical to len(dst) calls of Uint32.
func (g *Gen32) Fill(dst []uint32) {
	n := 0
	for n < len(dst) && g.idx < N32 {
		dst[n] = g.state[g.idx>>2][g.idx&3]
		g.idx++
		n++
	}
	if g.bulk {
		if rest := (len(dst) - n) &^ 3; rest >= N32 {
			g.genRandArray(dst[n : n+rest])
			n += rest
		}
	}
	for ; n < len(dst); n++ {
		dst[n] = g.Uint32()
	}
}

func (g *Gen32) genRandAll() {
	r1, r2 := g.state[N-2], g.state[N-1]
	i := 0
	for ; i < N-pos1; i++ {
		w := recursion(g.state[i], g.state[i+pos1], r1, r2)
		g.state[i] = w
		r1, r2 = r2, w
	}
	for ; i < N; i++ {
		w := recursion(g.state[i], g.state[i+pos1-N], r1, r2)
		g.state[i] = w
		r1, r2 = r2, w
	}
	g.generated.Add(N32)
}

// genRandArray runs the recurrence directly over dst, which must hold a
// multiple of four words and at least N32 of them. The last N words written
// become the new state, so the stream continues seamlessly afterwards.
func (g *Gen32) genRandArray(dst []uint32) {
	arr := words32(dst)
	size := len(dst) / 4

	r1, r2 := g.state[N-2], g.state[N-1]
	i := 0
	for ; i < N-pos1; i++ {
		w := recursion(g.state[i], g.state[i+pos1], r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	for ; i < N; i++ {
		w := recursion(g.state[i], arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	for ; i < size-N; i++ {
		w := recursion(arr.at(i-N), arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
	}
	j := 0
	for ; j < 2*N-size; j++ {
		g.state[j] = arr.at(j + size - N)
	}
	for ; i < size; i, j = i+1, j+1 {
		w := recursion(arr.at(i-N), arr.at(i+pos1-N), r1, r2)
		arr.set(i, w)
		r1, r2 = r2, w
		g.state[j] = w
	}

	g.idx = N32
	g.generated.Add(uint64(len(dst)))
}

// recursion computes one step of the SFMT recurrence from a = w[i],
// b = w[i+pos1], c = w[i-2] and d = w[i-1].
func recursion(a, b, c, d w128) (r w128) {
	al := uint64(a[1])<<32 | uint64(a[0])
	ah := uint64(a[3])<<32 | uint64(a[2])
	xl := al << (sl2 * 8)
	xh := ah<<(sl2*8) | al>>(64-sl2*8)

	cl := uint64(c[1])<<32 | uint64(c[0])
	ch := uint64(c[3])<<32 | uint64(c[2])
	yl := cl>>(sr2*8) | ch<<(64-sr2*8)
	yh := ch >> (sr2 * 8)

	r[0] = a[0] ^ uint32(xl) ^ ((b[0] >> sr1) & msk1) ^ uint32(yl) ^ (d[0] << sl1)
	r[1] = a[1] ^ uint32(xl>>32) ^ ((b[1] >> sr1) & msk2) ^ uint32(yl>>32) ^ (d[1] << sl1)
	r[2] = a[2] ^ uint32(xh) ^ ((b[2] >> sr1) & msk3) ^ uint32(yh) ^ (d[2] << sl1)
	r[3] = a[3] ^ uint32(xh>>32) ^ ((b[3] >> sr1) & msk4) ^ uint32(yh>>32) ^ (d[3] << sl1)
	return r
}

// words32 views a caller buffer as consecutive 128-bit words.
type words32 []uint32

func (s words32) at(i int) w128 {
	return w128{s[4*i], s[4*i+1], s[4*i+2], s[4*i+3]}
}

func (s words32) set(i int, w w128) {
	copy(s[4*i:4*i+4], w[:])
}
