package sfmt

// Parameters of the SFMT19937 recurrence.
const (
	MEXP = 19937

	// N is the state size in 128-bit words.
	N = MEXP/128 + 1
	// N32 is the block size in 32-bit words (one regeneration of Gen32).
	N32 = N * 4
	// N64 is the block size in 64-bit words (one regeneration of Gen64).
	N64 = N * 2

	pos1 = 122
	sl1  = 18
	sl2  = 1 // bytes
	sr1  = 11
	sr2  = 1 // bytes

	msk1 = 0xdfffffef
	msk2 = 0xddfecb7f
	msk3 = 0xbffaffff
	msk4 = 0xbffffff6

	parity1 = 0x00000001
	parity2 = 0x00000000
	parity3 = 0x00000000
	parity4 = 0x13c9e684
)

var parity = [4]uint32{parity1, parity2, parity3, parity4}

// Packed forms of the masks for the 64-bit lane representation.
// Each 64-bit half carries two 32-bit lanes, low lane in the low bits.
const (
	mskLo = uint64(msk2)<<32 | msk1
	mskHi = uint64(msk4)<<32 | msk3

	// bits that survive a per-lane >> sr1 / << sl1
	laneShrMask = uint64(0xffffffff>>sr1)<<32 | 0xffffffff>>sr1
	laneShlMask = uint64(0xffffffff<<sl1&0xffffffff)<<32 | 0xffffffff<<sl1&0xffffffff
)
