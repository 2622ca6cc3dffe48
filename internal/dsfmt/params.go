package dsfmt

// Parameters of the dSFMT19937 recurrence.
const (
	MEXP = 19937

	// N is the state size in 128-bit words, excluding the lung.
	N = (MEXP-128)/104 + 1
	// N64 is the block size in doubles.
	N64 = N * 2

	pos1 = 117
	sl1  = 19
	sr   = 12

	msk1 = 0x000ffafffffffb3f
	msk2 = 0x000ffdfffc90fffd
	fix1 = 0x90014964b32f4329
	fix2 = 0x3b8d12ac548a7c7a
	pcv1 = 0x3d84e1ac0dc82880
	pcv2 = 0x0000000000000001

	lowMask   = 0x000fffffffffffff
	highConst = 0x3ff0000000000000
)
