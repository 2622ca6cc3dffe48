package sfmt

// initLanes fills the state with the Knuth-style linear initialiser and
// certifies the period. The result is shared by Gen32 and Gen64 so that both
// start from the same 128-bit words.
func initLanes(seed uint32) (lanes [N32]uint32) {
	lanes[0] = seed
	for i := 1; i < N32; i++ {
		prev := lanes[i-1]
		lanes[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	certifyPeriod(&lanes)
	return lanes
}

// certifyPeriod flips one parity bit when the initial state would fall
// outside the 2^19937-1 cycle.
func certifyPeriod(lanes *[N32]uint32) {
	var inner uint32
	for i := 0; i < 4; i++ {
		inner ^= lanes[i] & parity[i]
	}
	for i := 16; i > 0; i >>= 1 {
		inner ^= inner >> i
	}
	if inner&1 == 1 {
		return
	}
	for i := 0; i < 4; i++ {
		work := uint32(1)
		for j := 0; j < 32; j++ {
			if work&parity[i] != 0 {
				lanes[i] ^= work
				return
			}
			work <<= 1
		}
	}
}
