package sampler

import (
	"fmt"
	"math"
)

// Uint32 returns a uniform value in [lo, hi].
func (s *Sampler) Uint32(lo, hi uint32) (uint32, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidArgument, lo, hi)
	}
	return lo + s.span32(hi-lo), nil
}

// Int32 returns a uniform value in [lo, hi].
func (s *Sampler) Int32(lo, hi int32) (int32, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidArgument, lo, hi)
	}
	return int32(uint32(lo) + s.span32(uint32(hi)-uint32(lo))), nil
}

// Uint64 returns a uniform value in [lo, hi].
func (s *Sampler) Uint64(lo, hi uint64) (uint64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidArgument, lo, hi)
	}
	return lo + s.span64(hi-lo), nil
}

// Int64 returns a uniform value in [lo, hi].
func (s *Sampler) Int64(lo, hi int64) (int64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidArgument, lo, hi)
	}
	return int64(uint64(lo) + s.span64(uint64(hi)-uint64(lo))), nil
}

// span32 returns a uniform value in [0, span]. The lowest 2^32 mod (span+1)
// raw values are redrawn, which leaves a multiple of span+1 accepted values
// and makes the final modulo exact.
func (s *Sampler) span32(span uint32) uint32 {
	if span == math.MaxUint32 {
		return s.src.Uint32()
	}
	n := span + 1
	threshold := -n % n
	for {
		v := s.src.Uint32()
		if v >= threshold {
			return v % n
		}
		s.rejected.Add(1)
	}
}

func (s *Sampler) span64(span uint64) uint64 {
	if span == math.MaxUint64 {
		return s.src.Uint64()
	}
	n := span + 1
	threshold := -n % n
	for {
		v := s.src.Uint64()
		if v >= threshold {
			return v % n
		}
		s.rejected.Add(1)
	}
}

// Shuffle permutes n elements with Fisher-Yates, calling swap for each
// exchange.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return fmt.Errorf("%w: negative shuffle length %d", ErrInvalidArgument, n)
	}
	for i := n - 1; i > 0; i-- {
		j := int(s.span64(uint64(i)))
		swap(i, j)
	}
	return nil
}

// Permutation returns a random permutation of [0, n).
func (s *Sampler) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative permutation length %d", ErrInvalidArgument, n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	_ = s.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm, nil
}
