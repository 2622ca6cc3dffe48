// Package sampler turns raw engine output into bounded integers, permutations
// and normal variates.
package sampler

import (
	"errors"
	"sync/atomic"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Source is the raw output a Sampler consumes. Float64 must be uniform on
// [0,1).
type Source interface {
	Uint32() uint32
	Uint64() uint64
	Float64() float64
}

// Sampler is bound to one Source and inherits its concurrency constraints.
type Sampler struct {
	src      Source
	rejected atomic.Uint64
}

func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// Rejected returns how many raw draws the range sampler discarded so far.
func (s *Sampler) Rejected() uint64 {
	return s.rejected.Load()
}
