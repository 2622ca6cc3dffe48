package sampler

import "math"

// Ziggurat with 128 boxes of equal area zigA; box 0 carries the tail beyond
// zigR.
const (
	zigBlocks    = 128
	zigR         = 3.442619855899
	zigA         = 9.91256303526217e-3
	uint32ToUnit = 1.0 / math.MaxUint32
)

type zigguratTables struct {
	x      [zigBlocks + 1]float64 // right edge of each box
	y      [zigBlocks]float64     // top edge of each box
	xComp  [zigBlocks]uint32      // fraction of each box inside the box below, scaled to 2^32-1
	aDivY0 float64
}

var zig = newZigguratTables()

func newZigguratTables() *zigguratTables {
	t := &zigguratTables{}
	t.x[0] = zigR
	t.y[0] = gaussianPdfDenorm(zigR)
	t.x[1] = zigR
	t.y[1] = t.y[0] + zigA/t.x[1]
	for i := 2; i < zigBlocks; i++ {
		t.x[i] = gaussianPdfDenormInv(t.y[i-1])
		t.y[i] = t.y[i-1] + zigA/t.x[i]
	}
	t.x[zigBlocks] = 0

	t.aDivY0 = zigA / t.y[0]
	t.xComp[0] = uint32(((zigR * t.y[0]) / zigA) * math.MaxUint32)
	for i := 1; i < zigBlocks-1; i++ {
		t.xComp[i] = uint32((t.x[i+1] / t.x[i]) * math.MaxUint32)
	}
	t.xComp[zigBlocks-1] = 0
	return t
}

// StdNormal returns a standard normal variate. One 32-bit draw picks the box
// (low 7 bits) and the sign (bit 7), a second one the x coordinate; the
// wedge and tail tests draw uniform doubles.
func (s *Sampler) StdNormal() float64 {
	for {
		u := uint8(s.src.Uint32())
		i := int(u & 0x7f)
		sign := -1.0
		if u&0x80 != 0 {
			sign = 1.0
		}

		u2 := s.src.Uint32()

		if i == 0 {
			if u2 < zig.xComp[0] {
				return float64(u2) * uint32ToUnit * zig.aDivY0 * sign
			}
			return s.normalTail() * sign
		}

		if u2 < zig.xComp[i] {
			return float64(u2) * uint32ToUnit * zig.x[i] * sign
		}

		x := float64(u2) * uint32ToUnit * zig.x[i]
		if zig.y[i-1]+(zig.y[i]-zig.y[i-1])*s.src.Float64() < gaussianPdfDenorm(x) {
			return x * sign
		}
	}
}

// Normal returns a normal variate with the given mean and standard deviation.
func (s *Sampler) Normal(mean, stddev float64) float64 {
	return mean + s.StdNormal()*stddev
}

// normalTail samples |x| > zigR (Marsaglia 1964).
func (s *Sampler) normalTail() float64 {
	for {
		x := -math.Log(s.src.Float64()) / zigR
		y := -math.Log(s.src.Float64())
		if y+y >= x*x {
			return zigR + x
		}
	}
}

func gaussianPdfDenorm(x float64) float64 {
	return math.Exp(-(x * x / 2))
}

func gaussianPdfDenormInv(y float64) float64 {
	return math.Sqrt(-2 * math.Log(y))
}
