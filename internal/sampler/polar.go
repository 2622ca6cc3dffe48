package sampler

import "math"

// StdNormalPolar returns a standard normal variate using the Marsaglia polar
// method on pairs of uniform doubles. The second variate of each accepted
// pair is discarded, so the result depends only on the draws it consumed.
func (s *Sampler) StdNormalPolar() float64 {
	for {
		u := 2*s.src.Float64() - 1
		v := 2*s.src.Float64() - 1
		r := u*u + v*v
		if r > 0 && r < 1 {
			return u * math.Sqrt(-2*math.Log(r)/r)
		}
	}
}

func (s *Sampler) NormalPolar(mean, stddev float64) float64 {
	return mean + s.StdNormalPolar()*stddev
}
