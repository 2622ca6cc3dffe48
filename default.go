package ashrand

// _default is the process-wide engine behind the package-level functions.
// It is built once with config.DefaultSeed, so programs that never seed it
// are still reproducible. Reseed is the only way to change its stream.
//
// It is shared on purpose and it is not synchronized: concurrent callers
// must serialize access themselves or use private instances from New.
var _default = New(nil, nil)

// Default returns the process-wide engine.
func Default() *Rand { return _default }

// Reseed resets the process-wide engine.
func Reseed(seed uint32) { _default.Seed(seed) }

func Uint32() uint32 { return _default.Uint32() }

func Uint64() uint64 { return _default.Uint64() }

func Float64() float64 { return _default.Float64() }

func Float64OpenClosed() float64 { return _default.Float64OpenClosed() }

func Float64Open() float64 { return _default.Float64Open() }

func Float64Close1Open2() float64 { return _default.Float64Close1Open2() }

func FillUint32(dst []uint32, n int) error { return _default.FillUint32(dst, n) }

func FillUint64(dst []uint64, n int) error { return _default.FillUint64(dst, n) }

func FillUniform(dst []float64, n int) error { return _default.FillUniform(dst, n) }

func FillUniformOpenClosed(dst []float64, n int) error {
	return _default.FillUniformOpenClosed(dst, n)
}

func FillFloat64(dst []float64, n int, iv Interval) error { return _default.FillFloat64(dst, n, iv) }

func Normal(mean, stddev float64) float64 { return _default.Normal(mean, stddev) }

func StdNormal() float64 { return _default.StdNormal() }

func NormalPolar(mean, stddev float64) float64 { return _default.NormalPolar(mean, stddev) }

func SampleInt32(lo, hi int32) (int32, error) { return _default.SampleInt32(lo, hi) }

func SampleUint32(lo, hi uint32) (uint32, error) { return _default.SampleUint32(lo, hi) }

func SampleInt64(lo, hi int64) (int64, error) { return _default.SampleInt64(lo, hi) }

func SampleUint64(lo, hi uint64) (uint64, error) { return _default.SampleUint64(lo, hi) }

func Shuffle(n int, swap func(i, j int)) error { return _default.Shuffle(n, swap) }

func Permutation(n int) ([]int, error) { return _default.Permutation(n) }
