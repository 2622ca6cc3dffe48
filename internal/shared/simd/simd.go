package simd

import "github.com/klauspost/cpuid/v2"

// Available reports whether the CPU has 128-bit integer vector units
// (SSE2 on x86, ASIMD on arm64). The generators use it to pick the in-place
// bulk fill path; the output is identical either way.
func Available() bool {
	return cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)
}

// Describe returns the CPU brand and the detected vector features for logs.
func Describe() (brand string, features []string) {
	features = make([]string, 0, 4)
	for _, f := range []cpuid.FeatureID{cpuid.SSE2, cpuid.AVX2, cpuid.AVX512F, cpuid.ASIMD} {
		if cpuid.CPU.Supports(f) {
			features = append(features, f.String())
		}
	}
	return cpuid.CPU.BrandName, features
}
