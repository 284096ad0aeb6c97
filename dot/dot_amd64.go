//go:build !noasm && amd64

package dot

import "github.com/klauspost/cpuid/v2"

func init() {
	// Wide vector units make the chunked kernel worth it
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		Use(Chunked, 16)
	case cpuid.CPU.Supports(cpuid.AVX2):
		Use(Chunked, 8)
	default:
		Use(Scalar, 1)
	}
}
