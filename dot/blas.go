package dot

import "gonum.org/v1/gonum/blas/blas32"

// Blas delegates to the gonum BLAS level 1 sdot kernel.
func Blas(x, y []float32) float32 {
	if len(x) == 0 {
		return 0
	}
	return blas32.Dot(
		blas32.Vector{N: len(x), Data: x, Inc: 1},
		blas32.Vector{N: len(x), Data: y[:len(x)], Inc: 1},
	)
}
