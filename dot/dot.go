// Package dot implements the float32 dot product used by neurons, with a
// scalar reference and swappable vectorized strategies.
package dot

import "errors"
import "fmt"

// Strategy computes the dot product of x with the first len(x) elements of y.
type Strategy func(x, y []float32) float32

// Dot is the active strategy, chosen at init time for the running CPU.
var Dot Strategy = Scalar

var parallelism = 1

// Parallelism reports the widest chunk (in lanes) the active strategy
// processes at once. Can't return 0.
func Parallelism() int {
	return parallelism
}

// Use replaces the active strategy. lanes is the chunk width reported by
// Parallelism afterwards.
func Use(s Strategy, lanes int) {
	if s == nil {
		s = Scalar
	}
	if lanes <= 0 {
		lanes = 1
	}
	Dot = s
	parallelism = lanes
}

// Scalar is the reference implementation: a naive accumulation loop over the
// overlap region. y must be at least as long as x.
func Scalar(x, y []float32) (sum float32) {
	y = y[:len(x)]
	for i, v := range x {
		sum += v * y[i]
	}
	return
}

// ErrStrategy is returned by ByName for an unknown strategy name.
var ErrStrategy = errors.New("unknown dot strategy")

// ByName returns a named strategy and its lane width: "scalar", "chunked"
// or "blas". The empty name keeps the strategy chosen at init.
func ByName(name string) (Strategy, int, error) {
	switch name {
	case "":
		return Dot, parallelism, nil
	case "scalar":
		return Scalar, 1, nil
	case "chunked":
		return Chunked, 16, nil
	case "blas":
		return Blas, 1, nil
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrStrategy, name)
}
