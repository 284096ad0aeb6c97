// Package squareroot provides a synthetic dataset for learning to compute square roots.
// It demonstrates fitting a smooth nonlinear function with a small network trained
// by random perturbation alone, without backpropagation.
package squareroot
