// Package main provides the smallest possible training demo: one linear neuron
// learning y = 3x by random perturbation.
package main
