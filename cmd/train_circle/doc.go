// Package main provides a demo program for training a two-class classifier that
// tells points inside a disk from points outside of it. The network is fitted by
// random perturbation and hill climbing on all CPU cores, without backpropagation.
package main
