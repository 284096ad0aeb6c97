// Package main loads a model written by train_circle and classifies points given
// on the command line, or a few fixed probe points when none are given.
package main
