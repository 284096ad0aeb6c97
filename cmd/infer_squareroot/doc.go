// Package main provides a demo program for running inference with a trained square root
// approximation network. It prints sample outputs and the mean error over the dataset.
package main
