// Package main provides a demo program for training a square root approximation network.
// This demonstrates how a small float network can learn a mathematical function from
// synthetic data, trained on CPU by hill climbing without backpropagation.
package main
