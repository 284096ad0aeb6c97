// Package neuron implements a single float32 neuron: a weight vector, a bias
// and an activation, plus the random perturbations used by hill climbing.
package neuron

import "errors"
import "fmt"

import "github.com/neurlang/tinynet/dot"

// LearningRate scales every random perturbation of a weight or bias.
const LearningRate = 0.0557

// ErrWeightsLength is returned when replacing weights with a vector of
// different length. The weight length of a neuron never changes.
var ErrWeightsLength = errors.New("weights length mismatch")

// Neuron computes one scalar output from an input vector.
type Neuron struct {
	Weights    []float32  `json:"weights"`
	Bias       float32    `json:"bias"`
	Activation Activation `json:"activation"`
}

// New creates a neuron taking inputs values, with all weights zero.
func New(inputs int, bias float32, a Activation) Neuron {
	return Neuron{
		Weights:    make([]float32, inputs),
		Bias:       bias,
		Activation: a,
	}
}

// NewRandom creates a neuron with weights and bias drawn uniformly from [0,1).
func NewRandom(inputs int, a Activation, r Rand) Neuron {
	n := Neuron{
		Weights:    make([]float32, inputs),
		Activation: a,
	}
	for i := range n.Weights {
		n.Weights[i] = r.Float32()
	}
	n.Bias = r.Float32()
	return n
}

// Len returns the number of inputs the neuron reads.
func (n Neuron) Len() int {
	return len(n.Weights)
}

// Compute returns activate(dot(weights, in) + bias). Only the first Len()
// elements of in are read; in must be at least that long.
func (n Neuron) Compute(in []float32) float32 {
	return n.Activate(dot.Dot(n.Weights, in[:len(n.Weights)]) + n.Bias)
}

// Activate applies the neuron's activation function to x.
func (n Neuron) Activate(x float32) float32 {
	return n.Activation.Apply(x)
}

// Clone returns a deep copy.
func (n Neuron) Clone() Neuron {
	w := make([]float32, len(n.Weights))
	copy(w, n.Weights)
	n.Weights = w
	return n
}

// SetWeights overwrites the weights in place.
func (n *Neuron) SetWeights(w []float32) error {
	if len(w) != len(n.Weights) {
		return fmt.Errorf("%w: got %d, neuron has %d", ErrWeightsLength, len(w), len(n.Weights))
	}
	copy(n.Weights, w)
	return nil
}

// SetBias overwrites the bias.
func (n *Neuron) SetBias(b float32) {
	n.Bias = b
}

// MutateWeight perturbs exactly one weight, picked uniformly at random.
func (n *Neuron) MutateWeight(r Rand) {
	if len(n.Weights) == 0 {
		return
	}
	i := r.IntN(len(n.Weights))
	n.Weights[i] += Change(r)
}

// MutateBias perturbs the bias.
func (n *Neuron) MutateBias(r Rand) {
	n.Bias += Change(r)
}

// Change draws one perturbation: a magnitude uniform on [0,1), a fair random
// sign, scaled by LearningRate.
func Change(r Rand) float32 {
	change := r.Float32() * LearningRate
	if Bool(r, 0.5) {
		change = -change
	}
	return change
}
