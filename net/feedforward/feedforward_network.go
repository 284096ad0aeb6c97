// Package feedforward implements a feedforward network type
package feedforward

import "fmt"
import "sync"

import "github.com/neurlang/tinynet/neuron"

// DefaultWeightRatio is the probability that RandomEdit perturbs a weight
// rather than a bias.
const DefaultWeightRatio = 0.95

// Edit is the pending edit: a copy of the neuron replaced by the most recent
// RandomEdit together with its coordinates.
type Edit struct {
	Old   neuron.Neuron `json:"old"`
	Layer int           `json:"layer"`
	Row   int           `json:"row"`
}

// FeedforwardNetwork is the feedforward network. It maps input vectors of a
// fixed length to output vectors of a fixed length through layers of neurons.
// Build it with New followed by AddLayer or AddRandomLayer calls.
type FeedforwardNetwork struct {
	inputs  int
	outputs int
	layers  [][]neuron.Neuron
	longest int

	edit        *Edit
	weightRatio float64

	scratch sync.Pool
}

// New creates an empty network reading inputs values and producing outputs values.
func New(inputs, outputs int) *FeedforwardNetwork {
	if inputs <= 0 || outputs <= 0 {
		panic(fmt.Sprintf("feedforward: invalid arity %d -> %d", inputs, outputs))
	}
	return &FeedforwardNetwork{
		inputs:      inputs,
		outputs:     outputs,
		longest:     inputs,
		weightRatio: DefaultWeightRatio,
	}
}

// AddLayer appends a layer of n neurons with zero weights and zero bias.
func (f *FeedforwardNetwork) AddLayer(n int, a neuron.Activation) *FeedforwardNetwork {
	layer := f.newLayer(n)
	for i := range layer {
		layer[i] = neuron.New(f.lastLayerLen(), 0, a)
	}
	return f.appendLayer(layer)
}

// AddRandomLayer appends a layer of n neurons with weights and bias drawn
// uniformly from [0,1).
func (f *FeedforwardNetwork) AddRandomLayer(n int, a neuron.Activation, r neuron.Rand) *FeedforwardNetwork {
	layer := f.newLayer(n)
	for i := range layer {
		layer[i] = neuron.NewRandom(f.lastLayerLen(), a, r)
	}
	return f.appendLayer(layer)
}

func (f *FeedforwardNetwork) newLayer(n int) []neuron.Neuron {
	if n <= 0 {
		panic(fmt.Sprintf("feedforward: layer of %d neurons", n))
	}
	return make([]neuron.Neuron, n)
}

func (f *FeedforwardNetwork) appendLayer(layer []neuron.Neuron) *FeedforwardNetwork {
	f.layers = append(f.layers, layer)
	if len(layer) > f.longest {
		f.longest = len(layer)
	}
	return f
}

// lastLayerLen is the input length of the next layer to be added.
func (f *FeedforwardNetwork) lastLayerLen() int {
	if len(f.layers) == 0 {
		return f.inputs
	}
	return len(f.layers[len(f.layers)-1])
}

func (f *FeedforwardNetwork) lastLayer(what string) []neuron.Neuron {
	if len(f.layers) == 0 {
		panic("feedforward: tried to add " + what + " before layers")
	}
	return f.layers[len(f.layers)-1]
}

// WithWeights overwrites the weights of the most recently added layer, one
// vector per neuron. It panics before any layer exists and on any length
// mismatch.
func (f *FeedforwardNetwork) WithWeights(weights [][]float32) *FeedforwardNetwork {
	layer := f.lastLayer("weights")
	if len(weights) != len(layer) {
		panic(fmt.Sprintf("feedforward: %d weight vectors for a layer of %d neurons", len(weights), len(layer)))
	}
	for i := range layer {
		if err := layer[i].SetWeights(weights[i]); err != nil {
			panic(fmt.Sprintf("feedforward: neuron %d: %s", i, err.Error()))
		}
	}
	return f
}

// WithBias overwrites the biases of the most recently added layer. It panics
// before any layer exists and on a length mismatch.
func (f *FeedforwardNetwork) WithBias(biases []float32) *FeedforwardNetwork {
	layer := f.lastLayer("biases")
	if len(biases) != len(layer) {
		panic(fmt.Sprintf("feedforward: %d biases for a layer of %d neurons", len(biases), len(layer)))
	}
	for i := range layer {
		layer[i].SetBias(biases[i])
	}
	return f
}

// Inputs returns the input arity.
func (f *FeedforwardNetwork) Inputs() int {
	return f.inputs
}

// Outputs returns the output arity.
func (f *FeedforwardNetwork) Outputs() int {
	return f.outputs
}

// LenLayers returns the number of layers.
func (f *FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

// LayerLen returns the number of neurons in layer l.
func (f *FeedforwardNetwork) LayerLen(l int) int {
	return len(f.layers[l])
}

// Len returns the number of neurons in the network.
func (f *FeedforwardNetwork) Len() (o int) {
	for _, v := range f.layers {
		o += len(v)
	}
	return
}

// Longest returns the length of the scratch buffers: the widest layer, or the
// input arity when that is wider.
func (f *FeedforwardNetwork) Longest() int {
	return f.longest
}

// Neuron returns a copy of the neuron at row r of layer l.
func (f *FeedforwardNetwork) Neuron(l, r int) neuron.Neuron {
	return f.layers[l][r].Clone()
}

// SetNeuron replaces the neuron at row r of layer l. The replacement must read
// the same number of inputs.
func (f *FeedforwardNetwork) SetNeuron(l, r int, n neuron.Neuron) error {
	old := &f.layers[l][r]
	if n.Len() != old.Len() {
		return fmt.Errorf("%w: layer %d row %d takes %d inputs, got %d", neuron.ErrWeightsLength, l, r, old.Len(), n.Len())
	}
	*old = n.Clone()
	return nil
}

// SetWeightRatio sets the probability that RandomEdit perturbs a weight
// rather than a bias.
func (f *FeedforwardNetwork) SetWeightRatio(p float64) *FeedforwardNetwork {
	f.weightRatio = p
	return f
}

// WeightRatio returns the probability that RandomEdit perturbs a weight.
func (f *FeedforwardNetwork) WeightRatio() float64 {
	return f.weightRatio
}

// Clone returns a deep copy without the pending edit.
func (f *FeedforwardNetwork) Clone() *FeedforwardNetwork {
	c := &FeedforwardNetwork{
		inputs:      f.inputs,
		outputs:     f.outputs,
		longest:     f.longest,
		weightRatio: f.weightRatio,
		layers:      make([][]neuron.Neuron, len(f.layers)),
	}
	for l, layer := range f.layers {
		c.layers[l] = make([]neuron.Neuron, len(layer))
		for r := range layer {
			c.layers[l][r] = layer[r].Clone()
		}
	}
	return c
}
