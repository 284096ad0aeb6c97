package feedforward

import "fmt"
import "runtime"

import "github.com/neurlang/tinynet/parallel"

// buffers is a ping-pong pair of scratch vectors.
type buffers struct {
	a, b []float32
}

func (f *FeedforwardNetwork) getBuffers() *buffers {
	if s, ok := f.scratch.Get().(*buffers); ok && len(s.a) >= f.longest {
		return s
	}
	return &buffers{
		a: make([]float32, f.longest),
		b: make([]float32, f.longest),
	}
}

// Run infers the network output for input. It does not modify the network and
// is safe to call from many goroutines at once. Run panics on a network
// without layers or on an input of the wrong length.
func (f *FeedforwardNetwork) Run(input []float32) []float32 {
	out := make([]float32, f.outputs)
	f.RunInto(out, input)
	return out
}

// RunInto is Run writing the output into dst, which must hold Outputs() values.
func (f *FeedforwardNetwork) RunInto(dst, input []float32) {
	if len(f.layers) == 0 {
		panic("feedforward: run on a network without layers")
	}
	if len(input) != f.inputs {
		panic(fmt.Sprintf("feedforward: input of %d values, network takes %d", len(input), f.inputs))
	}
	if last := len(f.layers[len(f.layers)-1]); last < f.outputs {
		panic(fmt.Sprintf("feedforward: last layer has %d neurons, network outputs %d", last, f.outputs))
	}

	s := f.getBuffers()
	data, temp := s.a[:f.longest], s.b[:f.longest]
	copy(data, input)
	clear(data[len(input):])
	for _, layer := range f.layers {
		for i := range layer {
			temp[i] = layer[i].Compute(data)
		}
		data, temp = temp, data
	}
	copy(dst[:f.outputs], data[:f.outputs])
	f.scratch.Put(s)
}

// ParRun runs every input row in parallel. Output row i is Run(inputs[i]).
func (f *FeedforwardNetwork) ParRun(inputs [][]float32) [][]float32 {
	out := make([][]float32, len(inputs))
	parallel.ForEach(len(inputs), runtime.GOMAXPROCS(0), func(i int) {
		out[i] = f.Run(inputs[i])
	})
	return out
}
