package feedforward

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/tinynet/neuron"
)

func ones(rows, cols int) [][]float32 {
	w := make([][]float32, rows)
	for i := range w {
		w[i] = make([]float32, cols)
		for j := range w[i] {
			w[i][j] = 1
		}
	}
	return w
}

// xorLike separates the quadrants (+,+),(-,-) from (+,-),(-,+)
func xorLike() *FeedforwardNetwork {
	return New(2, 1).
		AddLayer(4, neuron.ReLU).
		WithWeights([][]float32{
			{1.1, -0.93},
			{-0.9, -0.96},
			{1.2, 0.81},
			{-0.91, 0.95},
		}).
		WithBias([]float32{0.048, 0.12, 0.083, -0.02}).
		AddLayer(1, neuron.Linear).
		WithWeights([][]float32{{-1.4, 1.3, 1.4, -1.3}})
}

func randomNetwork(r neuron.Rand) *FeedforwardNetwork {
	return New(3, 2).
		AddRandomLayer(7, neuron.ReLU, r).
		AddRandomLayer(20, neuron.Tanh, r).
		AddRandomLayer(5, neuron.Sigmoid, r).
		AddRandomLayer(2, neuron.Linear, r)
}

func testInputs(r *rand.Rand, n, width int) [][]float32 {
	in := make([][]float32, n)
	for i := range in {
		in[i] = make([]float32, width)
		for j := range in[i] {
			in[i][j] = r.Float32()*20 - 10
		}
	}
	return in
}

func TestSingleLinearNeuron(t *testing.T) {
	net := New(1, 1).
		AddLayer(1, neuron.Linear).
		WithWeights([][]float32{{3}}).
		WithBias([]float32{0})
	assert.Equal(t, []float32{6}, net.Run([]float32{2}))
}

func TestZeroWeightBaseline(t *testing.T) {
	for _, a := range []neuron.Activation{neuron.Linear, neuron.ReLU} {
		net := New(3, 4).AddLayer(4, a)
		for _, in := range testInputs(rand.New(rand.NewPCG(1, 1)), 20, 3) {
			assert.Equal(t, []float32{0, 0, 0, 0}, net.Run(in))
		}
	}
}

func TestXorLike(t *testing.T) {
	net := xorLike()
	assert.Greater(t, net.Run([]float32{3, 3})[0], float32(0))
	assert.Greater(t, net.Run([]float32{-3, -3})[0], float32(0))
	assert.Less(t, net.Run([]float32{3, -3})[0], float32(0))
	assert.Less(t, net.Run([]float32{-3, 3})[0], float32(0))
}

func TestDeepOnes(t *testing.T) {
	net := New(1, 1)
	prev := 1
	for i := 0; i < 6; i++ {
		net.AddLayer(5, neuron.ReLU).WithWeights(ones(5, prev))
		prev = 5
	}
	net.AddLayer(1, neuron.Linear).WithWeights(ones(1, 5))

	var sum float64
	for i := 0; i < 10000; i++ {
		sum += float64(net.Run([]float32{float32(i)})[0])
	}
	assert.InEpsilon(t, 15625.0*49995000, sum, 1e-6)
}

func TestDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	net := randomNetwork(r)
	for _, in := range testInputs(r, 50, 3) {
		assert.Equal(t, net.Run(in), net.Run(in))
	}
}

func TestRunDoesNotMutate(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	net := randomNetwork(r)
	before := net.Clone()
	for _, in := range testInputs(r, 10, 3) {
		net.Run(in)
	}
	for l := 0; l < net.LenLayers(); l++ {
		for row := 0; row < net.LayerLen(l); row++ {
			assert.Equal(t, before.Neuron(l, row), net.Neuron(l, row))
		}
	}
}

func TestInputWiderThanLayers(t *testing.T) {
	net := New(6, 1).AddLayer(2, neuron.Linear).WithWeights(ones(2, 6)).
		AddLayer(1, neuron.Linear).WithWeights(ones(1, 2))
	assert.Equal(t, 6, net.Longest())
	assert.Equal(t, []float32{42}, net.Run([]float32{1, 2, 3, 4, 5, 6}))
}

func TestLongest(t *testing.T) {
	net := New(2, 1).AddLayer(3, neuron.ReLU).AddLayer(9, neuron.ReLU).AddLayer(1, neuron.Linear)
	assert.Equal(t, 9, net.Longest())
	assert.Equal(t, 3, net.LenLayers())
	assert.Equal(t, 13, net.Len())
	assert.Equal(t, 9, net.LayerLen(1))
	assert.Equal(t, 3, net.Neuron(1, 0).Len())
	assert.Equal(t, 2, net.Neuron(0, 2).Len())
	assert.Equal(t, 2, net.Inputs())
	assert.Equal(t, 1, net.Outputs())
}

func TestRunInto(t *testing.T) {
	net := xorLike()
	dst := make([]float32, 1)
	net.RunInto(dst, []float32{3, -3})
	assert.Equal(t, net.Run([]float32{3, -3}), dst)
}

func TestParRunMatchesRun(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	net := randomNetwork(r)
	inputs := testInputs(r, 257, 3)
	out := net.ParRun(inputs)
	require.Len(t, out, len(inputs))
	for i := range inputs {
		assert.Equal(t, net.Run(inputs[i]), out[i], "row %d", i)
	}
	assert.Empty(t, net.ParRun(nil))
}

func TestConcurrentRun(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	net := randomNetwork(r)
	inputs := testInputs(r, 64, 3)
	want := make([][]float32, len(inputs))
	for i := range inputs {
		want[i] = net.Run(inputs[i])
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range inputs {
				assert.Equal(t, want[i], net.Run(inputs[i]))
			}
		}()
	}
	wg.Wait()
}

func TestContractPanics(t *testing.T) {
	assert.Panics(t, func() { New(1, 1).WithWeights([][]float32{{1}}) })
	assert.Panics(t, func() { New(1, 1).WithBias([]float32{1}) })
	assert.Panics(t, func() { New(1, 1).Run([]float32{1}) })
	assert.Panics(t, func() { New(1, 1).RandomEdit(neuron.NewSeeded(1)) })
	assert.Panics(t, func() { New(0, 1) })
	assert.Panics(t, func() { New(1, 1).AddLayer(0, neuron.ReLU) })

	net := New(2, 1).AddLayer(2, neuron.Linear)
	assert.Panics(t, func() { net.WithWeights([][]float32{{1, 2}}) })
	assert.Panics(t, func() { net.WithWeights([][]float32{{1, 2}, {3}}) })
	assert.Panics(t, func() { net.WithBias([]float32{1, 2, 3}) })
	assert.Panics(t, func() { net.Run([]float32{1}) })

	narrow := New(1, 3).AddLayer(2, neuron.Linear)
	assert.Panics(t, func() { narrow.Run([]float32{1}) })
}

func TestSetNeuron(t *testing.T) {
	net := New(2, 1).AddLayer(1, neuron.Linear)
	require.NoError(t, net.SetNeuron(0, 0, neuron.Neuron{Weights: []float32{1, 1}, Bias: 1}))
	assert.Equal(t, []float32{6}, net.Run([]float32{2, 3}))
	assert.ErrorIs(t, net.SetNeuron(0, 0, neuron.New(3, 0, neuron.Linear)), neuron.ErrWeightsLength)
}

func TestEditUndoRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	net := randomNetwork(r)
	inputs := testInputs(r, 30, 3)
	want := net.ParRun(inputs)
	for i := 0; i < 500; i++ {
		net.RandomEdit(r)
		_, ok := net.Pending()
		require.True(t, ok)
		net.UndoEdit()
		_, ok = net.Pending()
		require.False(t, ok)
	}
	assert.Equal(t, want, net.ParRun(inputs))
}

func TestEditChangesOneNeuron(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 32))
	net := randomNetwork(r)
	for i := 0; i < 200; i++ {
		before := net.Clone()
		net.RandomEdit(r)
		e, ok := net.Pending()
		require.True(t, ok)
		assert.Equal(t, before.Neuron(e.Layer, e.Row), e.Old)
		var changed int
		for l := 0; l < net.LenLayers(); l++ {
			for row := 0; row < net.LayerLen(l); row++ {
				if !assert.ObjectsAreEqual(before.Neuron(l, row), net.Neuron(l, row)) {
					changed++
					assert.Equal(t, e.Layer, l)
					assert.Equal(t, e.Row, row)
				}
			}
		}
		assert.LessOrEqual(t, changed, 1)
	}
}

func TestOnlyLastEditUndone(t *testing.T) {
	r := rand.New(rand.NewPCG(41, 42))
	net := New(1, 1).AddLayer(1, neuron.Linear).SetWeightRatio(1)
	net.RandomEdit(r)
	first := net.Neuron(0, 0)
	net.RandomEdit(r)
	net.UndoEdit()
	assert.Equal(t, first, net.Neuron(0, 0))
	net.UndoEdit()
	assert.Equal(t, first, net.Neuron(0, 0))
}

func TestUndoWithoutEdit(t *testing.T) {
	net := xorLike()
	want := net.Run([]float32{1, 2})
	net.UndoEdit()
	assert.Equal(t, want, net.Run([]float32{1, 2}))
}

func TestWeightRatio(t *testing.T) {
	r := rand.New(rand.NewPCG(51, 52))
	net := New(1, 1).AddLayer(1, neuron.Linear).SetWeightRatio(0)
	assert.Equal(t, float64(0), net.WeightRatio())
	for i := 0; i < 50; i++ {
		net.RandomEdit(r)
	}
	assert.Equal(t, float32(0), net.Neuron(0, 0).Weights[0])
	assert.NotEqual(t, float32(0), net.Neuron(0, 0).Bias)
	assert.Equal(t, DefaultWeightRatio, New(1, 1).WeightRatio())
}

func TestWeightRatioRoundTrip(t *testing.T) {
	for _, ratio := range []float64{0, 0.5, 1} {
		net := New(1, 1).AddLayer(1, neuron.Linear).SetWeightRatio(ratio)
		data, err := net.MarshalJSON()
		require.NoError(t, err)
		back := new(FeedforwardNetwork)
		require.NoError(t, back.UnmarshalJSON(data))
		assert.Equal(t, ratio, back.WeightRatio())
	}

	// models without the field get the default
	back := new(FeedforwardNetwork)
	require.NoError(t, back.UnmarshalJSON([]byte(
		`{"inputs":1,"outputs":1,"layers":[[{"weights":[1],"bias":0,"activation":"Linear"}]]}`)))
	assert.Equal(t, DefaultWeightRatio, back.WeightRatio())
}

func TestCloneIndependent(t *testing.T) {
	r := rand.New(rand.NewPCG(61, 62))
	net := randomNetwork(r)
	net.RandomEdit(r)
	c := net.Clone()
	_, ok := c.Pending()
	assert.False(t, ok)
	in := []float32{1, 2, 3}
	want := c.Run(in)
	for i := 0; i < 100; i++ {
		net.RandomEdit(r)
	}
	assert.Equal(t, want, c.Run(in))
}

func TestJsonRoundTripExact(t *testing.T) {
	r := rand.New(rand.NewPCG(71, 72))
	net := randomNetwork(r)
	for i := 0; i < 100; i++ {
		net.RandomEdit(r)
	}

	var buf bytes.Buffer
	require.NoError(t, net.WriteJson(&buf))
	back := new(FeedforwardNetwork)
	require.NoError(t, back.ReadJson(&buf))

	assert.Equal(t, net.Longest(), back.Longest())
	assert.Equal(t, net.WeightRatio(), back.WeightRatio())
	for _, in := range testInputs(r, 100, 3) {
		assert.Equal(t, net.Run(in), back.Run(in))
	}

	// the pending edit survives too
	want, _ := net.Pending()
	got, ok := back.Pending()
	require.True(t, ok)
	assert.Equal(t, want, got)
	net.UndoEdit()
	back.UndoEdit()
	in := []float32{0.5, -0.5, 2}
	assert.Equal(t, net.Run(in), back.Run(in))
}

func TestZlibFileRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(81, 82))
	net := randomNetwork(r)
	name := filepath.Join(t.TempDir(), "model.json.zlib")
	require.NoError(t, net.WriteZlibWeightsToFile(name))

	back := new(FeedforwardNetwork)
	require.NoError(t, back.ReadZlibWeightsFromFile(name))
	for _, in := range testInputs(r, 100, 3) {
		assert.Equal(t, net.Run(in), back.Run(in))
	}

	assert.Error(t, back.ReadZlibWeightsFromFile(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, back.ReadZlibWeights(bytes.NewBufferString("not zlib")))
}

func TestUnmarshalRejectsTopology(t *testing.T) {
	cases := []string{
		`{"inputs":0,"outputs":1,"layers":[]}`,
		`{"inputs":2,"outputs":1,"layers":[[{"weights":[1],"bias":0,"activation":"Linear"}]]}`,
		`{"inputs":1,"outputs":1,"layers":[[]]}`,
		`{"inputs":1,"outputs":2,"layers":[[{"weights":[1],"bias":0,"activation":"Linear"}]]}`,
		`{"inputs":1,"outputs":1,"layers":[[{"weights":[1],"bias":0,"activation":"Linear"}]],` +
			`"edit":{"old":{"weights":[1],"bias":0,"activation":"Linear"},"layer":3,"row":0}}`,
	}
	for _, c := range cases {
		var net FeedforwardNetwork
		assert.ErrorIs(t, net.UnmarshalJSON([]byte(c)), ErrTopology, c)
	}

	var net FeedforwardNetwork
	assert.ErrorIs(t, net.UnmarshalJSON([]byte(
		`{"inputs":1,"outputs":1,"layers":[[{"weights":[1],"bias":0,"activation":"Softmax"}]]}`)),
		neuron.ErrActivation)
}

func BenchmarkRun(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	net := randomNetwork(r)
	in := []float32{1, 2, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		net.Run(in)
	}
}
