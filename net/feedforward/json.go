package feedforward

import "compress/zlib"
import "encoding/json"
import "errors"
import "fmt"
import "io"
import "os"

import "github.com/neurlang/tinynet/neuron"

// ErrTopology is returned when decoding a network whose neurons do not fit
// the layer they are in.
var ErrTopology = errors.New("inconsistent network topology")

type networkJson struct {
	Inputs      int               `json:"inputs"`
	Outputs     int               `json:"outputs"`
	Longest     int               `json:"longest"`
	WeightRatio *float64          `json:"weight_ratio,omitempty"`
	Layers      [][]neuron.Neuron `json:"layers"`
	Edit        *Edit             `json:"edit,omitempty"`
}

// MarshalJSON encodes the layers, each neuron's weights, bias and activation,
// and the pending edit. Weights and biases round-trip bit for bit.
func (f *FeedforwardNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(networkJson{
		Inputs:      f.inputs,
		Outputs:     f.outputs,
		Longest:     f.longest,
		WeightRatio: &f.weightRatio,
		Layers:      f.layers,
		Edit:        f.edit,
	})
}

// UnmarshalJSON decodes a network written by MarshalJSON, replacing f.
func (f *FeedforwardNetwork) UnmarshalJSON(data []byte) error {
	var v networkJson
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Inputs <= 0 || v.Outputs <= 0 {
		return fmt.Errorf("%w: arity %d -> %d", ErrTopology, v.Inputs, v.Outputs)
	}
	longest, prev := v.Inputs, v.Inputs
	for l, layer := range v.Layers {
		if len(layer) == 0 {
			return fmt.Errorf("%w: layer %d is empty", ErrTopology, l)
		}
		for r := range layer {
			if layer[r].Len() != prev {
				return fmt.Errorf("%w: layer %d row %d takes %d inputs, previous layer has %d",
					ErrTopology, l, r, layer[r].Len(), prev)
			}
		}
		prev = len(layer)
		if prev > longest {
			longest = prev
		}
	}
	if len(v.Layers) > 0 && prev < v.Outputs {
		return fmt.Errorf("%w: last layer has %d neurons, network outputs %d", ErrTopology, prev, v.Outputs)
	}
	if e := v.Edit; e != nil {
		if e.Layer < 0 || e.Layer >= len(v.Layers) || e.Row < 0 || e.Row >= len(v.Layers[e.Layer]) ||
			e.Old.Len() != v.Layers[e.Layer][e.Row].Len() {
			return fmt.Errorf("%w: pending edit at layer %d row %d", ErrTopology, e.Layer, e.Row)
		}
	}
	weightRatio := DefaultWeightRatio
	if v.WeightRatio != nil {
		weightRatio = *v.WeightRatio
	}

	f.inputs = v.Inputs
	f.outputs = v.Outputs
	f.layers = v.Layers
	f.longest = longest
	f.weightRatio = weightRatio
	f.edit = v.Edit
	return nil
}

// WriteJson writes the network as JSON to a writer
func (f *FeedforwardNetwork) WriteJson(w io.Writer) error {
	return json.NewEncoder(w).Encode(f)
}

// ReadJson reads the network as JSON from a reader
func (f *FeedforwardNetwork) ReadJson(r io.Reader) error {
	return json.NewDecoder(r).Decode(f)
}

// WriteZlibWeightsToFile writes model weights to a zlib file
func (f *FeedforwardNetwork) WriteZlibWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = f.WriteZlibWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteZlibWeights writes model weights to a writer
func (f *FeedforwardNetwork) WriteZlibWeights(w io.Writer) error {
	zw := zlib.NewWriter(w)
	if err := f.WriteJson(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadZlibWeightsFromFile reads model weights from a zlib file
func (f *FeedforwardNetwork) ReadZlibWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.ReadZlibWeights(file)
}

// ReadZlibWeights reads model weights from a reader
func (f *FeedforwardNetwork) ReadZlibWeights(r io.Reader) error {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return err
	}
	if err := f.ReadJson(zr); err != nil {
		zr.Close()
		return err
	}
	return zr.Close()
}
