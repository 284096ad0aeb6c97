package trainer

import "errors"
import "fmt"

import "github.com/chewxy/math32"

import "github.com/neurlang/tinynet/datasets"
import "github.com/neurlang/tinynet/net/feedforward"
import "github.com/neurlang/tinynet/parallel"
import "github.com/neurlang/tinynet/neuron"

// ErrNotConverged is returned by TrainUntil when the round limit is hit first.
var ErrNotConverged = errors.New("error above tolerance after the last round")

// Stats counts the outcome of the edits made by the last Train call.
type Stats struct {
	Accepted int
	Rejected int
}

// Trainer fits networks to a dataset by stochastic hill climbing.
type Trainer struct {
	data  *datasets.Dataset
	h     HyperParameters
	rand  neuron.Rand
	stats Stats
}

// New creates a trainer for the dataset. The dataset must not change while
// the trainer uses it.
func New(d *datasets.Dataset, h HyperParameters) *Trainer {
	return &Trainer{
		data: d,
		h:    h,
		rand: h.rand(),
	}
}

// Dataset returns the rows the trainer fits to.
func (t *Trainer) Dataset() *datasets.Dataset {
	return t.data
}

// LastStats reports accepted and rejected edits of the last Train call.
func (t *Trainer) LastStats() Stats {
	return t.stats
}

func (t *Trainer) check(net *feedforward.FeedforwardNetwork) {
	if t.data.Len() == 0 {
		return
	}
	if t.data.InputLen() != net.Inputs() || t.data.LabelLen() != net.Outputs() {
		panic(fmt.Sprintf("trainer: dataset rows are %d -> %d, network is %d -> %d",
			t.data.InputLen(), t.data.LabelLen(), net.Inputs(), net.Outputs()))
	}
}

// ComputeError runs the network on every row in parallel and reduces the
// per-row L1 distances between output and label. The result is the mean over
// rows, or the plain sum when HyperParameters.Sum is set. It is 0 for an
// empty dataset. The network is only read.
func (t *Trainer) ComputeError(net *feedforward.FeedforwardNetwork) float32 {
	t.check(net)
	length := t.data.Len()
	if length == 0 {
		return 0
	}
	total := parallel.Sum(length, t.h.threads(), func(k int) float32 {
		input, label := t.data.Row(k)
		output := net.Run(input)
		var dist float32
		for j := range label {
			dist += math32.Abs(label[j] - output[j])
		}
		return dist
	})
	if !t.h.Sum {
		total /= float64(length)
	}
	return float32(total)
}

// Train performs iterations+1 random edits on the network. An edit is kept
// when it lowers the error and undone otherwise. Train returns the error of
// the network it leaves behind, which is never above the error it started at.
func (t *Trainer) Train(net *feedforward.FeedforwardNetwork, iterations int) float32 {
	t.stats = Stats{}
	current := t.ComputeError(net)
	for i := 0; i <= iterations; i++ {
		net.RandomEdit(t.rand)
		candidate := t.ComputeError(net)
		if candidate >= current {
			net.UndoEdit()
			t.stats.Rejected++
		} else {
			current = candidate
			t.stats.Accepted++
		}
	}
	t.h.logf("error %g accepted %d rejected %d", current, t.stats.Accepted, t.stats.Rejected)
	return current
}

// TrainUntil calls Train with the given iterations until the error is at most
// tolerance. It returns the final error and the number of Train calls made.
// With maxRounds > 0 it gives up after that many calls with ErrNotConverged.
func (t *Trainer) TrainUntil(net *feedforward.FeedforwardNetwork, tolerance float32, iterations, maxRounds int) (float32, int, error) {
	var rounds int
	for {
		err := t.Train(net, iterations)
		rounds++
		if err <= tolerance {
			return err, rounds, nil
		}
		if maxRounds > 0 && rounds >= maxRounds {
			return err, rounds, fmt.Errorf("%w: %g > %g after %d rounds", ErrNotConverged, err, tolerance, rounds)
		}
	}
}
