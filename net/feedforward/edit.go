package feedforward

import "github.com/neurlang/tinynet/neuron"

// RandomEdit perturbs one neuron picked uniformly by layer, then by row within
// the layer. The neuron is saved first, so UndoEdit can restore it. With
// probability WeightRatio a single weight changes, otherwise the bias does.
// RandomEdit panics on a network without layers.
func (f *FeedforwardNetwork) RandomEdit(r neuron.Rand) {
	if len(f.layers) == 0 {
		panic("feedforward: random edit on a network without layers")
	}
	l := r.IntN(len(f.layers))
	row := r.IntN(len(f.layers[l]))
	n := &f.layers[l][row]

	f.edit = &Edit{
		Old:   n.Clone(),
		Layer: l,
		Row:   row,
	}
	if neuron.Bool(r, f.weightRatio) {
		n.MutateWeight(r)
	} else {
		n.MutateBias(r)
	}
}

// UndoEdit restores the neuron changed by the last RandomEdit. Only that one
// edit can be undone; without a pending edit UndoEdit does nothing.
func (f *FeedforwardNetwork) UndoEdit() {
	if f.edit == nil {
		return
	}
	f.layers[f.edit.Layer][f.edit.Row] = f.edit.Old
	f.edit = nil
}

// Pending returns the pending edit, if any.
func (f *FeedforwardNetwork) Pending() (Edit, bool) {
	if f.edit == nil {
		return Edit{}, false
	}
	e := *f.edit
	e.Old = e.Old.Clone()
	return e, true
}
