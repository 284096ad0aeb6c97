// Package linear provides a trivial regression dataset, y = slope * x.
package linear

import "github.com/neurlang/tinynet/datasets"

// Slope of the target line.
const Slope = 3

// New builds rows x = from..to-1 labelled Slope * x.
func New(from, to int) *datasets.Dataset {
	d := new(datasets.Dataset)
	for x := from; x < to; x++ {
		d.Append([]float32{float32(x)}, []float32{Slope * float32(x)})
	}
	return d
}

// Medium is x in [-50, 50).
func Medium() *datasets.Dataset {
	return New(-50, 50)
}
