package squareroot

import "github.com/chewxy/math32"

import "github.com/neurlang/tinynet/datasets"

// Sample is one integer input of the square root relation.
type Sample uint32

// Input returns the sample as a network input row.
func (s Sample) Input() []float32 {
	return []float32{float32(s)}
}

// Output returns the expected network output row.
func (s Sample) Output() []float32 {
	return []float32{math32.Sqrt(float32(s))}
}

const Small = 1 << 6
const Medium = 1 << 8
const Big = 1 << 10

// New builds rows for every sample below n.
func New(n uint32) *datasets.Dataset {
	d := new(datasets.Dataset)
	for i := uint32(0); i < n; i++ {
		s := Sample(i)
		d.Append(s.Input(), s.Output())
	}
	return d
}
