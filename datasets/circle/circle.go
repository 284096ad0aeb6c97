// Package circle provides a synthetic two-class dataset: points of an integer
// grid labelled by whether they fall inside a disk centred at the origin.
package circle

import "github.com/neurlang/tinynet/datasets"

// Radius of the disk used by Grid.
const Radius = 30

// Extent is the half-width of the square grid used by Grid.
const Extent = 100

// InsideLabel and OutsideLabel are the class values. A trained network
// classifies a point as inside when its output is closer to InsideLabel,
// i.e. when it is negative.
const (
	InsideLabel  float32 = -1
	OutsideLabel float32 = 1
)

// Inside reports whether (x, y) lies strictly inside the disk of radius r.
func Inside(x, y, r float32) bool {
	return x*x+y*y < r*r
}

// Label returns the class value of (x, y) for the disk of radius r.
func Label(x, y, r float32) float32 {
	if Inside(x, y, r) {
		return InsideLabel
	}
	return OutsideLabel
}

// Classify maps a network output back to a class.
func Classify(out float32) (inside bool) {
	return out < 0
}

// New builds the grid -extent..extent in both axes with the given step,
// labelled against a disk of radius r.
func New(extent, step int, r float32) *datasets.Dataset {
	if step <= 0 {
		step = 1
	}
	d := new(datasets.Dataset)
	for x := -extent; x <= extent; x += step {
		for y := -extent; y <= extent; y += step {
			d.Append([]float32{float32(x), float32(y)}, []float32{Label(float32(x), float32(y), r)})
		}
	}
	return d
}

// Grid is the full 201x201 grid labelled against the radius 30 disk.
func Grid() *datasets.Dataset {
	return New(Extent, 1, Radius)
}
