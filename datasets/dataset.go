// Package datasets implements the aligned input/label rows a trainer fits a
// network to.
package datasets

import "errors"
import "fmt"

// ErrLength is returned when inputs and labels have different row counts.
var ErrLength = errors.New("inputs and labels differ in length")

// ErrRagged is returned when rows of the same column differ in width.
var ErrRagged = errors.New("ragged rows")

// Dataset holds inputs and labels; row k of Inputs corresponds to row k of
// Labels. It is read-only once built.
type Dataset struct {
	Inputs [][]float32
	Labels [][]float32
}

// New validates and wraps the rows.
func New(inputs, labels [][]float32) (*Dataset, error) {
	if len(inputs) != len(labels) {
		return nil, fmt.Errorf("%w: %d inputs, %d labels", ErrLength, len(inputs), len(labels))
	}
	if err := uniform(inputs); err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	if err := uniform(labels); err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	return &Dataset{Inputs: inputs, Labels: labels}, nil
}

// MustNew is New that panics on error.
func MustNew(inputs, labels [][]float32) *Dataset {
	d, err := New(inputs, labels)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func uniform(rows [][]float32) error {
	for k := range rows {
		if len(rows[k]) != len(rows[0]) {
			return fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRagged, k, len(rows[k]), len(rows[0]))
		}
	}
	return nil
}

// Append adds one row.
func (d *Dataset) Append(input, label []float32) {
	d.Inputs = append(d.Inputs, input)
	d.Labels = append(d.Labels, label)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// Row returns the k-th input and label.
func (d *Dataset) Row(k int) (input, label []float32) {
	return d.Inputs[k], d.Labels[k]
}

// InputLen returns the width of an input row, 0 for an empty dataset.
func (d *Dataset) InputLen() int {
	if len(d.Inputs) == 0 {
		return 0
	}
	return len(d.Inputs[0])
}

// LabelLen returns the width of a label row, 0 for an empty dataset.
func (d *Dataset) LabelLen() int {
	if len(d.Labels) == 0 {
		return 0
	}
	return len(d.Labels[0])
}
