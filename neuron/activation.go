package neuron

import "errors"
import "fmt"

import "github.com/chewxy/math32"

// Activation selects the nonlinearity applied after the weighted sum.
type Activation uint8

const (
	Linear Activation = iota
	ReLU
	Sigmoid
	Tanh
)

// ErrActivation is returned when parsing an unknown activation name.
var ErrActivation = errors.New("unknown activation")

var activationNames = [...]string{
	Linear:  "Linear",
	ReLU:    "ReLU",
	Sigmoid: "Sigmoid",
	Tanh:    "Tanh",
}

func (a Activation) String() string {
	if int(a) < len(activationNames) {
		return activationNames[a]
	}
	return fmt.Sprintf("Activation(%d)", uint8(a))
}

// ParseActivation parses the name written by String.
func ParseActivation(s string) (Activation, error) {
	for i, v := range activationNames {
		if v == s {
			return Activation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrActivation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if int(a) >= len(activationNames) {
		return nil, fmt.Errorf("%w: %d", ErrActivation, uint8(a))
	}
	return []byte(activationNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) (err error) {
	*a, err = ParseActivation(string(text))
	return
}

// Apply evaluates the activation function at x.
func (a Activation) Apply(x float32) float32 {
	switch a {
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case Sigmoid:
		return 1 / (1 + math32.Exp(-x))
	case Tanh:
		return math32.Tanh(x)
	}
	return x
}
