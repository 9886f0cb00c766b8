package layers

import (
	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
)

// Activation is a stateless element-wise nonlinearity brick. It is the
// detector stage of a ConvolutionalLayer but composes anywhere a Layer is
// accepted.
type Activation struct {
	name string
	fn   func(*gorgonia.Node) (*gorgonia.Node, error)
}

// NewRectifier creates a ReLU activation: f(x) = max(0, x).
func NewRectifier() *Activation {
	return &Activation{name: "Rectifier", fn: gorgonia.Rectify}
}

// NewSigmoid creates a sigmoid activation: f(x) = 1 / (1 + exp(-x)).
func NewSigmoid() *Activation {
	return &Activation{name: "Sigmoid", fn: gorgonia.Sigmoid}
}

// NewTanh creates a tanh activation.
func NewTanh() *Activation {
	return &Activation{name: "Tanh", fn: gorgonia.Tanh}
}

// Apply builds the nonlinearity over x.
func (a *Activation) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	if x == nil {
		return nil, errors.Errorf("%s: nil input node", a.name)
	}
	out, err := a.fn(x)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: can't build activation", a.name)
	}
	return out, nil
}

// Params returns nil: activations have no learnable parameters.
func (a *Activation) Params() []*gorgonia.Node {
	return nil
}

// String returns the activation name.
func (a *Activation) String() string {
	return a.name
}
