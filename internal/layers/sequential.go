package layers

import (
	"strings"

	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
)

// Sequence chains layers so each layer's output node feeds the next
// layer's Apply. ConvolutionalLayer is built on it, and it composes whole
// models:
//
//	model := layers.NewSequence(
//	    layers.NewConvolutional(6, 1, 5, 5),
//	    layers.NewRectifier(),
//	    layers.NewMaxPooling(2, 2),
//	    layers.NewFlattener(),
//	)
//	out, err := model.Apply(x)
type Sequence struct {
	layers []Layer
}

// NewSequence creates a sequence over the given layers.
func NewSequence(ls ...Layer) *Sequence {
	return &Sequence{layers: ls}
}

// Add appends a layer to the sequence.
func (s *Sequence) Add(l Layer) {
	s.layers = append(s.layers, l)
}

// Layers returns the layers in application order.
func (s *Sequence) Layers() []Layer {
	return s.layers
}

// Apply builds every layer in order and returns the final output node.
func (s *Sequence) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	out := x
	for i, l := range s.layers {
		var err error
		if out, err = l.Apply(out); err != nil {
			return nil, errors.Wrapf(err, "sequence: layer %d (%s)", i, l)
		}
	}
	return out, nil
}

// Params returns the learnable parameters of all layers, in application
// order.
func (s *Sequence) Params() []*gorgonia.Node {
	var params []*gorgonia.Node
	for _, l := range s.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.String()
	}
	return "Sequence(" + strings.Join(names, " -> ") + ")"
}
