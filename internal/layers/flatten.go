package layers

import (
	"github.com/pkg/errors"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Flattener collapses all non-batch axes into one, turning
// [batch, d1, d2, ...] into [batch, d1*d2*...]. It is the usual bridge
// between the convolutional stack and dense layers.
type Flattener struct{}

// NewFlattener creates a flattening reshape brick.
func NewFlattener() *Flattener {
	return &Flattener{}
}

// Apply builds the reshape over x.
func (f *Flattener) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	if x == nil {
		return nil, errors.New("flatten: nil input node")
	}
	s := x.Shape()
	if s.Dims() < 2 {
		return nil, errors.Errorf("flatten: expected at least 2D input, got %dD %v", s.Dims(), s)
	}

	features := tensor.Shape(s[1:]).TotalSize()
	out, err := gorgonia.Reshape(x, tensor.Shape{s[0], features})
	if err != nil {
		return nil, errors.Wrap(err, "flatten: can't build reshape operation")
	}
	return out, nil
}

// Params returns nil: flattening has no learnable parameters.
func (f *Flattener) Params() []*gorgonia.Node {
	return nil
}

// String returns a string representation of the layer.
func (f *Flattener) String() string {
	return "Flattener"
}
