// Package layers implements convolutional network bricks on top of
// Gorgonia's expression graph.
//
// Every brick is a thin configuration object: it holds shape parameters
// (filter sizes, strides, border mode), allocates its parameter nodes on
// the graph of the input it is first applied to, and delegates the actual
// computation to Gorgonia's primitives. Autodiff and kernel dispatch stay
// entirely inside Gorgonia.
package layers

import (
	"fmt"

	"gorgonia.org/gorgonia"
)

// Layer is the base interface for all bricks.
//
// Apply extends the expression graph of x with this layer's operation and
// returns the output node. Parameter nodes (if any) are allocated on the
// first Apply; subsequent applications on the same graph reuse them.
type Layer interface {
	// Apply builds this layer's operation over x and returns the output
	// node. The returned error is a graph-construction error (shape
	// mismatch, unsupported input rank), never a runtime compute error.
	Apply(x *gorgonia.Node) (*gorgonia.Node, error)

	// Params returns the learnable parameter nodes of this layer, in a
	// stable order. Layers without learnable parameters return nil.
	// Params returns nil before the first Apply, since parameters are
	// allocated against the input's graph.
	Params() []*gorgonia.Node

	fmt.Stringer
}

func checkImage4D(who string, x *gorgonia.Node) error {
	if x == nil {
		return fmt.Errorf("%s: nil input node", who)
	}
	if x.Shape().Dims() != 4 {
		return fmt.Errorf("%s: expected 4D input [batch, channels, height, width], got %dD %v",
			who, x.Shape().Dims(), x.Shape())
	}
	return nil
}
