package layers

import (
	"fmt"

	"gorgonia.org/gorgonia"
)

// ConvolutionalLayer is a complete convolutional block: convolution,
// nonlinearity, pooling, applied in that order.
//
// It is a fixed Sequence of its three stages. The learnable parameters are
// exactly the convolution's; the detector and pooling stages carry none.
//
// Example:
//
//	layer := layers.NewConvolutionalLayer(
//	    layers.NewConvolutional(6, 1, 5, 5),
//	    layers.NewRectifier(),
//	    layers.NewMaxPooling(2, 2),
//	)
//	out, err := layer.Apply(x)        // [batch, 6, 12, 12] for 28x28 input
type ConvolutionalLayer struct {
	convolution *Convolutional
	activation  Layer
	pooling     *MaxPooling

	seq *Sequence
}

// NewConvolutionalLayer creates a fused convolution+activation+pooling
// layer from its three stages. All stages are required.
func NewConvolutionalLayer(convolution *Convolutional, activation Layer, pooling *MaxPooling) *ConvolutionalLayer {
	if convolution == nil {
		panic("convlayer: nil convolution")
	}
	if activation == nil {
		panic("convlayer: nil activation")
	}
	if pooling == nil {
		panic("convlayer: nil pooling")
	}

	return &ConvolutionalLayer{
		convolution: convolution,
		activation:  activation,
		pooling:     pooling,
		seq:         NewSequence(convolution, activation, pooling),
	}
}

// Apply builds the three stages over x and returns the pooled feature
// maps.
func (l *ConvolutionalLayer) Apply(x *gorgonia.Node) (*gorgonia.Node, error) {
	return l.seq.Apply(x)
}

// Params returns the convolution's learnable parameters.
func (l *ConvolutionalLayer) Params() []*gorgonia.Node {
	return l.seq.Params()
}

// Convolution returns the convolution stage.
func (l *ConvolutionalLayer) Convolution() *Convolutional {
	return l.convolution
}

// Activation returns the detector stage.
func (l *ConvolutionalLayer) Activation() Layer {
	return l.activation
}

// Pooling returns the pooling stage.
func (l *ConvolutionalLayer) Pooling() *MaxPooling {
	return l.pooling
}

// OutputDim computes the output dimensions (channels, height, width) for
// an input of the given dimensions, folding the convolution and pooling
// arithmetic together.
func (l *ConvolutionalLayer) OutputDim(channels, height, width int) [3]int {
	convOut := l.convolution.OutputSize(height, width)
	poolOut := l.pooling.OutputSize(convOut[0], convOut[1])
	return [3]int{l.convolution.NumFilters(), poolOut[0], poolOut[1]}
}

// String returns a string representation of the layer.
func (l *ConvolutionalLayer) String() string {
	return fmt.Sprintf("ConvolutionalLayer(%s, %s, %s)", l.convolution, l.activation, l.pooling)
}
