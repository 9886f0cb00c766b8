// Copyright 2026 The Bricks Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layers

import (
	"github.com/bricks-ml/bricks/internal/initializer"
	"github.com/bricks-ml/bricks/internal/layers"
)

// Layer is the base interface for all bricks.
type Layer = layers.Layer

// BorderMode is the edge policy applied during convolution.
type BorderMode = layers.BorderMode

// Border modes.
const (
	Valid = layers.Valid
	Full  = layers.Full
)

// Layers

// Convolutional performs a 2D convolution.
type Convolutional = layers.Convolutional

// ConvOpt configures a Convolutional layer.
type ConvOpt = layers.ConvOpt

// NewConvolutional creates a 2D convolution layer.
//
// Example:
//
//	conv := layers.NewConvolutional(6, 1, 5, 5,
//	    layers.WithBorderMode(layers.Full),
//	    layers.WithStep(2, 2))
func NewConvolutional(numFilters, numChannels, filterH, filterW int, opts ...ConvOpt) *Convolutional {
	return layers.NewConvolutional(numFilters, numChannels, filterH, filterW, opts...)
}

// WithStep sets the convolution stride. Defaults to (1, 1).
func WithStep(stepH, stepW int) ConvOpt {
	return layers.WithStep(stepH, stepW)
}

// WithBorderMode sets the edge policy. Defaults to Valid.
func WithBorderMode(mode BorderMode) ConvOpt {
	return layers.WithBorderMode(mode)
}

// WithWeightsInit sets the filter initialization strategy.
func WithWeightsInit(init initializer.Initializer) ConvOpt {
	return layers.WithWeightsInit(init)
}

// WithBias adds a per-filter bias term.
func WithBias() ConvOpt {
	return layers.WithBias()
}

// WithName sets the name prefix of the layer's parameter nodes.
func WithName(name string) ConvOpt {
	return layers.WithName(name)
}

// MaxPooling downsamples spatial input by taking window maxima.
type MaxPooling = layers.MaxPooling

// PoolOpt configures a MaxPooling layer.
type PoolOpt = layers.PoolOpt

// NewMaxPooling creates a 2D max pooling layer.
//
// Example:
//
//	pool := layers.NewMaxPooling(2, 2)
func NewMaxPooling(poolH, poolW int, opts ...PoolOpt) *MaxPooling {
	return layers.NewMaxPooling(poolH, poolW, opts...)
}

// WithPoolingStep sets the shift between pooling windows. Defaults to the
// pooling size.
func WithPoolingStep(stepH, stepW int) PoolOpt {
	return layers.WithPoolingStep(stepH, stepW)
}

// ConvolutionalLayer is a complete convolution+activation+pooling block.
type ConvolutionalLayer = layers.ConvolutionalLayer

// NewConvolutionalLayer creates a fused block from its three stages.
//
// Example:
//
//	block := layers.NewConvolutionalLayer(
//	    layers.NewConvolutional(6, 1, 5, 5),
//	    layers.NewRectifier(),
//	    layers.NewMaxPooling(2, 2),
//	)
func NewConvolutionalLayer(convolution *Convolutional, activation Layer, pooling *MaxPooling) *ConvolutionalLayer {
	return layers.NewConvolutionalLayer(convolution, activation, pooling)
}

// Flattener collapses all non-batch axes into one.
type Flattener = layers.Flattener

// NewFlattener creates a flattening reshape brick.
func NewFlattener() *Flattener {
	return layers.NewFlattener()
}

// Activations

// Activation is a stateless element-wise nonlinearity brick.
type Activation = layers.Activation

// NewRectifier creates a ReLU activation.
func NewRectifier() *Activation {
	return layers.NewRectifier()
}

// NewSigmoid creates a sigmoid activation.
func NewSigmoid() *Activation {
	return layers.NewSigmoid()
}

// NewTanh creates a tanh activation.
func NewTanh() *Activation {
	return layers.NewTanh()
}

// Composition

// Sequence chains layers output-to-input.
type Sequence = layers.Sequence

// NewSequence creates a sequence over the given layers.
func NewSequence(ls ...Layer) *Sequence {
	return layers.NewSequence(ls...)
}

// Shape arithmetic

// ConvOutputSize computes the spatial output size of a 2D convolution.
func ConvOutputSize(inH, inW, filterH, filterW, stepH, stepW int, mode BorderMode) [2]int {
	return layers.ConvOutputSize(inH, inW, filterH, filterW, stepH, stepW, mode)
}

// PoolOutputSize computes the spatial output size of a 2D max pooling.
func PoolOutputSize(inH, inW, poolH, poolW, stepH, stepW int) [2]int {
	return layers.PoolOutputSize(inH, inW, poolH, poolW, stepH, stepW)
}
