// Copyright 2026 The Bricks Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layers provides convolutional network bricks over Gorgonia.
//
// # Overview
//
// This package contains:
//   - Layers: Convolutional, MaxPooling, ConvolutionalLayer, Flattener
//   - Activations: Rectifier, Sigmoid, Tanh
//   - Composition: Sequence, the Layer interface
//   - Shape arithmetic: BorderMode, ConvOutputSize, PoolOutputSize
//
// Every brick is a thin configuration object. It holds the layer's shape
// parameters, allocates its weight nodes on the expression graph of the
// input it is first applied to, and delegates computation, automatic
// differentiation, and kernel dispatch to Gorgonia.
//
// # Basic Usage
//
//	import (
//	    "github.com/bricks-ml/bricks/layers"
//	    "gorgonia.org/gorgonia"
//	    "gorgonia.org/tensor"
//	)
//
//	func main() {
//	    g := gorgonia.NewGraph()
//	    x := gorgonia.NewTensor(g, tensor.Float32, 4,
//	        gorgonia.WithShape(32, 1, 28, 28), gorgonia.WithName("x"))
//
//	    model := layers.NewSequence(
//	        layers.NewConvolutionalLayer(
//	            layers.NewConvolutional(6, 1, 5, 5),
//	            layers.NewRectifier(),
//	            layers.NewMaxPooling(2, 2),
//	        ),
//	        layers.NewFlattener(),
//	    )
//
//	    out, err := model.Apply(x)   // [32, 864]
//	    _ = out
//	    _ = err
//	}
//
// # Border Modes
//
// Convolutional supports the two classic edge policies: Valid (no padding,
// output shrinks by filter-1) and Full (maximal padding, output grows by
// filter-1). Strides divide the output size in either mode.
//
// # Weights
//
// Filter tensors are shaped [numFilters, numChannels, filterH, filterW],
// allocated lazily on first Apply, and initialized by a pluggable strategy
// from the initializer package (GlorotUniform by default). After that they
// are plain graph inputs: an external training loop reads them through
// Params and mutates them via gradient updates.
package layers
